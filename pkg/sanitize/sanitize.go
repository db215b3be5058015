// Package sanitize aplica filtros de limpieza a la entrada de formularios antes de validarla.
// Los filtros se declaran por campo con sintaxis de tubería: "trim|escape|digit".
package sanitize

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter transforma un valor de texto.
type Filter func(string) string

// DateLayout formato al que normaliza el filtro "date".
const DateLayout = "2006-01-02 15:04:05"

var inputDateLayouts = []string{
	DateLayout,
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"02/01/2006",
	"02/01/2006 15:04:05",
}

var registry = map[string]Filter{
	"trim":       strings.TrimSpace,
	"escape":     html.EscapeString,
	"lowercase":  strings.ToLower,
	"uppercase":  strings.ToUpper,
	"capitalize": capitalize,
	"digit":      digit,
	"decimal":    decimalFilter,
	"date":       date,
}

// Chain filtros ya resueltos para un campo.
type Chain []Filter

// Apply ejecuta la cadena en orden.
func (c Chain) Apply(s string) string {
	for _, f := range c {
		s = f(s)
	}
	return s
}

// Parse resuelve "trim|escape|digit" a una Chain. Un filtro desconocido es un error.
func Parse(expr string) (Chain, error) {
	var chain Chain
	for _, name := range strings.Split(expr, "|") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("sanitize: filtro desconocido %q", name)
		}
		chain = append(chain, f)
	}
	return chain, nil
}

// Sanitizer filtros compilados por campo.
type Sanitizer struct {
	chains map[string]Chain
}

// New compila el mapa campo → especificación.
func New(filters map[string]string) (*Sanitizer, error) {
	chains := make(map[string]Chain, len(filters))
	for field, expr := range filters {
		chain, err := Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("campo %s: %w", field, err)
		}
		chains[field] = chain
	}
	return &Sanitizer{chains: chains}, nil
}

// Apply devuelve una copia de input con los filtros aplicados. Los campos ausentes no se
// crean y los valores nulos se conservan; el resto se convierte a texto antes de filtrar.
func (s *Sanitizer) Apply(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}
	for field, chain := range s.chains {
		v, ok := out[field]
		if !ok || v == nil {
			continue
		}
		str, ok := asString(v)
		if !ok {
			continue
		}
		out[field] = chain.Apply(str)
	}
	return out
}

// Apply compila y aplica en una sola llamada.
func Apply(input map[string]any, filters map[string]string) (map[string]any, error) {
	s, err := New(filters)
	if err != nil {
		return nil, err
	}
	return s.Apply(input), nil
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		// objetos y listas se dejan intactos
		return "", false
	}
}

var titleCaser = cases.Title(language.Spanish)

func capitalize(s string) string {
	return titleCaser.String(s)
}

func digit(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decimalFilter conserva dígitos, un separador decimal y el signo inicial.
func decimalFilter(s string) string {
	var b strings.Builder
	seenSep := false
	for i, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenSep:
			seenSep = true
			b.WriteRune('.')
		}
	}
	return b.String()
}

// date normaliza a DateLayout en UTC; una fecha con zona se convierte, no se trunca.
func date(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(DateLayout)
		}
	}
	return s
}
