// Package validation evalúa conjuntos de reglas declarativas (RuleSet) sobre la
// entrada de un formulario y produce mensajes en español por campo.
//
// Las comprobaciones escalares (rangos, longitudes, formatos de fecha, pertenencia)
// se delegan en go-playground/validator; las de existencia y unicidad en un
// PresenceVerifier (la base de datos en producción).
package validation

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// UniqueQuery parámetros de una comprobación de unicidad.
type UniqueQuery struct {
	Table          string
	Column         string
	Value          any
	IgnoreID       *int64
	WithoutTrashed bool
}

// PresenceVerifier consulta el almacenamiento para las reglas Exists y Unique.
type PresenceVerifier interface {
	Exists(ctx context.Context, table, column string, value any) (bool, error)
	// Unique devuelve true si ningún registro (salvo IgnoreID) tiene el valor.
	Unique(ctx context.Context, q UniqueQuery) (bool, error)
}

// Errors mensajes de validación por campo.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for k := range e {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, strings.Join(e[f], " "))
	}
	return "validación fallida: " + strings.Join(parts, " ")
}

// First devuelve el primer mensaje del campo o "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Has indica si el campo tiene errores.
func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// AsErrors extrae Errors de una cadena de errores.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Validator evalúa RuleSets. Es seguro para uso concurrente.
type Validator struct {
	verifier PresenceVerifier
	scalar   *validator.Validate
	messages map[string]string
}

// New construye el validador con el verificador de presencia indicado.
func New(verifier PresenceVerifier) *Validator {
	scalar := validator.New()
	scalar.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// decimal.Decimal como numérico para que min/gt/required funcionen en DTOs.
	scalar.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &Validator{verifier: verifier, scalar: scalar, messages: defaultMessages}
}

// Validate aplica rules sobre input. Un campo vacío sin Required se omite; la primera
// regla incumplida detiene la evaluación de ese campo. Los errores del verificador
// se devuelven como error, no como mensajes.
func (v *Validator) Validate(ctx context.Context, input map[string]any, rules RuleSet, labels map[string]string) (Errors, error) {
	errs := Errors{}
	for _, name := range rules.Fields() {
		value, present := input[name]
		if isEmpty(value) && !rules.Has(name, "required") {
			continue
		}
		f := Field{
			Name:    name,
			Value:   value,
			Present: present,
			Numeric: rules.Has(name, "integer") || rules.Has(name, "numeric"),
		}
		for _, r := range rules[name] {
			fail, err := r.Check(ctx, v, f)
			if err != nil {
				return nil, err
			}
			if fail != nil {
				errs.add(name, v.message(name, fail, labels))
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// Struct valida etiquetas `validate` de un DTO; las claves son los nombres JSON.
func (v *Validator) Struct(s any, labels map[string]string) Errors {
	err := v.scalar.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"_": {err.Error()}}
	}
	errs := Errors{}
	for _, fe := range fieldErrs {
		fail := &Failure{Key: fe.Tag(), Params: map[string]string{"min": fe.Param(), "max": fe.Param(), "values": fe.Param()}}
		switch fe.Tag() {
		case "min", "max":
			if fe.Kind() == reflect.String {
				fail.Key += ".string"
			} else {
				fail.Key += ".numeric"
			}
		case "oneof":
			fail.Key = "in"
		}
		errs.add(fe.Field(), v.message(fe.Field(), fail, labels))
	}
	return errs
}

func (v *Validator) message(field string, fail *Failure, labels map[string]string) string {
	tpl, ok := v.messages[fail.Key]
	if !ok {
		tpl = v.messages["default"]
	}
	label := labels[field]
	if label == "" {
		label = strings.ReplaceAll(field, "_", " ")
	}
	out := strings.ReplaceAll(tpl, ":attribute", label)
	for k, val := range fail.Params {
		out = strings.ReplaceAll(out, ":"+k, val)
	}
	return out
}

// checkSize compara por valor si el campo es numérico y por longitud en caso contrario.
func (v *Validator) checkSize(f Field, numericTag, lengthTag string) (kind string, ok bool) {
	if f.Numeric {
		d, ok := toDecimal(f.Value)
		if !ok {
			return "numeric", false
		}
		return "numeric", v.scalar.Var(d.InexactFloat64(), numericTag) == nil
	}
	return "string", v.scalar.Var(toString(f.Value), lengthTag) == nil
}

func (v *Validator) matchesLayout(value any, layouts []string) bool {
	if _, ok := value.(time.Time); ok {
		return true
	}
	s := strings.TrimSpace(toString(value))
	if s == "" {
		return false
	}
	for _, layout := range layouts {
		if v.scalar.Var(s, "datetime="+layout) == nil {
			return true
		}
	}
	return false
}

// ── conversión ───────────────────────────────────────────────────────────────

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		f, err := t.Float64()
		if err != nil || f != float64(int64(f)) {
			return 0, false
		}
		return int64(f), true
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	default:
		n, err := cast.ToInt64E(t)
		return n, err == nil
	}
}

func floatToInt(f float64) (int64, bool) {
	if f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil, bool:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	default:
		f, err := cast.ToFloat64E(t)
		if err != nil {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(f), true
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case decimal.Decimal:
		return t.String()
	default:
		return cast.ToString(t)
	}
}
