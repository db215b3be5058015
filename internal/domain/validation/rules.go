package validation

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field es el valor de un campo tal como lo ve una regla.
type Field struct {
	Name    string
	Value   any
	Present bool
	// Numeric indica que el campo declara una regla de tipo numérico (Integer o Numeric):
	// Between, Min y Max comparan el valor y no la longitud.
	Numeric bool
}

// Failure describe una regla incumplida. Key selecciona la plantilla del mensaje.
type Failure struct {
	Key    string
	Params map[string]string
}

// Rule es una restricción declarativa sobre un campo.
type Rule interface {
	Name() string
	Check(ctx context.Context, v *Validator, f Field) (*Failure, error)
}

// RuleSet asocia cada campo con su lista ordenada de reglas.
type RuleSet map[string][]Rule

// Fields devuelve los nombres de campo ordenados.
func (rs RuleSet) Fields() []string {
	out := make([]string, 0, len(rs))
	for k := range rs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone copia el conjunto (las listas de reglas también se copian).
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for k, rules := range rs {
		out[k] = append([]Rule(nil), rules...)
	}
	return out
}

// Has indica si el campo tiene una regla con ese nombre.
func (rs RuleSet) Has(field, rule string) bool {
	for _, r := range rs[field] {
		if r.Name() == rule {
			return true
		}
	}
	return false
}

// ── Presencia ────────────────────────────────────────────────────────────────

// Required exige que el campo exista y no esté vacío.
type Required struct{}

func (Required) Name() string { return "required" }

func (Required) Check(_ context.Context, _ *Validator, f Field) (*Failure, error) {
	if !f.Present || isEmpty(f.Value) {
		return &Failure{Key: "required"}, nil
	}
	return nil, nil
}

// Nullable permite null o vacío; el resto de reglas del campo se omiten en ese caso.
type Nullable struct{}

func (Nullable) Name() string { return "nullable" }

func (Nullable) Check(context.Context, *Validator, Field) (*Failure, error) { return nil, nil }

// ── Tipos ────────────────────────────────────────────────────────────────────

// Integer exige un entero (número sin parte decimal o texto con dígitos).
type Integer struct{}

func (Integer) Name() string { return "integer" }

func (Integer) Check(_ context.Context, _ *Validator, f Field) (*Failure, error) {
	if _, ok := toInt64(f.Value); !ok {
		return &Failure{Key: "integer"}, nil
	}
	return nil, nil
}

// Numeric exige un número; a diferencia de Decimal, cambia Between/Min/Max a comparación de valor.
type Numeric struct{}

func (Numeric) Name() string { return "numeric" }

func (Numeric) Check(_ context.Context, _ *Validator, f Field) (*Failure, error) {
	if _, ok := toDecimal(f.Value); !ok {
		return &Failure{Key: "numeric"}, nil
	}
	return nil, nil
}

// Decimal exige un valor convertible a decimal.Decimal.
type Decimal struct{}

func (Decimal) Name() string { return "decimal" }

func (Decimal) Check(_ context.Context, _ *Validator, f Field) (*Failure, error) {
	if _, ok := toDecimal(f.Value); !ok {
		return &Failure{Key: "decimal"}, nil
	}
	return nil, nil
}

// String exige texto.
type String struct{}

func (String) Name() string { return "string" }

func (String) Check(_ context.Context, _ *Validator, f Field) (*Failure, error) {
	if _, ok := f.Value.(string); !ok {
		return &Failure{Key: "string"}, nil
	}
	return nil, nil
}

// DateTimeLayouts son los formatos aceptados por DateTime.
var DateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// DateLayouts son los formatos aceptados por Date (incluye los de fecha y hora).
var DateLayouts = append([]string{"2006-01-02"}, DateTimeLayouts...)

// DateTime exige fecha y hora.
type DateTime struct{}

func (DateTime) Name() string { return "datetime" }

func (DateTime) Check(_ context.Context, v *Validator, f Field) (*Failure, error) {
	if !v.matchesLayout(f.Value, DateTimeLayouts) {
		return &Failure{Key: "datetime"}, nil
	}
	return nil, nil
}

// Date exige una fecha (con o sin hora).
type Date struct{}

func (Date) Name() string { return "date" }

func (Date) Check(_ context.Context, v *Validator, f Field) (*Failure, error) {
	if !v.matchesLayout(f.Value, DateLayouts) {
		return &Failure{Key: "date"}, nil
	}
	return nil, nil
}

// ── Tamaño ───────────────────────────────────────────────────────────────────

// Between exige Min <= tamaño <= Max (inclusive).
type Between struct {
	Min, Max int64
}

func (Between) Name() string { return "between" }

func (r Between) Check(_ context.Context, v *Validator, f Field) (*Failure, error) {
	kind, ok := v.checkSize(f, fmt.Sprintf("gte=%d,lte=%d", r.Min, r.Max), fmt.Sprintf("min=%d,max=%d", r.Min, r.Max))
	if ok {
		return nil, nil
	}
	return &Failure{Key: "between." + kind, Params: map[string]string{
		"min": strconv.FormatInt(r.Min, 10),
		"max": strconv.FormatInt(r.Max, 10),
	}}, nil
}

// Min exige tamaño >= Value.
type Min struct {
	Value int64
}

func (Min) Name() string { return "min" }

func (r Min) Check(_ context.Context, v *Validator, f Field) (*Failure, error) {
	kind, ok := v.checkSize(f, fmt.Sprintf("gte=%d", r.Value), fmt.Sprintf("min=%d", r.Value))
	if ok {
		return nil, nil
	}
	return &Failure{Key: "min." + kind, Params: map[string]string{"min": strconv.FormatInt(r.Value, 10)}}, nil
}

// Max exige tamaño <= Value.
type Max struct {
	Value int64
}

func (Max) Name() string { return "max" }

func (r Max) Check(_ context.Context, v *Validator, f Field) (*Failure, error) {
	kind, ok := v.checkSize(f, fmt.Sprintf("lte=%d", r.Value), fmt.Sprintf("max=%d", r.Value))
	if ok {
		return nil, nil
	}
	return &Failure{Key: "max." + kind, Params: map[string]string{"max": strconv.FormatInt(r.Value, 10)}}, nil
}

// ── Conjuntos y base de datos ────────────────────────────────────────────────

// In exige que el valor pertenezca a Values.
type In struct {
	Values []string
}

func (In) Name() string { return "in" }

func (r In) Check(_ context.Context, v *Validator, f Field) (*Failure, error) {
	s := toString(f.Value)
	if err := v.scalar.Var(s, "oneof="+strings.Join(r.Values, " ")); err != nil {
		return &Failure{Key: "in", Params: map[string]string{"values": strings.Join(r.Values, ", ")}}, nil
	}
	return nil, nil
}

// Exists exige que el valor exista en Table.Column.
type Exists struct {
	Table  string
	Column string
}

func (Exists) Name() string { return "exists" }

func (r Exists) Check(ctx context.Context, v *Validator, f Field) (*Failure, error) {
	ok, err := v.verifier.Exists(ctx, r.Table, r.Column, presenceValue(f))
	if err != nil {
		return nil, fmt.Errorf("exists %s.%s: %w", r.Table, r.Column, err)
	}
	if !ok {
		return &Failure{Key: "exists"}, nil
	}
	return nil, nil
}

// Unique exige que ningún otro registro de Table tenga el valor en Column.
// Ignore excluye el registro con ese id (edición del propio registro).
// WithoutTrashed excluye los registros con borrado lógico.
type Unique struct {
	Table          string
	Column         string
	Ignore         *int64
	WithoutTrashed bool
}

// UniqueIn construye la regla sobre registros no eliminados.
func UniqueIn(table, column string) Unique {
	return Unique{Table: table, Column: column, WithoutTrashed: true}
}

// Ignoring devuelve una copia que excluye el registro id.
func (r Unique) Ignoring(id int64) Unique {
	r.Ignore = &id
	return r
}

func (Unique) Name() string { return "unique" }

func (r Unique) Check(ctx context.Context, v *Validator, f Field) (*Failure, error) {
	ok, err := v.verifier.Unique(ctx, UniqueQuery{
		Table:          r.Table,
		Column:         r.Column,
		Value:          presenceValue(f),
		IgnoreID:       r.Ignore,
		WithoutTrashed: r.WithoutTrashed,
	})
	if err != nil {
		return nil, fmt.Errorf("unique %s.%s: %w", r.Table, r.Column, err)
	}
	if !ok {
		return &Failure{Key: "unique"}, nil
	}
	return nil, nil
}

// ── conversión ───────────────────────────────────────────────────────────────

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// presenceValue normaliza el valor para consultas: los campos numéricos enteros van como int64,
// el resto como texto sin tocar ("0012345" sigue siendo "0012345").
func presenceValue(f Field) any {
	if f.Numeric {
		if n, ok := toInt64(f.Value); ok {
			return n
		}
	}
	return toString(f.Value)
}
