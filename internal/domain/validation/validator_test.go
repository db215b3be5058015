package validation_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

type fakeRow struct {
	ID      int64
	Cols    map[string]any
	Deleted bool
}

// fakeVerifier simula tablas en memoria para Exists/Unique.
type fakeVerifier struct {
	tables map[string][]fakeRow
	err    error
}

func (f *fakeVerifier) Exists(_ context.Context, table, column string, value any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.tables[table] {
		if r.Cols[column] == value {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVerifier) Unique(_ context.Context, q validation.UniqueQuery) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.tables[q.Table] {
		if q.WithoutTrashed && r.Deleted {
			continue
		}
		if q.IgnoreID != nil && r.ID == *q.IgnoreID {
			continue
		}
		if r.Cols[q.Column] == q.Value {
			return false, nil
		}
	}
	return true, nil
}

func comprasVerifier() *fakeVerifier {
	return &fakeVerifier{tables: map[string][]fakeRow{
		"compras": {
			{ID: 10, Cols: map[string]any{"id": int64(10)}},
			{ID: 12, Cols: map[string]any{"id": int64(12)}},
			{ID: 20, Cols: map[string]any{"id": int64(20)}, Deleted: true},
		},
		"users":   {{ID: 3, Cols: map[string]any{"id": int64(3)}}},
		"bodegas": {{ID: 2, Cols: map[string]any{"id": int64(2)}}},
	}}
}

var labels = map[string]string{"id": "Código Compra", "valor_total": "Valor Total"}

func validate(t *testing.T, v *validation.Validator, input map[string]any, rules validation.RuleSet) validation.Errors {
	t.Helper()
	errs, err := v.Validate(context.Background(), input, rules, labels)
	require.NoError(t, err)
	return errs
}

func TestValidate_RequiredUsaEtiqueta(t *testing.T) {
	v := validation.New(comprasVerifier())
	errs := validate(t, v, map[string]any{}, validation.RuleSet{
		"id": {validation.Required{}, validation.Integer{}},
	})
	assert.Equal(t, "El campo Código Compra es obligatorio.", errs.First("id"))
}

func TestValidate_EtiquetaPorDefecto(t *testing.T) {
	v := validation.New(comprasVerifier())
	errs := validate(t, v, map[string]any{}, validation.RuleSet{"bodega_id": {validation.Required{}}})
	assert.Equal(t, "El campo bodega id es obligatorio.", errs.First("bodega_id"))
}

func TestValidate_Integer(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"id": {validation.Required{}, validation.Integer{}}}

	for _, ok := range []any{"10", json.Number("10"), float64(10), 10, int64(10)} {
		assert.Nil(t, validate(t, v, map[string]any{"id": ok}, rules), "%v debe ser entero", ok)
	}
	for _, bad := range []any{"abc", "10.5", 15.5, json.Number("15.5"), true} {
		errs := validate(t, v, map[string]any{"id": bad}, rules)
		assert.True(t, errs.Has("id"), "%v no debe ser entero", bad)
	}
}

func TestValidate_BetweenNumericoInclusivo(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"id": {validation.Required{}, validation.Integer{}, validation.Between{Min: 5, Max: 99}}}

	assert.Nil(t, validate(t, v, map[string]any{"id": "5"}, rules))
	assert.Nil(t, validate(t, v, map[string]any{"id": 99}, rules))

	errs := validate(t, v, map[string]any{"id": 4}, rules)
	assert.Equal(t, "El campo Código Compra debe estar entre 5 y 99.", errs.First("id"))
	errs = validate(t, v, map[string]any{"id": "100"}, rules)
	assert.True(t, errs.Has("id"))
}

func TestValidate_MinMaxPorLongitudSinReglaNumerica(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"valor_total": {validation.Required{}, validation.Decimal{}, validation.Min{Value: 2}, validation.Max{Value: 60}}}

	assert.Nil(t, validate(t, v, map[string]any{"valor_total": json.Number("15.5")}, rules))
	// "1000" tiene 4 caracteres: cumple aunque el valor supere 60.
	assert.Nil(t, validate(t, v, map[string]any{"valor_total": "1000"}, rules))

	errs := validate(t, v, map[string]any{"valor_total": "7"}, rules)
	assert.Equal(t, "El campo Valor Total debe tener al menos 2 caracteres.", errs.First("valor_total"))
}

func TestValidate_MinNumerico(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"precio": {validation.Required{}, validation.Numeric{}, validation.Min{Value: 0}}}

	assert.Nil(t, validate(t, v, map[string]any{"precio": "0"}, rules))
	errs := validate(t, v, map[string]any{"precio": "-1.5"}, rules)
	assert.Equal(t, "El campo precio debe ser al menos 0.", errs.First("precio"))
}

func TestValidate_PrimerFalloDetieneCampo(t *testing.T) {
	v := validation.New(comprasVerifier())
	errs := validate(t, v, map[string]any{"id": "x"}, validation.RuleSet{
		"id": {validation.Required{}, validation.Integer{}, validation.Between{Min: 5, Max: 99}},
	})
	require.Len(t, errs["id"], 1)
	assert.Contains(t, errs.First("id"), "número entero")
}

func TestValidate_NullableOmiteVacios(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"estado": {validation.Nullable{}, validation.In{Values: []string{"PENDIENTE", "ANULADA"}}}}

	assert.Nil(t, validate(t, v, map[string]any{}, rules))
	assert.Nil(t, validate(t, v, map[string]any{"estado": nil}, rules))
	assert.Nil(t, validate(t, v, map[string]any{"estado": ""}, rules))
	assert.Nil(t, validate(t, v, map[string]any{"estado": "ANULADA"}, rules))
	assert.True(t, validate(t, v, map[string]any{"estado": "OTRO"}, rules).Has("estado"))
}

func TestValidate_Fechas(t *testing.T) {
	v := validation.New(comprasVerifier())
	dt := validation.RuleSet{"fecha": {validation.Required{}, validation.DateTime{}}}
	d := validation.RuleSet{"fecha": {validation.Nullable{}, validation.Date{}}}

	assert.Nil(t, validate(t, v, map[string]any{"fecha": "2024-01-01 00:00:00"}, dt))
	assert.Nil(t, validate(t, v, map[string]any{"fecha": "2024-01-01T10:30:00Z"}, dt))
	assert.True(t, validate(t, v, map[string]any{"fecha": "2024-01-01"}, dt).Has("fecha"))
	assert.True(t, validate(t, v, map[string]any{"fecha": "ayer"}, dt).Has("fecha"))

	assert.Nil(t, validate(t, v, map[string]any{"fecha": "2024-01-01"}, d))
	assert.True(t, validate(t, v, map[string]any{"fecha": "01/01/2024"}, d).Has("fecha"))
}

func TestValidate_Exists(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"proveedor_id": {validation.Required{}, validation.Integer{}, validation.Exists{Table: "users", Column: "id"}}}

	assert.Nil(t, validate(t, v, map[string]any{"proveedor_id": "3"}, rules))
	errs := validate(t, v, map[string]any{"proveedor_id": 4}, rules)
	assert.Equal(t, "El proveedor id seleccionado no existe.", errs.First("proveedor_id"))
}

func TestValidate_UniqueSinExclusion(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"id": {validation.Integer{}, validation.UniqueIn("compras", "id")}}

	assert.True(t, validate(t, v, map[string]any{"id": 10}, rules).Has("id"))
	assert.Nil(t, validate(t, v, map[string]any{"id": 11}, rules))
	// 20 está eliminado lógicamente: no cuenta.
	assert.Nil(t, validate(t, v, map[string]any{"id": 20}, rules))
}

func TestValidate_UniqueIgnorandoPropioRegistro(t *testing.T) {
	v := validation.New(comprasVerifier())
	rules := validation.RuleSet{"id": {validation.Integer{}, validation.UniqueIn("compras", "id").Ignoring(10)}}

	assert.Nil(t, validate(t, v, map[string]any{"id": "10"}, rules), "el registro puede validarse contra sí mismo")
	errs := validate(t, v, map[string]any{"id": "12"}, rules)
	assert.Equal(t, "El Código Compra ya ha sido registrado.", errs.First("id"))
}

func TestValidate_ErrorDelVerificador(t *testing.T) {
	boom := errors.New("conexión cerrada")
	v := validation.New(&fakeVerifier{err: boom})
	_, err := v.Validate(context.Background(), map[string]any{"id": 10}, validation.RuleSet{
		"id": {validation.UniqueIn("compras", "id")},
	}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestKindFromMethod(t *testing.T) {
	cases := map[string]validation.OperationKind{
		"GET":     validation.ReadOrDelete,
		"head":    validation.ReadOrDelete,
		"DELETE":  validation.ReadOrDelete,
		"POST":    validation.Create,
		"PATCH":   validation.Update,
		"PUT":     validation.Update,
		"OPTIONS": validation.Other,
	}
	for method, want := range cases {
		assert.Equal(t, want, validation.KindFromMethod(method), method)
	}
}

func TestStruct_UsaNombresJSON(t *testing.T) {
	type in struct {
		Nombre string          `json:"nombre" validate:"required,max=5"`
		Precio decimal.Decimal `json:"precio" validate:"gte=0"`
	}
	v := validation.New(comprasVerifier())

	errs := v.Struct(in{Nombre: "demasiado largo", Precio: decimal.NewFromInt(1)}, map[string]string{"nombre": "Nombre"})
	assert.Equal(t, "El campo Nombre no debe tener más de 5 caracteres.", errs.First("nombre"))

	assert.Nil(t, v.Struct(in{Nombre: "ok", Precio: decimal.Zero}, nil))
}
