package request_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/request"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// memVerifier registra las consultas y responde con tablas en memoria.
type memVerifier struct {
	ids     map[string][]int64 // tabla → ids existentes
	uniques []validation.UniqueQuery
}

func (m *memVerifier) Exists(_ context.Context, table, _ string, value any) (bool, error) {
	for _, id := range m.ids[table] {
		if id == value {
			return true, nil
		}
	}
	return false, nil
}

func (m *memVerifier) Unique(_ context.Context, q validation.UniqueQuery) (bool, error) {
	m.uniques = append(m.uniques, q)
	for _, id := range m.ids[q.Table] {
		if q.IgnoreID != nil && id == *q.IgnoreID {
			continue
		}
		if id == q.Value {
			return false, nil
		}
	}
	return true, nil
}

func newVerifier() *memVerifier {
	return &memVerifier{ids: map[string][]int64{
		"compras": {10, 12},
		"users":   {3},
		"bodegas": {2},
	}}
}

func TestCompraRules_GetYDeleteSinReglas(t *testing.T) {
	form := request.CompraStoreRequest{}
	for _, method := range []string{"GET", "DELETE"} {
		for _, id := range []int64{0, 10, 99} {
			assert.Empty(t, form.Rules(method, id), "%s con id %d", method, id)
		}
	}
}

func TestCompraRules_PostExigeRangoYUnicidad(t *testing.T) {
	rules := request.CompraStoreRequest{}.Rules("POST", 0)

	assert.Contains(t, rules["id"], validation.Between{Min: 5, Max: 99})
	assert.Contains(t, rules["id"], validation.Unique{Table: "compras", Column: "id", WithoutTrashed: true})
}

func TestCompraRules_PatchIgnoraPropioRegistro(t *testing.T) {
	rules := request.CompraStoreRequest{}.Rules("PATCH", 10)

	assert.Contains(t, rules["id"], validation.Between{Min: 5, Max: 99})
	assert.Contains(t, rules["id"], validation.UniqueIn("compras", "id").Ignoring(10))
}

func TestCompraRules_CamposComunesIgualesEntreMetodos(t *testing.T) {
	post := request.CompraRules(validation.Create, 0)
	patch := request.CompraRules(validation.Update, 10)
	other := request.CompraRules(validation.Other, 0)

	for _, field := range []string{"fecha", "valor_total", "proveedor_id", "bodega_id", "estado", "created_at", "updated_at", "deleted_at"} {
		assert.Equal(t, post[field], patch[field], field)
		assert.Equal(t, post[field], other[field], field)
	}
	assert.False(t, other.Has("id", "unique"), "otros métodos no exigen unicidad")
	assert.ElementsMatch(t, post.Fields(), patch.Fields())
}

func TestCompraRules_PatchUnicidadContraBaseDeDatos(t *testing.T) {
	v := validation.New(newVerifier())
	rules := request.CompraStoreRequest{}.Rules("PATCH", 10)
	only := validation.RuleSet{"id": rules["id"]}

	errs, err := v.Validate(context.Background(), map[string]any{"id": "10"}, only, nil)
	require.NoError(t, err)
	assert.Nil(t, errs, "la compra 10 puede conservar su propio código")

	errs, err = v.Validate(context.Background(), map[string]any{"id": "12"}, only, nil)
	require.NoError(t, err)
	assert.True(t, errs.Has("id"), "12 ya pertenece a otra compra")
}

func TestCompraAttributes_EtiquetasExactas(t *testing.T) {
	want := map[string]string{
		"id":           "Código Compra",
		"fecha":        "Fecha",
		"valor_total":  "Valor Total",
		"proveedor_id": "proveedor",
		"bodega_id":    "bodega",
		"estado":       "Estado",
		"created_at":   "Creado",
		"updated_at":   "Actualizado",
	}
	assert.Equal(t, want, request.CompraStoreRequest{}.Attributes())
}

func TestNormalize_RutaPrevaleceSobreCuerpo(t *testing.T) {
	body := map[string]any{"id": json.Number("55"), "fecha": "2024-01-01"}
	out := request.Normalize(map[string]string{"id": "10"}, body)

	assert.Equal(t, "10", out["id"])
	assert.Equal(t, "2024-01-01", out["fecha"])
	assert.Equal(t, json.Number("55"), body["id"], "el cuerpo original no cambia")

	out = request.Normalize(map[string]string{}, body)
	assert.Equal(t, json.Number("55"), out["id"], "sin id en la ruta se conserva el del cuerpo")
}

func TestProcess_PatchEscenarioCompleto(t *testing.T) {
	verifier := newVerifier()
	v := validation.New(verifier)
	body := map[string]any{
		"fecha":        "2024-01-01",
		"valor_total":  json.Number("15.5"),
		"proveedor_id": json.Number("3"),
		"bodega_id":    json.Number("2"),
	}

	input, err := request.Process(context.Background(), request.CompraStoreRequest{}, v, "PATCH", map[string]string{"id": "10"}, body)
	require.NoError(t, err)

	assert.Equal(t, "10", input["id"])
	assert.Equal(t, "2024-01-01 00:00:00", input["fecha"])
	require.Len(t, verifier.uniques, 1)
	require.NotNil(t, verifier.uniques[0].IgnoreID)
	assert.Equal(t, int64(10), *verifier.uniques[0].IgnoreID)
	assert.Equal(t, int64(10), verifier.uniques[0].Value)

	compra, err := request.BindCompra(input)
	require.NoError(t, err)
	assert.Equal(t, int64(10), compra.ID)
	assert.True(t, compra.ValorTotal.Equal(decimal.RequireFromString("15.5")))
	assert.Equal(t, int64(3), compra.ProveedorID)
	assert.Equal(t, int64(2), compra.BodegaID)
	assert.Equal(t, "2024-01-01", compra.Fecha.Format("2006-01-02"))
	assert.Empty(t, compra.Estado)
}

func TestProcess_PostErroresEnEspanol(t *testing.T) {
	v := validation.New(newVerifier())
	body := map[string]any{
		"id":           json.Number("12"),
		"fecha":        "mañana",
		"valor_total":  json.Number("15.5"),
		"proveedor_id": json.Number("9"),
		"bodega_id":    json.Number("2"),
		"estado":       "PERDIDA",
	}

	_, err := request.Process(context.Background(), request.CompraStoreRequest{}, v, "POST", nil, body)
	require.Error(t, err)
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)

	assert.Equal(t, "El Código Compra ya ha sido registrado.", errs.First("id"))
	assert.Equal(t, "El campo Fecha no es una fecha y hora válida.", errs.First("fecha"))
	assert.Equal(t, "El proveedor seleccionado no existe.", errs.First("proveedor_id"))
	assert.Equal(t, "El Estado seleccionado no es válido.", errs.First("estado"))
	assert.False(t, errs.Has("bodega_id"))
	assert.False(t, errs.Has("valor_total"))
}

func TestProcess_IdFueraDeRango(t *testing.T) {
	v := validation.New(newVerifier())
	_, err := request.Process(context.Background(), request.CompraStoreRequest{}, v, "POST", nil, map[string]any{
		"id": json.Number("4"), "fecha": "2024-01-01", "valor_total": "20", "proveedor_id": "3", "bodega_id": "2",
	})
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "El campo Código Compra debe estar entre 5 y 99.", errs.First("id"))
}

func TestProcess_DeleteNoValida(t *testing.T) {
	v := validation.New(newVerifier())
	input, err := request.Process(context.Background(), request.CompraStoreRequest{}, v, "DELETE", map[string]string{"id": "200"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "200", input["id"])
}

func TestProcess_FechaConZonaSeConvierteAUTC(t *testing.T) {
	v := validation.New(newVerifier())
	input, err := request.Process(context.Background(), request.CompraStoreRequest{}, v, "PATCH", map[string]string{"id": "10"}, map[string]any{
		"fecha": "2024-01-01T10:00:00-05:00", "valor_total": "15.5", "proveedor_id": "3", "bodega_id": "2",
	})
	require.NoError(t, err)

	compra, err := request.BindCompra(input)
	require.NoError(t, err)
	assert.True(t, compra.Fecha.Equal(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)), "fecha = %s", compra.Fecha)
}
