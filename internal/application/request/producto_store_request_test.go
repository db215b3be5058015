package request_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/request"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

func TestProductoRules_PorMetodo(t *testing.T) {
	form := request.ProductoStoreRequest{}

	assert.Empty(t, form.Rules("GET", 1))
	assert.Empty(t, form.Rules("DELETE", 1))

	post := form.Rules("POST", 0)
	assert.Contains(t, post["codigo_barras"], validation.Unique{Table: "productos", Column: "codigo_barras"})

	patch := form.Rules("PATCH", 7)
	assert.Contains(t, patch["codigo_barras"], validation.Unique{Table: "productos", Column: "codigo_barras"}.Ignoring(7))
}

func TestProcess_ProductoValidoYBind(t *testing.T) {
	verifier := &memVerifier{ids: map[string][]int64{"categorias": {4}}}
	v := validation.New(verifier)

	input, err := request.Process(context.Background(), request.ProductoStoreRequest{}, v, "POST", nil, map[string]any{
		"nombre":             "  Tornillo 3/8 ",
		"categoria_id":       json.Number("4"),
		"referencia_fabrica": "tr-38",
		"unidad_medida":      "UND",
		"stock":              json.Number("0"),
		"precio":             "1250,50",
	})
	require.NoError(t, err)

	p, err := request.BindProducto(input)
	require.NoError(t, err)
	assert.Equal(t, "Tornillo 3/8", p.Nombre)
	assert.Equal(t, "TR-38", p.ReferenciaFabrica)
	assert.Equal(t, "und", p.UnidadMedida)
	assert.Equal(t, int64(4), p.CategoriaID)
	assert.Equal(t, int64(0), p.Stock)
	assert.Equal(t, "1250.5", p.Precio.String())
	assert.Empty(t, p.CodigoBarras)
}

func TestProcess_ProductoStockNegativo(t *testing.T) {
	v := validation.New(&memVerifier{ids: map[string][]int64{"categorias": {4}}})
	_, err := request.Process(context.Background(), request.ProductoStoreRequest{}, v, "POST", nil, map[string]any{
		"nombre": "Tuerca", "categoria_id": 4, "unidad_medida": "und", "stock": -3, "precio": 10,
	})
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "El campo Stock debe ser al menos 0.", errs.First("stock"))
}

func productoBody(codigo string) map[string]any {
	return map[string]any{
		"nombre":        "Tuerca",
		"categoria_id":  json.Number("4"),
		"codigo_barras": codigo,
		"unidad_medida": "und",
		"stock":         json.Number("1"),
		"precio":        "10",
	}
}

func TestProcess_CodigoBarrasConCerosConservaTexto(t *testing.T) {
	verifier := &memVerifier{ids: map[string][]int64{"categorias": {4}}}
	v := validation.New(verifier)

	input, err := request.Process(context.Background(), request.ProductoStoreRequest{}, v, "POST", nil, productoBody("0012345"))
	require.NoError(t, err)
	assert.Equal(t, "0012345", input["codigo_barras"])

	require.Len(t, verifier.uniques, 1)
	assert.Equal(t, "codigo_barras", verifier.uniques[0].Column)
	assert.Equal(t, "0012345", verifier.uniques[0].Value, "un código de barras se consulta como texto")
}

func TestProcess_CategoriaSeConsultaComoEntero(t *testing.T) {
	verifier := &memVerifier{ids: map[string][]int64{"categorias": {4}}}
	v := validation.New(verifier)

	_, err := request.Process(context.Background(), request.ProductoStoreRequest{}, v, "POST", nil, productoBody(""))
	require.NoError(t, err, "categoria_id 4 existe al compararse como int64")
	assert.Empty(t, verifier.uniques, "sin código de barras no hay consulta de unicidad")
}

func TestProcess_CodigoBarrasLongitudDeColumna(t *testing.T) {
	v := validation.New(&memVerifier{ids: map[string][]int64{"categorias": {4}}})

	_, err := request.Process(context.Background(), request.ProductoStoreRequest{}, v, "POST", nil,
		productoBody(strings.Repeat("7", request.CodigoBarrasMax)))
	require.NoError(t, err)

	_, err = request.Process(context.Background(), request.ProductoStoreRequest{}, v, "POST", nil,
		productoBody(strings.Repeat("7", request.CodigoBarrasMax+1)))
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "El campo Código de Barras no debe tener más de 60 caracteres.", errs.First("codigo_barras"))
}
