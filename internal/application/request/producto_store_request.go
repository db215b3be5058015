package request

import (
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// ProductoStoreRequest descriptor de validación de productos.
type ProductoStoreRequest struct{}

var _ FormRequest = ProductoStoreRequest{}

// CodigoBarrasMax longitud de la columna productos.codigo_barras.
const CodigoBarrasMax = 60

// Rules reglas por método HTTP. GET y DELETE no validan campos.
func (ProductoStoreRequest) Rules(method string, objectID int64) validation.RuleSet {
	kind := validation.KindFromMethod(method)
	if kind == validation.ReadOrDelete {
		return validation.RuleSet{}
	}

	barras := validation.UniqueIn("productos", "codigo_barras")
	barras.WithoutTrashed = false
	if kind == validation.Update {
		barras = barras.Ignoring(objectID)
	}

	return validation.RuleSet{
		"nombre":             {validation.Required{}, validation.String{}, validation.Max{Value: 200}},
		"categoria_id":       {validation.Required{}, validation.Integer{}, validation.Exists{Table: "categorias", Column: "id"}},
		"referencia_fabrica": {validation.Nullable{}, validation.String{}, validation.Max{Value: 100}},
		"codigo_barras":      {validation.Nullable{}, validation.String{}, validation.Max{Value: CodigoBarrasMax}, barras},
		"unidad_medida":      {validation.Required{}, validation.String{}, validation.Max{Value: 20}},
		"descripcion":        {validation.Nullable{}, validation.String{}},
		"stock":              {validation.Required{}, validation.Integer{}, validation.Min{Value: 0}},
		"precio":             {validation.Required{}, validation.Numeric{}, validation.Min{Value: 0}},
	}
}

// Attributes etiquetas de los campos de producto.
func (ProductoStoreRequest) Attributes() map[string]string {
	return map[string]string{
		"nombre":             "Nombre",
		"categoria_id":       "categoría",
		"referencia_fabrica": "Referencia de Fábrica",
		"codigo_barras":      "Código de Barras",
		"unidad_medida":      "Unidad de Medida",
		"descripcion":        "Descripción",
		"stock":              "Stock",
		"precio":             "Precio",
	}
}

// Filters filtros de limpieza de producto.
func (ProductoStoreRequest) Filters() map[string]string {
	return map[string]string{
		"nombre":             "trim|escape",
		"categoria_id":       "trim|escape|digit",
		"referencia_fabrica": "trim|escape|uppercase",
		"codigo_barras":      "trim|escape",
		"unidad_medida":      "trim|escape|lowercase",
		"descripcion":        "trim|escape",
		"stock":              "trim|escape",
		"precio":             "trim|escape|decimal",
	}
}
