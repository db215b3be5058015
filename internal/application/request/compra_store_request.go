package request

import (
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// Rango permitido para el código de compra.
const (
	CompraIDMin = 5
	CompraIDMax = 99
)

// CompraStoreRequest descriptor de validación de compras.
type CompraStoreRequest struct{}

var _ FormRequest = CompraStoreRequest{}

// Rules reglas por método HTTP. GET y DELETE no validan campos.
func (CompraStoreRequest) Rules(method string, objectID int64) validation.RuleSet {
	return CompraRules(validation.KindFromMethod(method), objectID)
}

// CompraRules construye las reglas de compra para el tipo de operación.
// Create exige código único; Update lo exige excluyendo la compra objectID.
func CompraRules(kind validation.OperationKind, objectID int64) validation.RuleSet {
	if kind == validation.ReadOrDelete {
		return validation.RuleSet{}
	}

	rules := validation.RuleSet{
		"id":           {validation.Required{}, validation.Integer{}, validation.Between{Min: CompraIDMin, Max: CompraIDMax}},
		"fecha":        {validation.Required{}, validation.DateTime{}},
		"valor_total":  {validation.Required{}, validation.Decimal{}, validation.Min{Value: 2}, validation.Max{Value: 60}},
		"proveedor_id": {validation.Required{}, validation.Integer{}, validation.Exists{Table: "users", Column: "id"}},
		"bodega_id":    {validation.Required{}, validation.Integer{}, validation.Exists{Table: "bodegas", Column: "id"}},
		"estado":       {validation.Nullable{}, validation.In{Values: estadoValues()}},
		"created_at":   {validation.Nullable{}, validation.Date{}},
		"updated_at":   {validation.Nullable{}, validation.Date{}},
		"deleted_at":   {validation.Nullable{}, validation.Date{}},
	}

	switch kind {
	case validation.Create:
		rules["id"] = append(rules["id"], validation.UniqueIn("compras", "id"))
	case validation.Update:
		rules["id"] = append(rules["id"], validation.UniqueIn("compras", "id").Ignoring(objectID))
	}
	return rules
}

// Attributes etiquetas de los campos de compra.
func (CompraStoreRequest) Attributes() map[string]string {
	return map[string]string{
		"id":           "Código Compra",
		"fecha":        "Fecha",
		"valor_total":  "Valor Total",
		"proveedor_id": "proveedor",
		"bodega_id":    "bodega",
		"estado":       "Estado",
		"created_at":   "Creado",
		"updated_at":   "Actualizado",
	}
}

// Filters filtros de limpieza de compra.
func (CompraStoreRequest) Filters() map[string]string {
	return map[string]string{
		"id":           "trim|escape",
		"fecha":        "trim|escape|date",
		"valor_total":  "trim|escape|decimal",
		"proveedor_id": "trim|escape|digit",
		"bodega_id":    "trim|escape|digit|capitalize",
		"estado":       "trim|escape",
	}
}

func estadoValues() []string {
	estados := entity.EstadosCompra()
	out := make([]string, 0, len(estados))
	for _, e := range estados {
		out = append(out, string(e))
	}
	return out
}
