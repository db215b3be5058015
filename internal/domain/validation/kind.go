package validation

import "strings"

// OperationKind clasifica el verbo HTTP según el tipo de regla que aplica.
type OperationKind int

const (
	// Other conserva las reglas básicas sin restricciones de unicidad.
	Other OperationKind = iota
	// Create corresponde a POST.
	Create
	// Update corresponde a PATCH y PUT.
	Update
	// ReadOrDelete corresponde a GET, HEAD y DELETE: sin validación de campos.
	ReadOrDelete
)

// KindFromMethod traduce el método HTTP a OperationKind.
func KindFromMethod(method string) OperationKind {
	switch strings.ToUpper(method) {
	case "GET", "HEAD", "DELETE":
		return ReadOrDelete
	case "POST":
		return Create
	case "PATCH", "PUT":
		return Update
	default:
		return Other
	}
}

func (k OperationKind) String() string {
	switch k {
	case Create:
		return "create"
	case Update:
		return "update"
	case ReadOrDelete:
		return "read_or_delete"
	default:
		return "other"
	}
}
