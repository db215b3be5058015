// Package request contiene los descriptores de validación de formularios: qué reglas,
// etiquetas y filtros aplican a cada entidad según el método HTTP.
package request

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/Gestion-api/internal/domain/validation"
	"github.com/jhoicas/Gestion-api/pkg/sanitize"
)

// FormRequest descriptor de validación de una entidad.
type FormRequest interface {
	// Rules devuelve las reglas para el método; objectID solo tiene sentido en actualizaciones.
	Rules(method string, objectID int64) validation.RuleSet
	// Attributes etiquetas legibles de los campos para los mensajes de error.
	Attributes() map[string]string
	// Filters filtros de limpieza por campo ("trim|escape|digit").
	Filters() map[string]string
}

// Normalize combina el identificador de la ruta con el cuerpo: el "id" de la ruta,
// si existe, reemplaza al del cuerpo. No modifica body.
func Normalize(pathParams map[string]string, body map[string]any) map[string]any {
	out := make(map[string]any, len(body)+1)
	for k, v := range body {
		out[k] = v
	}
	if id, ok := pathParams["id"]; ok && id != "" {
		out["id"] = id
	}
	return out
}

// ObjectID extrae el id numérico de la ruta (0 si no hay o no es entero).
func ObjectID(pathParams map[string]string) int64 {
	id, err := strconv.ParseInt(pathParams["id"], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Process limpia, normaliza y valida la entrada. Si la validación falla devuelve
// validation.Errors como error; otros errores son de infraestructura.
func Process(
	ctx context.Context,
	form FormRequest,
	v *validation.Validator,
	method string,
	pathParams map[string]string,
	body map[string]any,
) (map[string]any, error) {
	s, err := sanitize.New(form.Filters())
	if err != nil {
		return nil, fmt.Errorf("filtros del formulario: %w", err)
	}
	input := Normalize(pathParams, s.Apply(body))

	rules := form.Rules(method, ObjectID(pathParams))
	errs, err := v.Validate(ctx, input, rules, form.Attributes())
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}
