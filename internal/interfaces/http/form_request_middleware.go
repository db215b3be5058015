package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/request"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// LocalInput key de c.Locals con la entrada ya limpia y validada.
const LocalInput = "form_input"

var errInvalidBody = errors.New("cuerpo inválido")

// FormRequestMiddleware limpia y valida la petición con las reglas del formulario según
// el método HTTP. Si la validación falla responde 422 con los mensajes por campo; si no,
// deja la entrada en c.Locals para el handler (ver GetInput).
func FormRequestMiddleware(form request.FormRequest, v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := decodeBody(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
		}
		input, err := request.Process(c.UserContext(), form, v, c.Method(), c.AllParams(), body)
		if err != nil {
			if errs, ok := validation.AsErrors(err); ok {
				return validationFailed(c, errs)
			}
			return respondError(c, err)
		}
		c.Locals(LocalInput, input)
		return c.Next()
	}
}

// GetInput devuelve la entrada validada por FormRequestMiddleware (nil si no se ejecutó).
func GetInput(c *fiber.Ctx) map[string]any {
	in, _ := c.Locals(LocalInput).(map[string]any)
	return in
}

// decodeBody lee JSON (conservando números como json.Number) o formularios.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	raw := c.Body()
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		out := map[string]any{}
		c.Request().PostArgs().VisitAll(func(k, val []byte) {
			out[string(k)] = string(val)
		})
		return out, nil
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errInvalidBody
		}
		out := map[string]any{}
		for k, vals := range form.Value {
			if len(vals) > 0 {
				out[k] = vals[0]
			}
		}
		return out, nil
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		out := map[string]any{}
		if err := dec.Decode(&out); err != nil {
			return nil, errInvalidBody
		}
		return out, nil
	}
}
