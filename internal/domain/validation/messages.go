package validation

var defaultMessages = map[string]string{
	"default":         "El campo :attribute no es válido.",
	"required":        "El campo :attribute es obligatorio.",
	"integer":         "El campo :attribute debe ser un número entero.",
	"numeric":         "El campo :attribute debe ser numérico.",
	"decimal":         "El campo :attribute debe ser un número decimal.",
	"string":          "El campo :attribute debe ser una cadena de caracteres.",
	"date":            "El campo :attribute no es una fecha válida.",
	"datetime":        "El campo :attribute no es una fecha y hora válida.",
	"between.numeric": "El campo :attribute debe estar entre :min y :max.",
	"between.string":  "El campo :attribute debe tener entre :min y :max caracteres.",
	"min.numeric":     "El campo :attribute debe ser al menos :min.",
	"min.string":      "El campo :attribute debe tener al menos :min caracteres.",
	"max.numeric":     "El campo :attribute no debe ser mayor que :max.",
	"max.string":      "El campo :attribute no debe tener más de :max caracteres.",
	"in":              "El :attribute seleccionado no es válido.",
	"exists":          "El :attribute seleccionado no existe.",
	"unique":          "El :attribute ya ha sido registrado.",
	"email":           "El campo :attribute debe ser un correo electrónico válido.",
}
