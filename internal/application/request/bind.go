package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// BindCompra convierte la entrada validada en CompraInput.
func BindCompra(in map[string]any) (dto.CompraInput, error) {
	var out dto.CompraInput
	var err error
	if out.ID, err = intField(in, "id"); err != nil {
		return out, err
	}
	if out.Fecha, err = timeField(in, "fecha"); err != nil {
		return out, err
	}
	if out.ValorTotal, err = decimalField(in, "valor_total"); err != nil {
		return out, err
	}
	if out.ProveedorID, err = intField(in, "proveedor_id"); err != nil {
		return out, err
	}
	if out.BodegaID, err = intField(in, "bodega_id"); err != nil {
		return out, err
	}
	out.Estado = stringField(in, "estado")
	return out, nil
}

// BindProducto convierte la entrada validada en ProductoInput.
func BindProducto(in map[string]any) (dto.ProductoInput, error) {
	out := dto.ProductoInput{
		Nombre:            stringField(in, "nombre"),
		ReferenciaFabrica: stringField(in, "referencia_fabrica"),
		CodigoBarras:      stringField(in, "codigo_barras"),
		UnidadMedida:      stringField(in, "unidad_medida"),
		Descripcion:       stringField(in, "descripcion"),
	}
	var err error
	if out.CategoriaID, err = intField(in, "categoria_id"); err != nil {
		return out, err
	}
	if out.Stock, err = intField(in, "stock"); err != nil {
		return out, err
	}
	if out.Precio, err = decimalField(in, "precio"); err != nil {
		return out, err
	}
	return out, nil
}

func stringField(in map[string]any, key string) string {
	v, ok := in[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

func intField(in map[string]any, key string) (int64, error) {
	n, err := strconv.ParseInt(stringField(in, key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s no es entero", domain.ErrInvalidInput, key)
	}
	return n, nil
}

func decimalField(in map[string]any, key string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(stringField(in, key))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s no es decimal", domain.ErrInvalidInput, key)
	}
	return d, nil
}

func timeField(in map[string]any, key string) (time.Time, error) {
	s := stringField(in, key)
	for _, layout := range validation.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s no es fecha", domain.ErrInvalidInput, key)
}
