package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

var _ validation.PresenceVerifier = (*PresenceVerifier)(nil)

// presenceColumns tablas y columnas consultables por las reglas exists/unique.
var presenceColumns = map[string]map[string]bool{
	"users":      {"id": true, "email": true},
	"bodegas":    {"id": true},
	"categorias": {"id": true, "nombre": true},
	"productos":  {"id": true, "codigo_barras": true},
	"compras":    {"id": true},
}

// softDeleteTables tablas con columna deleted_at.
var softDeleteTables = map[string]bool{"compras": true}

// PresenceVerifier resuelve las reglas exists y unique contra PostgreSQL.
type PresenceVerifier struct {
	q Querier
}

// NewPresenceVerifier construye el verificador. Pasar pool o tx (Querier).
func NewPresenceVerifier(q Querier) *PresenceVerifier {
	return &PresenceVerifier{q: q}
}

// Exists indica si alguna fila tiene value en table.column.
func (v *PresenceVerifier) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if err := checkPresenceTarget(table, column); err != nil {
		return false, err
	}
	var ok bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)
	if err := v.q.QueryRow(ctx, query, value).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists %s.%s: %w", table, column, err)
	}
	return ok, nil
}

// Unique indica si ninguna otra fila tiene el valor. IgnoreID excluye la fila con ese id;
// WithoutTrashed excluye filas con borrado lógico.
func (v *PresenceVerifier) Unique(ctx context.Context, uq validation.UniqueQuery) (bool, error) {
	if err := checkPresenceTarget(uq.Table, uq.Column); err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1`, uq.Table, uq.Column)
	args := []any{uq.Value}
	if uq.IgnoreID != nil {
		args = append(args, *uq.IgnoreID)
		query += fmt.Sprintf(` AND id <> $%d`, len(args))
	}
	if uq.WithoutTrashed && softDeleteTables[uq.Table] {
		query += ` AND deleted_at IS NULL`
	}
	query += `)`

	var ok bool
	if err := v.q.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("unique %s.%s: %w", uq.Table, uq.Column, err)
	}
	return ok, nil
}

func checkPresenceTarget(table, column string) error {
	if !presenceColumns[table][column] {
		return fmt.Errorf("presence: %s.%s no permitido", table, column)
	}
	return nil
}
