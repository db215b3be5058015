package usecase_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

type memProductos struct {
	items   []*entity.Producto
	queries []repository.ProductoQuery
}

func (m *memProductos) Create(_ context.Context, p *entity.Producto) error {
	p.ID = int64(len(m.items) + 1)
	p.Categoria = &entity.Categoria{ID: p.CategoriaID, Nombre: "Ferretería"}
	m.items = append(m.items, p)
	return nil
}

func (m *memProductos) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	for _, p := range m.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductos) Update(_ context.Context, p *entity.Producto) error {
	for i, cur := range m.items {
		if cur.ID == p.ID {
			m.items[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memProductos) Delete(context.Context, int64) error { return nil }

func (m *memProductos) Query(_ context.Context, q repository.ProductoQuery) (*repository.ProductoPage, error) {
	m.queries = append(m.queries, q)
	var out []*entity.Producto
	for _, p := range m.items {
		if q.Filter.CategoriaID != 0 && p.CategoriaID != q.Filter.CategoriaID {
			continue
		}
		out = append(out, p)
	}
	return &repository.ProductoPage{Items: out, Total: len(m.items), Filtered: len(out)}, nil
}

// fakeWriter escribe una línea por fila y registra los ganchos recibidos.
type fakeWriter struct {
	hooks datatable.Hooks
}

func (w *fakeWriter) Format() string      { return "csv" }
func (w *fakeWriter) ContentType() string { return "text/csv" }
func (w *fakeWriter) Write(_ context.Context, doc datatable.ExportDocument, hooks datatable.Hooks, out io.Writer) error {
	w.hooks = hooks
	for _, r := range doc.Rows {
		if _, err := io.WriteString(out, r[1]+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type fakePrinter struct{ doc datatable.PrintDocument }

func (p *fakePrinter) Print(_ context.Context, doc datatable.PrintDocument) ([]byte, error) {
	p.doc = doc
	return []byte("%PDF-fake"), nil
}

func newProductoUC(repo *memProductos, w *fakeWriter, p *fakePrinter) *usecase.ProductoUseCase {
	table := datatable.NewProductoDataTable("Gestion", "Ferretería S.A.S").
		WithClock(func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) })
	return usecase.NewProductoUseCase(repo, table, map[string]datatable.Writer{"csv": w}, p).WithDefaultFormat("csv")
}

func seedProductos(t *testing.T, uc *usecase.ProductoUseCase) {
	t.Helper()
	for _, in := range []dto.ProductoInput{
		{Nombre: "Tornillo", CategoriaID: 1, UnidadMedida: "und", Stock: 10, Precio: decimal.NewFromInt(100)},
		{Nombre: "Pintura", CategoriaID: 2, UnidadMedida: "gal", Stock: 0, Precio: decimal.NewFromInt(50000)},
	} {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestProductoUseCase_CrudBasico(t *testing.T) {
	repo := &memProductos{}
	uc := newProductoUC(repo, &fakeWriter{}, &fakePrinter{})
	seedProductos(t, uc)

	got, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ferretería", got.Categoria)

	upd, err := uc.Update(context.Background(), 1, dto.ProductoInput{Nombre: "Tornillo 1/2", CategoriaID: 1, UnidadMedida: "und", Precio: decimal.NewFromInt(120)})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo 1/2", upd.Nombre)

	_, err = uc.Update(context.Background(), 99, dto.ProductoInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoUseCase_DataTableUsaFuente(t *testing.T) {
	repo := &memProductos{}
	uc := newProductoUC(repo, &fakeWriter{}, &fakePrinter{})
	seedProductos(t, uc)

	resp, err := uc.DataTable(context.Background(), datatable.Request{Draw: 2, Length: 10}, repository.ProductoFilter{CategoriaID: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Draw)
	assert.Equal(t, 2, resp.RecordsTotal)
	assert.Equal(t, 1, resp.RecordsFiltered)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Pintura", resp.Data[0]["nombre"])

	last := repo.queries[len(repo.queries)-1]
	assert.Equal(t, int64(2), last.Filter.CategoriaID)
	assert.Equal(t, "id", last.OrderBy)
}

func TestProductoUseCase_Export(t *testing.T) {
	repo := &memProductos{}
	w := &fakeWriter{}
	uc := newProductoUC(repo, w, &fakePrinter{})
	seedProductos(t, uc)

	file, err := uc.Export(context.Background(), "", repository.ProductoFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Gestion_Productos_20240506070809.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "Tornillo\nPintura\n", string(file.Content))
	assert.NotNil(t, w.hooks, "el listado aporta los ganchos")

	last := repo.queries[len(repo.queries)-1]
	assert.Zero(t, last.Limit, "la exportación no pagina")

	_, err = uc.Export(context.Background(), "docx", repository.ProductoFilter{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestProductoUseCase_Print(t *testing.T) {
	repo := &memProductos{}
	printer := &fakePrinter{}
	uc := newProductoUC(repo, &fakeWriter{}, printer)
	seedProductos(t, uc)

	file, err := uc.Print(context.Background(), repository.ProductoFilter{CategoriaID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Gestion_Productos_20240506070809.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
	assert.Equal(t, "Lista de Productos", printer.doc.Title)
	assert.Len(t, printer.doc.Rows, 1)
	assert.NotContains(t, printer.doc.Headers, "Acciones")
}
