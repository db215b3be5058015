package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
)

func TestColumnWeights(t *testing.T) {
	weights, grid := columnWeights(
		[]string{"#", "Nombre"},
		[][]string{{"1", "Descripción bastante larga de un producto de ferretería"}},
	)
	assert.Equal(t, []int{1, 4}, weights)
	assert.Equal(t, 5, grid)
}

func TestPrint_GeneraPDF(t *testing.T) {
	p := NewMarotoListPrinter("Ferretería S.A.S")
	out, err := p.Print(context.Background(), datatable.PrintDocument{
		Title:       "Lista de Productos",
		Subtitle:    "Gestion · 2 Productos",
		Headers:     []string{"#", "Nombre", "Precio"},
		Rows:        [][]string{{"1", "Tornillo", "1250.50"}, {"2", "Tuerca", "300.00"}},
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPrint_SinColumnas(t *testing.T) {
	_, err := NewMarotoListPrinter("").Print(context.Background(), datatable.PrintDocument{Title: "x"})
	assert.Error(t, err)
}
