package sanitize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/sanitize"
)

func TestParse_FiltroDesconocido(t *testing.T) {
	_, err := sanitize.Parse("trim|inventado")
	assert.Error(t, err)
}

func TestChain_Filtros(t *testing.T) {
	cases := []struct {
		expr, in, want string
	}{
		{"trim", "  10  ", "10"},
		{"trim|escape", " <b>x</b> ", "&lt;b&gt;x&lt;/b&gt;"},
		{"trim|escape|digit", " 3a4 ", "34"},
		{"decimal", " 15,50 ", "15.50"},
		{"decimal", "-1.2.3", "-1.23"},
		{"capitalize", "bodega norte", "Bodega Norte"},
		{"trim|escape|date", "2024-01-01", "2024-01-01 00:00:00"},
		{"date", "31/12/2024", "2024-12-31 00:00:00"},
		{"date", "2024-01-01T10:00:00-05:00", "2024-01-01 15:00:00"},
		{"date", "2024-01-01T23:30:00+02:00", "2024-01-01 21:30:00"},
		{"date", "no es fecha", "no es fecha"},
		{"lowercase|uppercase", "Mixto", "MIXTO"},
	}
	for _, c := range cases {
		chain, err := sanitize.Parse(c.expr)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.want, chain.Apply(c.in), "%s(%q)", c.expr, c.in)
	}
}

func TestApply_NoCreaCamposNiTocaNulos(t *testing.T) {
	in := map[string]any{
		"id":          json.Number("10"),
		"valor_total": json.Number("15.5"),
		"estado":      nil,
		"extra":       " sin filtro ",
	}
	out, err := sanitize.Apply(in, map[string]string{
		"id":          "trim|escape",
		"valor_total": "trim|escape|decimal",
		"estado":      "trim|escape",
		"fecha":       "trim|escape|date",
	})
	require.NoError(t, err)

	assert.Equal(t, "10", out["id"])
	assert.Equal(t, "15.5", out["valor_total"])
	assert.Nil(t, out["estado"])
	assert.Equal(t, " sin filtro ", out["extra"])
	_, ok := out["fecha"]
	assert.False(t, ok, "un campo ausente no debe crearse")

	// la entrada original no se modifica
	assert.Equal(t, json.Number("10"), in["id"])
}
