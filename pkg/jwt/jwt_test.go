package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate("secreto", jwt.Identity{UserID: 42, Role: "bodeguero"}, "gestion", time.Hour)
	require.NoError(t, err)

	id, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, "bodeguero", id.Role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", jwt.Identity{UserID: 1, Role: "admin"}, "gestion", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", jwt.Identity{UserID: 1, Role: "admin"}, "gestion", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Identity{UserID: 1}, "gestion", time.Hour)
	assert.Error(t, err)
}
