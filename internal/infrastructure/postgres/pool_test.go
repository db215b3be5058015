package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/config"
)

func TestNewPoolConfig_TamañosYHost(t *testing.T) {
	pc, err := newPoolConfig(config.DBConfig{
		Host: "db.interno", Port: 5433, User: "app", Password: "secreto", DBName: "gestion", SSLMode: "disable",
		MaxConns: 12, MinConns: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(12), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, "db.interno", pc.ConnConfig.Host, "el host se usa tal cual, sin resolver")
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.NotNil(t, pc.AfterConnect, "registra el codec decimal")
}

func TestNewPoolConfig_DatabaseURLYDefaults(t *testing.T) {
	pc, err := newPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@pg.example.com:6543/otra?sslmode=disable",
		Host:        "ignorado",
	})
	require.NoError(t, err)

	assert.Equal(t, "pg.example.com", pc.ConnConfig.Host)
	assert.Equal(t, "otra", pc.ConnConfig.Database)
	assert.Greater(t, pc.MaxConns, int32(0), "sin MaxConns se conserva el valor por defecto")
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:notaport/db"})
	assert.ErrorContains(t, err, "parse DSN")
}
