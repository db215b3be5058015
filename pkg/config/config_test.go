package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "xlsx", cfg.Export.Writer)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.False(t, cfg.DB.Migrate)
	assert.Equal(t, time.Hour, cfg.JWT.TTL())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_NAME", "Ferreteria")
	t.Setenv("EXPORT_WRITER", "CSV")
	t.Setenv("EXPORT_COMPANY", "Ferretería S.A.S")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("DB_MIGRATE", "true")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Ferreteria", cfg.App.Name)
	assert.Equal(t, "csv", cfg.Export.Writer)
	assert.Equal(t, "Ferretería S.A.S", cfg.Export.Company)
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ProduccionSinSecreto(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "gestion", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/gestion?sslmode=disable", db.DSN())
	assert.Equal(t, db.DSN(), db.ConnectionString())
}
