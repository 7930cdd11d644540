package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "molino-api", cfg.App.Name)
	assert.Equal(t, StoragePostgres, cfg.App.Storage)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.LockTTL)
	assert.True(t, cfg.Production.EfficiencyThreshold.Equal(decimal.NewFromInt(65)),
		"el umbral de eficiencia por defecto es 65%")
}

func TestFromViper_Sobrescritos(t *testing.T) {
	v := viper.New()
	v.Set("APP_STORAGE", "MEMORY")
	v.Set("HTTP_PORT", "9090")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("PRODUCTION_EFFICIENCY_THRESHOLD", "62.5")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.App.Storage)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "62.5", cfg.Production.EfficiencyThreshold.String())
}

func TestFromViper_UmbralInvalido(t *testing.T) {
	v := viper.New()
	v.Set("PRODUCTION_EFFICIENCY_THRESHOLD", "abc")
	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("PRODUCTION_EFFICIENCY_THRESHOLD", "-1")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_StorageDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("APP_STORAGE", "sqlite")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "molino", Password: "p@ss/word", DBName: "molino", SSLMode: "disable"}
	assert.Equal(t, "postgres://molino:p%40ss%2Fword@db:5432/molino?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
