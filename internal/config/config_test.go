package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "linkpulse", cfg.AppName)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, Development, cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, SQLiteDatabase, cfg.DatabaseType)
	assert.Equal(t, "storage/linkpulse-development.db", cfg.GetDatabasePath())
}

func TestGetConfigEnvOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("LINKPULSE_ENV", Test)
	t.Setenv("LINKPULSE_APP_PORT", "8081")

	cfg := GetConfig()
	assert.True(t, cfg.IsTest())
	assert.Equal(t, "8081", cfg.AppPort)
}

func TestConnectionPoolSizing(t *testing.T) {
	testCfg := &Config{Environment: Test}
	assert.Equal(t, 1, testCfg.GetMaxOpenConns())
	assert.Equal(t, 1, testCfg.GetMaxIdleConns())

	prodCfg := &Config{Environment: Production}
	assert.Equal(t, 10, prodCfg.GetMaxOpenConns())
	assert.Equal(t, 5, prodCfg.GetMaxIdleConns())

	explicit := &Config{Environment: Production, DatabaseMaxOpenConns: 25, DatabaseMaxIdleConns: 7}
	assert.Equal(t, 25, explicit.GetMaxOpenConns())
	assert.Equal(t, 7, explicit.GetMaxIdleConns())
}

func TestValidate(t *testing.T) {
	valid := &Config{Environment: Production, DatabaseType: SQLiteDatabase}
	assert.NoError(t, valid.validate())

	badEnv := &Config{Environment: "staging", DatabaseType: SQLiteDatabase}
	assert.Error(t, badEnv.validate())

	badDB := &Config{Environment: Production, DatabaseType: "postgres"}
	assert.Error(t, badDB.validate())
}
