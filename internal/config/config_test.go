package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ethereum", cfg.DefaultNetwork)
	assert.Equal(t, "mainnet", cfg.NetworkMode)
	assert.Equal(t, 24*time.Hour, cfg.Window())
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.DefaultNetwork = "base"
	cfg.NetworkMode = "testnet"
	cfg.DefaultWindow = "72h"
	cfg.SetExplorerAPI("base", "https://custom.example/api")
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "base", reloaded.DefaultNetwork)
	assert.Equal(t, "testnet", reloaded.NetworkMode)
	assert.Equal(t, 72*time.Hour, reloaded.Window())
	assert.Equal(t, "https://custom.example/api", reloaded.ExplorerAPIOverride("base"))
}

func TestLoadCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestWindowFallback(t *testing.T) {
	cfg := defaults(t.TempDir())
	cfg.DefaultWindow = "garbage"
	assert.Equal(t, 24*time.Hour, cfg.Window())

	cfg.DefaultWindow = "-5h"
	assert.Equal(t, 24*time.Hour, cfg.Window())
}

func TestExplorerAPIOverrideUnset(t *testing.T) {
	cfg := defaults(t.TempDir())
	assert.Empty(t, cfg.ExplorerAPIOverride("ethereum"))
}

func TestConfigFilePermissions(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
