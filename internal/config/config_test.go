package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "finbook.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "ledger.yaml", cfg.DataFile)
	assert.Equal(t, ".finbook-session", cfg.SessionFile)
	assert.Equal(t, 50, cfg.RecentLimit)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finbook.yaml")
	content := "data_file: /tmp/my-ledger.yaml\nrecent_limit: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my-ledger.yaml", cfg.DataFile)
	assert.Equal(t, 10, cfg.RecentLimit)
	assert.Equal(t, ".finbook-session", cfg.SessionFile, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINBOOK_DATA_FILE", "/tmp/env-ledger.yaml")
	t.Setenv("FINBOOK_RECENT_LIMIT", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "finbook.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-ledger.yaml", cfg.DataFile)
	assert.Equal(t, 7, cfg.RecentLimit)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finbook.yaml")
	want := &Config{DataFile: "a.yaml", SessionFile: "b", RecentLimit: 5}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.DataFile, got.DataFile)
	assert.Equal(t, want.SessionFile, got.SessionFile)
	assert.Equal(t, want.RecentLimit, got.RecentLimit)
}
