package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/csandor/daybook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DAYBOOK_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.DBPath, filepath.Join(".daybook", "daybook.db"))
	assert.Equal(t, domain.KindTask, cfg.DefaultKind)
	assert.False(t, cfg.Plain)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "db: /tmp/elsewhere.db\ndefault_kind: plan\nplain: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
	assert.Equal(t, domain.KindPlan, cfg.DefaultKind)
	assert.True(t, cfg.Plain)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db: /tmp/file.db\n"), 0o644))
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)
	t.Setenv("DAYBOOK_DB", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_RejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_kind: chore\n"), 0o644))
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)

	_, err := Load()
	assert.ErrorContains(t, err, "invalid default_kind")
}
