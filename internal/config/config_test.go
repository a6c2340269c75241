package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
base_branch = "trunk"
remote_name = "upstream"
protected_branches = ["develop", "release"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "trunk", cfg.BaseBranch)
	assert.Equal(t, "upstream", cfg.RemoteName)
	assert.Equal(t, []string{"develop", "release"}, cfg.ProtectedBranches)
}

func TestLoadAppliesDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `protected_branches = ["develop"]`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseBranch, cfg.BaseBranch)
	assert.Equal(t, DefaultRemoteName, cfg.RemoteName)
	assert.Equal(t, []string{"develop"}, cfg.ProtectedBranches)
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfig(t, `base_branch = [not toml`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "main", cfg.BaseBranch)
	assert.Equal(t, "origin", cfg.RemoteName)
	assert.Empty(t, cfg.ProtectedBranches)
}
