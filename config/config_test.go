package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithNoPathEnablesEverything(t *testing.T) {
	names, err := Load("")
	require.NoError(t, err)
	assert.ElementsMatch(t, AllEnabled(), names)
}

func TestLoadMissingFileEnablesEverything(t *testing.T) {
	names, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.ElementsMatch(t, AllEnabled(), names)
}

func TestLoadParsesFeatureTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cortado.toml")
	content := "[features]\nprint = true\nreturn = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	names, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"print", "return"}, names)
}

func TestApplyOverrides(t *testing.T) {
	out := ApplyOverrides([]string{"print"}, []string{"return"}, []string{"print"})
	assert.ElementsMatch(t, []string{"return"}, out)
}
