package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindRoot_WalksUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "options: {}\n")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, FindRoot(nested))
}

func TestFindRoot_GitMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, FindRoot(nested))
}

func TestFindRoot_NoMarker(t *testing.T) {
	// a bare temp dir has no marker anywhere up to the filesystem root
	assert.Equal(t, "", FindRoot(t.TempDir()))
}

func TestLoad_NormalizesKeys(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), `
options:
  snake-case-field: true
  target-version: "3.8"
  base_class: custom.Base
`)

	values, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, true, values["snake_case_field"])
	assert.Equal(t, "3.8", values["target_version"])
	assert.Equal(t, "custom.Base", values["base_class"])
	assert.NotContains(t, values, "snake-case-field")
}

func TestLoad_NoProjectFile(t *testing.T) {
	values, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLoad_IgnoresOtherSections(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), `
lint:
  enabled: true
options:
  reuse-model: true
`)

	values, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"reuse_model": true}, values)
}

func TestLoad_MarkerWithoutConfigFile(t *testing.T) {
	// project root established by go.mod, but no modelgen.yaml present
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example\n")

	values, err := Load(root)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLoad_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "options: [unclosed\n")

	_, err := Load(root)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %v", err)
	assert.Contains(t, loadErr.Error(), ConfigFileName)
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"snake-case-field", "snake_case_field"},
		{"already_canonical", "already_canonical"},
		{"http-ignore-tls", "http_ignore_tls"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
