package resource

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelgen/internal/config"
)

func refFromFile(t *testing.T, content string) config.ResourceRef {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resource.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return config.ResourceFromPath(path)
}

func TestLoadAliases_Valid(t *testing.T) {
	aliases, err := LoadAliases("alias mapping", refFromFile(t, `{"from": "to", "Foo": "Bar"}`))
	require.NoError(t, err)
	assert.Equal(t, AliasMap{"from": "to", "Foo": "Bar"}, aliases)
}

func TestLoadAliases_Unset(t *testing.T) {
	aliases, err := LoadAliases("alias mapping", config.ResourceRef{})
	require.NoError(t, err)
	assert.Nil(t, aliases)
}

func TestLoadAliases_NonStringValue(t *testing.T) {
	_, err := LoadAliases("alias mapping", refFromFile(t, `{"a": 1}`))

	var ferr *AliasFormatError
	require.True(t, errors.As(err, &ferr), "expected *AliasFormatError, got %v", err)
	assert.Contains(t, ferr.Error(), "string mapping")
}

func TestLoadAliases_NonObject(t *testing.T) {
	_, err := LoadAliases("alias mapping", refFromFile(t, `["a", "b"]`))

	var ferr *AliasFormatError
	require.True(t, errors.As(err, &ferr), "shape error expected, got %v", err)
}

func TestLoadAliases_MalformedJSON(t *testing.T) {
	_, err := LoadAliases("alias mapping", refFromFile(t, `{"a": `))

	// a syntax error is a base resource error, not a shape error
	var ferr *AliasFormatError
	assert.False(t, errors.As(err, &ferr))
	var rerr *Error
	require.True(t, errors.As(err, &rerr), "expected *Error, got %v", err)
	assert.Equal(t, "alias mapping", rerr.Resource)
	assert.Contains(t, rerr.Error(), "alias mapping")
}

func TestLoadAliases_MissingFile(t *testing.T) {
	_, err := LoadAliases("alias mapping", config.ResourceFromPath("/nonexistent/aliases.json"))

	var rerr *Error
	require.True(t, errors.As(err, &rerr), "expected *Error, got %v", err)
}

func TestLoadTemplateData_Valid(t *testing.T) {
	data, err := LoadTemplateData("extra template data",
		refFromFile(t, `{"Pet": {"custom": true}, "Person": {}}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"custom": true}, data.Lookup("Pet"))
	assert.Equal(t, map[string]any{}, data.Lookup("Person"))
}

func TestLoadTemplateData_DefaultOnMissingKey(t *testing.T) {
	data, err := LoadTemplateData("extra template data", refFromFile(t, `{}`))
	require.NoError(t, err)

	obj := data.Lookup("Unseen")
	require.NotNil(t, obj)
	assert.Empty(t, obj)

	// first access inserts: later lookups see the same object
	obj["k"] = "v"
	assert.Equal(t, "v", data.Lookup("Unseen")["k"])
}

func TestLoadTemplateData_ScalarValue(t *testing.T) {
	_, err := LoadTemplateData("extra template data", refFromFile(t, `{"Pet": "nope"}`))

	var rerr *Error
	require.True(t, errors.As(err, &rerr), "expected *Error, got %v", err)
	assert.Contains(t, rerr.Error(), "Pet")
}

// closeRecorder wraps a reader and records whether Close ran.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestStreamReleasedOnParseFailure(t *testing.T) {
	rec := &closeRecorder{Reader: strings.NewReader(`{"broken": `)}

	_, err := LoadAliases("alias mapping", config.ResourceFromReader(rec))
	require.Error(t, err)
	assert.True(t, rec.closed, "stream must be released on parse failure")
}

func TestStreamReleasedOnSuccess(t *testing.T) {
	rec := &closeRecorder{Reader: strings.NewReader(`{"a": "b"}`)}

	_, err := LoadAliases("alias mapping", config.ResourceFromReader(rec))
	require.NoError(t, err)
	assert.True(t, rec.closed, "stream must be released on success")
}
