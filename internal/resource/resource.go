// Package resource performs the scoped loading of auxiliary JSON resources
// referenced by configuration values: the alias map and the extra template
// data map. Streams are opened for the single read that consumes them and
// released on every exit path, including parse failure.
package resource

import (
	"encoding/json"
	"fmt"
	"io"

	"modelgen/internal/config"
)

// Error reports a resource that is missing, unreadable or malformed.
type Error struct {
	Resource string // logical name, e.g. "aliases"
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to load %s: %v", e.Resource, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// AliasFormatError reports an alias map that parsed as JSON but does not
// have the required flat string-to-string shape. It is distinct from a base
// parse failure.
type AliasFormatError struct {
	Resource string
}

func (e *AliasFormatError) Error() string {
	return fmt.Sprintf(`%s must be a JSON string mapping (e.g. {"from": "to", ...})`, e.Resource)
}

// AliasMap is the parsed alias resource: a flat string-to-string mapping.
type AliasMap map[string]string

// TemplateData is the parsed extra-template-data resource. Lookups of
// unseen keys default-construct an empty object, so templates can probe
// freely without nil checks.
type TemplateData map[string]map[string]any

// Lookup returns the nested object for key, inserting an empty one on first
// access.
func (t TemplateData) Lookup(key string) map[string]any {
	if obj, ok := t[key]; ok {
		return obj
	}
	obj := map[string]any{}
	t[key] = obj
	return obj
}

// LoadAliases reads and shape-checks the alias map behind ref. An unset ref
// yields a nil map.
func LoadAliases(name string, ref config.ResourceRef) (AliasMap, error) {
	if !ref.IsSet() {
		return nil, nil
	}
	raw, err := readJSON(name, ref)
	if err != nil {
		return nil, err
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &AliasFormatError{Resource: name}
	}
	aliases := make(AliasMap, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			return nil, &AliasFormatError{Resource: name}
		}
		aliases[k] = s
	}
	return aliases, nil
}

// LoadTemplateData reads the extra-template-data map behind ref. Values
// must be JSON objects; scalars at the top level are a shape error.
func LoadTemplateData(name string, ref config.ResourceRef) (TemplateData, error) {
	if !ref.IsSet() {
		return nil, nil
	}
	raw, err := readJSON(name, ref)
	if err != nil {
		return nil, err
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Resource: name, Err: fmt.Errorf("top-level value must be a JSON object")}
	}
	data := make(TemplateData, len(obj))
	for k, v := range obj {
		nested, ok := v.(map[string]any)
		if !ok {
			return nil, &Error{Resource: name, Err: fmt.Errorf("value for %q must be a JSON object", k)}
		}
		data[k] = nested
	}
	return data, nil
}

// readJSON opens the underlying stream, decodes one JSON document, and
// closes the stream unconditionally.
func readJSON(name string, ref config.ResourceRef) (any, error) {
	rc, err := ref.Open()
	if err != nil {
		return nil, &Error{Resource: name, Err: err}
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, &Error{Resource: name, Err: err}
	}
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &Error{Resource: name, Err: err}
	}
	return raw, nil
}
