// Package engine is the boundary to the downstream generation engine. The
// configuration core only constructs the request descriptor and hands over
// a validated config; everything past that point, including remote
// retrieval, belongs to the engine.
package engine

import (
	"context"
	"errors"
	"fmt"

	"modelgen/internal/config"
	"modelgen/internal/registry"
	"modelgen/internal/resource"
)

// Request describes a remote schema document: target URL, request headers
// and the TLS-verification toggle. It is built by the core and consumed by
// the engine; the core never performs the retrieval itself.
type Request struct {
	URL       config.URLValue
	Headers   []config.Header
	IgnoreTLS bool
}

// Inputs bundles the validated configuration with the parsed resources the
// resolver produced for it.
type Inputs struct {
	Config       *config.Config
	Aliases      resource.AliasMap
	TemplateData resource.TemplateData
}

// RemoteRequest extracts the request descriptor when the input source is a
// URL; ok is false for local or stdin sources.
func (in Inputs) RemoteRequest() (Request, bool) {
	u := in.Config.URL(registry.URL)
	if !u.IsSet() {
		return Request{}, false
	}
	return Request{
		URL:       u,
		Headers:   in.Config.Headers(registry.HTTPHeaders),
		IgnoreTLS: in.Config.Bool(registry.HTTPIgnoreTLS),
	}, true
}

// Generator turns a validated configuration into generated source code.
type Generator interface {
	Generate(ctx context.Context, in Inputs) error
}

// InvalidClassNameError signals that the document root would produce an
// invalid identifier for the root generated type. The caller intercepts it
// and rewrites the message with the remediation flag.
type InvalidClassNameError struct {
	Name string
}

func (e *InvalidClassNameError) Error() string {
	return fmt.Sprintf("title=%q is invalid class name", e.Name)
}

// IsInvalidClassName checks whether err carries an invalid root class name.
func IsInvalidClassName(err error) bool {
	var icn *InvalidClassNameError
	return errors.As(err, &icn)
}
