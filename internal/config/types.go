package config

import (
	"io"
	"net/url"
	"os"
)

// Source identifies where a resolved value came from.
type Source int

const (
	SourceBuiltinDefault Source = iota
	SourceProjectFile
	SourceCommandLine
)

// String returns the source name used in debug output.
func (s Source) String() string {
	switch s {
	case SourceBuiltinDefault:
		return "default"
	case SourceProjectFile:
		return "project-file"
	case SourceCommandLine:
		return "command-line"
	}
	return "unknown"
}

// RawValue is an untyped value tagged with the source that supplied it.
type RawValue struct {
	Value  any
	Source Source
}

// Header is one parsed HTTP request header.
type Header struct {
	Name  string
	Value string
}

// ResourceState distinguishes the three forms a resource-kind value can take.
type ResourceState int

const (
	ResourceUnset ResourceState = iota
	ResourcePath
	ResourceOpen
)

// ResourceRef is a deferred handle to an auxiliary JSON resource. The merger
// only records where the resource lives; no I/O happens until the resource
// resolver opens it.
type ResourceRef struct {
	state ResourceState
	path  string
	rc    io.ReadCloser
}

// ResourceFromPath records a file-system location for later opening.
func ResourceFromPath(path string) ResourceRef {
	if path == "" {
		return ResourceRef{}
	}
	return ResourceRef{state: ResourcePath, path: path}
}

// ResourceFromReader wraps an already-open stream, used by tests and by
// callers that hold the bytes themselves.
func ResourceFromReader(rc io.ReadCloser) ResourceRef {
	return ResourceRef{state: ResourceOpen, rc: rc}
}

// State reports which variant this ref holds.
func (r ResourceRef) State() ResourceState { return r.state }

// IsSet reports whether there is anything to resolve.
func (r ResourceRef) IsSet() bool { return r.state != ResourceUnset }

// Path returns the file-system location for ResourcePath refs.
func (r ResourceRef) Path() string { return r.path }

// Open yields the underlying byte stream. The caller owns the returned
// stream and must close it on every path.
func (r ResourceRef) Open() (io.ReadCloser, error) {
	if r.state == ResourceOpen {
		return r.rc, nil
	}
	return os.Open(r.path)
}

// URLValue is a parsed, scheme-checked URL. A nil inner URL means unset.
type URLValue struct {
	*url.URL
}

// IsSet reports whether a URL was supplied.
func (u URLValue) IsSet() bool { return u.URL != nil }
