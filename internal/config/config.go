// Package config carries the resolved configuration through the pipeline.
// A Draft is the mutable form the merger produces and the validators
// inspect; Freeze turns it into the immutable Config the generation engine
// consumes.
package config

// Draft is the pre-validation configuration: one typed value per declared
// option, tagged with the source it was resolved from.
type Draft struct {
	values  map[string]any
	sources map[string]Source
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{
		values:  make(map[string]any),
		sources: make(map[string]Source),
	}
}

// Set records the typed value and its source for one option.
func (d *Draft) Set(name string, value any, source Source) {
	d.values[name] = value
	d.sources[name] = source
}

// Value returns the typed value for an option.
func (d *Draft) Value(name string) any { return d.values[name] }

// Source returns where an option's value came from.
func (d *Draft) Source(name string) Source { return d.sources[name] }

// Len returns the number of resolved options.
func (d *Draft) Len() int { return len(d.values) }

// Bool returns a bool option, false when unset or mistyped.
func (d *Draft) Bool(name string) bool {
	v, _ := d.values[name].(bool)
	return v
}

// String returns a string, path or enum option.
func (d *Draft) String(name string) string {
	v, _ := d.values[name].(string)
	return v
}

// Strings returns a stringList option.
func (d *Draft) Strings(name string) []string {
	v, _ := d.values[name].([]string)
	return v
}

// Headers returns a headerList option.
func (d *Draft) Headers(name string) []Header {
	v, _ := d.values[name].([]Header)
	return v
}

// URL returns a url option.
func (d *Draft) URL(name string) URLValue {
	v, _ := d.values[name].(URLValue)
	return v
}

// Resource returns a resource option.
func (d *Draft) Resource(name string) ResourceRef {
	v, _ := d.values[name].(ResourceRef)
	return v
}

// Freeze copies the draft into an immutable Config. The draft must not be
// used afterwards.
func (d *Draft) Freeze() *Config {
	values := make(map[string]any, len(d.values))
	sources := make(map[string]Source, len(d.sources))
	for k, v := range d.values {
		values[k] = v
	}
	for k, s := range d.sources {
		sources[k] = s
	}
	return &Config{values: values, sources: sources}
}

// Config is the final validated configuration. It is never mutated after
// construction and is exclusively owned by the invocation that built it.
type Config struct {
	values  map[string]any
	sources map[string]Source
}

// Value returns the typed value for an option.
func (c *Config) Value(name string) any { return c.values[name] }

// Source returns where an option's value came from.
func (c *Config) Source(name string) Source { return c.sources[name] }

// Len returns the number of resolved options.
func (c *Config) Len() int { return len(c.values) }

// Bool returns a bool option.
func (c *Config) Bool(name string) bool {
	v, _ := c.values[name].(bool)
	return v
}

// String returns a string, path or enum option.
func (c *Config) String(name string) string {
	v, _ := c.values[name].(string)
	return v
}

// Strings returns a stringList option.
func (c *Config) Strings(name string) []string {
	v, _ := c.values[name].([]string)
	return v
}

// Headers returns a headerList option.
func (c *Config) Headers(name string) []Header {
	v, _ := c.values[name].([]Header)
	return v
}

// URL returns a url option.
func (c *Config) URL(name string) URLValue {
	v, _ := c.values[name].(URLValue)
	return v
}

// Resource returns a resource option.
func (c *Config) Resource(name string) ResourceRef {
	v, _ := c.values[name].(ResourceRef)
	return v
}
