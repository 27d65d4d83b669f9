// Package merge applies source precedence per option and coerces raw
// textual input into typed values. Precedence is strict: a command-line
// value the invocation explicitly passed beats the project file, which
// beats the built-in default.
package merge

import (
	"modelgen/internal/config"
	"modelgen/internal/registry"
)

// Resolve computes the typed draft configuration from the loaded project
// file mapping and the explicitly supplied command-line values. Both maps
// are keyed by canonical option name; absence means the source did not
// supply the option. Every declared option ends up with exactly one entry.
func Resolve(fileValues, commandLine map[string]any) (*config.Draft, error) {
	draft := config.NewDraft()
	for _, opt := range registry.All() {
		raw := config.RawValue{Value: opt.Default, Source: config.SourceBuiltinDefault}
		if v, ok := fileValues[opt.Name]; ok {
			raw = config.RawValue{Value: v, Source: config.SourceProjectFile}
		}
		if v, ok := commandLine[opt.Name]; ok {
			raw = config.RawValue{Value: v, Source: config.SourceCommandLine}
		}

		typed, err := Coerce(opt, raw.Value)
		if err != nil {
			return nil, err
		}
		draft.Set(opt.Name, typed, raw.Source)
	}
	return draft, nil
}
