package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"modelgen/internal/config"
	"modelgen/internal/registry"
)

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		option     string
		file       map[string]any
		flags      map[string]any
		want       any
		wantSource config.Source
	}{
		{
			name:       "default only",
			option:     registry.BaseClass,
			want:       registry.DefaultBaseClass,
			wantSource: config.SourceBuiltinDefault,
		},
		{
			name:       "file beats default",
			option:     registry.BaseClass,
			file:       map[string]any{registry.BaseClass: "file.Base"},
			want:       "file.Base",
			wantSource: config.SourceProjectFile,
		},
		{
			name:       "command line beats file",
			option:     registry.BaseClass,
			file:       map[string]any{registry.BaseClass: "file.Base"},
			flags:      map[string]any{registry.BaseClass: "cli.Base"},
			want:       "cli.Base",
			wantSource: config.SourceCommandLine,
		},
		{
			name:       "explicit cli value equal to default still wins",
			option:     registry.FieldConstraints,
			file:       map[string]any{registry.FieldConstraints: true},
			flags:      map[string]any{registry.FieldConstraints: false},
			want:       false,
			wantSource: config.SourceCommandLine,
		},
		{
			name:       "bool from file",
			option:     registry.SnakeCaseField,
			file:       map[string]any{registry.SnakeCaseField: true},
			want:       true,
			wantSource: config.SourceProjectFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := Resolve(tt.file, tt.flags)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, draft.Value(tt.option)); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
			if got := draft.Source(tt.option); got != tt.wantSource {
				t.Errorf("expected source %s, got %s", tt.wantSource, got)
			}
		})
	}
}

func TestResolve_EveryOptionResolved(t *testing.T) {
	draft, err := Resolve(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.Len() != len(registry.All()) {
		t.Fatalf("expected %d entries, got %d", len(registry.All()), draft.Len())
	}
	for _, opt := range registry.All() {
		if draft.Source(opt.Name) != config.SourceBuiltinDefault {
			t.Errorf("%s: expected builtin default source", opt.Name)
		}
	}
}

func TestResolve_AllDefaults(t *testing.T) {
	// invocation with no options and no project file resolves to exactly
	// the built-in defaults, with stdin as the document source
	draft, err := Resolve(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.String(registry.Input) != "" {
		t.Errorf("expected empty input (stdin source), got %q", draft.String(registry.Input))
	}
	if draft.URL(registry.URL).IsSet() {
		t.Error("expected unset url")
	}
	if draft.String(registry.TargetVersion) != registry.DefaultTargetVersion {
		t.Errorf("expected target version %s, got %s", registry.DefaultTargetVersion, draft.String(registry.TargetVersion))
	}
	if draft.Bool(registry.FieldConstraints) {
		t.Error("expected field_constraints=false")
	}
	if draft.Resource(registry.Aliases).IsSet() {
		t.Error("expected unset aliases resource")
	}
}

func TestResolve_UnknownFileKeysIgnored(t *testing.T) {
	draft, err := Resolve(map[string]any{"no_such_option": "x"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Len() != len(registry.All()) {
		t.Errorf("unknown keys must not create entries, got %d", draft.Len())
	}
}

func TestResolve_CoercionFailureIsFatal(t *testing.T) {
	_, err := Resolve(map[string]any{registry.URL: "ftp://example.com"}, nil)
	if err == nil {
		t.Fatal("expected coercion error")
	}
	if _, ok := err.(*CoercionError); !ok {
		t.Errorf("expected *CoercionError, got %T", err)
	}
}

// Precedence is total: for every combination of {absent, file, cli} the
// merged value is the command-line value if supplied, else the file value,
// else the built-in default.
func TestResolve_PrecedenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("string option follows precedence", prop.ForAll(
		func(inFile, inCLI bool, fileVal, cliVal string) bool {
			file := map[string]any{}
			flags := map[string]any{}
			if inFile {
				file[registry.BaseClass] = fileVal
			}
			if inCLI {
				flags[registry.BaseClass] = cliVal
			}

			draft, err := Resolve(file, flags)
			if err != nil {
				return false
			}

			want := registry.DefaultBaseClass
			if inFile {
				want = fileVal
			}
			if inCLI {
				want = cliVal
			}
			return draft.String(registry.BaseClass) == want
		},
		gen.Bool(),
		gen.Bool(),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("bool option follows precedence", prop.ForAll(
		func(inFile, inCLI, fileVal, cliVal bool) bool {
			file := map[string]any{}
			flags := map[string]any{}
			if inFile {
				file[registry.ReuseModel] = fileVal
			}
			if inCLI {
				flags[registry.ReuseModel] = cliVal
			}

			draft, err := Resolve(file, flags)
			if err != nil {
				return false
			}

			want := false
			if inFile {
				want = fileVal
			}
			if inCLI {
				want = cliVal
			}
			return draft.Bool(registry.ReuseModel) == want
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
