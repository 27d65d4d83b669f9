// Package cli binds the option catalogue onto a pflag flag set and reads
// back the values the invocation actually supplied. Presence is tracked per
// flag, so a command-line value equal to its default still counts as
// explicitly supplied.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"modelgen/internal/registry"
)

// FlagName returns the dashed command-line form of an option name.
func FlagName(option string) string {
	return strings.ReplaceAll(option, "_", "-")
}

// Register declares one flag per catalogue option. Defaults shown in help
// come straight from the registry; the merger applies them itself, so an
// untouched flag is never read back.
func Register(fs *pflag.FlagSet) {
	for _, opt := range registry.All() {
		name := FlagName(opt.Name)
		switch opt.Kind {
		case registry.KindBool:
			def, _ := opt.Default.(bool)
			fs.Bool(name, def, opt.Help)
		case registry.KindStringList, registry.KindHeaderList:
			fs.StringArray(name, nil, opt.Help)
		case registry.KindEnum:
			def, _ := opt.Default.(string)
			help := fmt.Sprintf("%s (one of: %s)", opt.Help, strings.Join(opt.Enum, ", "))
			fs.String(name, def, help)
		default:
			// string, path, url and resource options all arrive as text
			def, _ := opt.Default.(string)
			fs.String(name, def, opt.Help)
		}
	}
}

// Collect returns the raw value of every flag the invocation explicitly
// passed, keyed by canonical option name. Flags left untouched are absent
// from the result.
func Collect(fs *pflag.FlagSet) (map[string]any, error) {
	supplied := make(map[string]any)
	var err error
	for _, opt := range registry.All() {
		name := FlagName(opt.Name)
		if !fs.Changed(name) {
			continue
		}
		switch opt.Kind {
		case registry.KindBool:
			var v bool
			if v, err = fs.GetBool(name); err == nil {
				supplied[opt.Name] = v
			}
		case registry.KindStringList, registry.KindHeaderList:
			var v []string
			if v, err = fs.GetStringArray(name); err == nil {
				supplied[opt.Name] = v
			}
		default:
			var v string
			if v, err = fs.GetString(name); err == nil {
				supplied[opt.Name] = v
			}
		}
		if err != nil {
			return nil, fmt.Errorf("read flag --%s: %w", name, err)
		}
	}
	return supplied, nil
}
