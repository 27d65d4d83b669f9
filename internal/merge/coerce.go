package merge

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"modelgen/internal/config"
	"modelgen/internal/registry"
)

// Coerce converts a raw value into the typed form its kind declares.
// Coercing a value that is already typed is idempotent: the result is equal
// to the input.
func Coerce(opt registry.Option, raw any) (any, error) {
	switch opt.Kind {
	case registry.KindString:
		return coerceString(raw), nil
	case registry.KindBool:
		return coerceBool(opt, raw)
	case registry.KindPath:
		return coercePath(opt, raw)
	case registry.KindURL:
		return coerceURL(opt, raw)
	case registry.KindEnum:
		return coerceEnum(opt, raw)
	case registry.KindStringList:
		return coerceStringList(raw), nil
	case registry.KindHeaderList:
		return coerceHeaderList(opt, raw)
	case registry.KindResource:
		return coerceResource(opt, raw)
	}
	return nil, coercionErrorf(opt.Name, "unknown kind %q for option %s", opt.Kind, opt.Name)
}

func coerceString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		// project-file YAML can deliver scalars as non-strings
		return fmt.Sprintf("%v", v)
	}
}

func coerceBool(opt registry.Option, raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, coercionErrorf(opt.Name, "invalid boolean %q for %s", v, opt.Name)
		}
		return b, nil
	case nil:
		return false, nil
	}
	return false, coercionErrorf(opt.Name, "invalid boolean value for %s: %v", opt.Name, raw)
}

func coercePath(opt registry.Option, raw any) (string, error) {
	p := coerceString(raw)
	if p == "" {
		return "", nil
	}
	return resolvePath(opt, p)
}

// resolvePath expands user-relative notation and makes the path absolute.
// An already-resolved path passes through unchanged.
func resolvePath(opt registry.Option, p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", coercionErrorf(opt.Name, "cannot expand %q: %v", p, err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", coercionErrorf(opt.Name, "cannot resolve path %q: %v", p, err)
	}
	return abs, nil
}

func coerceURL(opt registry.Option, raw any) (config.URLValue, error) {
	switch v := raw.(type) {
	case config.URLValue:
		return v, nil
	case string:
		if v == "" {
			return config.URLValue{}, nil
		}
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return config.URLValue{}, coercionErrorf(opt.Name, "unsupported protocol or malformed URL")
		}
		return config.URLValue{URL: u}, nil
	case nil:
		return config.URLValue{}, nil
	}
	return config.URLValue{}, coercionErrorf(opt.Name, "unsupported protocol or malformed URL")
}

func coerceEnum(opt registry.Option, raw any) (string, error) {
	v := coerceString(raw)
	for _, member := range opt.Enum {
		if v == member {
			return v, nil
		}
	}
	return "", coercionErrorf(opt.Name, "invalid value %q for %s: must be one of: %s",
		v, opt.Name, strings.Join(opt.Enum, ", "))
}

func coerceStringList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, coerceString(item))
		}
		return out
	case nil:
		return nil
	}
	return []string{coerceString(raw)}
}

func coerceHeaderList(opt registry.Option, raw any) ([]config.Header, error) {
	if headers, ok := raw.([]config.Header); ok {
		return headers, nil
	}
	entries := coerceStringList(raw)
	if len(entries) == 0 {
		return nil, nil
	}
	headers := make([]config.Header, 0, len(entries))
	for _, entry := range entries {
		h, err := ParseHeader(opt, entry)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// ParseHeader splits one "Name: Value" entry at the first colon and
// left-trims the value.
func ParseHeader(opt registry.Option, entry string) (config.Header, error) {
	idx := strings.Index(entry, ":")
	if idx < 0 {
		return config.Header{}, coercionErrorf(opt.Name, "invalid header: %s", entry)
	}
	return config.Header{
		Name:  entry[:idx],
		Value: strings.TrimLeftFunc(entry[idx+1:], unicode.IsSpace),
	}, nil
}

func coerceResource(opt registry.Option, raw any) (config.ResourceRef, error) {
	switch v := raw.(type) {
	case config.ResourceRef:
		return v, nil
	case string, nil:
		p := coerceString(raw)
		if p == "" {
			return config.ResourceRef{}, nil
		}
		abs, err := resolvePath(opt, p)
		if err != nil {
			return config.ResourceRef{}, err
		}
		return config.ResourceFromPath(abs), nil
	}
	return config.ResourceRef{}, coercionErrorf(opt.Name, "invalid resource value for %s: %v", opt.Name, raw)
}
