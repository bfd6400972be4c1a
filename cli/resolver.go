package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the named section of a YAML configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// The YAML document is interpreted as follows:
//   - Only the top-level section matching name is consulted; sibling
//     sections are ignored
//   - Keys are flag names; both hyphenated (log-level) and underscored
//     (log_level) spellings resolve the same flag
//   - Numbers are converted to strings for Kong's flag parser
//   - Booleans, strings, and sequences pass through unchanged
//
// Example configuration file:
//
//	config:
//	  log-level: debug
//	  log-format: json
//	  log-pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override configuration file values. A missing,
// malformed, or scalar-valued section yields an empty configuration rather
// than an error, so a broken file never prevents startup.
func resolve(name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var root map[string]any

		if err := yaml.NewDecoder(r).Decode(&root); err != nil {
			return config{}, nil
		}

		section, ok := root[name].(map[string]any)
		if !ok {
			return config{}, nil
		}

		values := make(config, len(section))
		for key, val := range section {
			values[key] = flagValue(val)
		}

		return values, nil
	}
}

// config implements [kong.Resolver] for YAML configuration sections.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the section was already decoded successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but configuration keys
	// may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	underscoreName := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value into a form Kong's flag parser
// accepts. Numbers become strings, sequence elements are converted
// recursively, and everything else passes through.
func flagValue(val any) any {
	switch v := val.(type) {
	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		elems := make([]any, len(v))
		for i, e := range v {
			elems[i] = flagValue(e)
		}

		return elems

	default:
		return v
	}
}
