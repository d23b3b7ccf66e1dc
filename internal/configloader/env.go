package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpara/pkg/config"
)

// envVarPrefix prefixes every environment override.
const envVarPrefix = "MDPARA_"

// envBinding applies one environment variable to a config.
type envBinding struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envBindings maps variable names (without prefix) to their setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = map[string]envBinding{
	"TABLE_LOOKAHEAD": {
		description: "Table lookahead: compat or greedy",
		apply: func(cfg *config.Config, v string) error {
			cfg.Parser.TableLookahead = v
			return nil
		},
	},
	"HARD_BREAK_SPACES": {
		description: "Trailing spaces that end a paragraph",
		apply: func(cfg *config.Config, v string) error {
			return setInt(&cfg.Parser.HardBreakSpaces, v)
		},
	},
	"CODE_INDENT": {
		description: "Leading spaces that make a code line",
		apply: func(cfg *config.Config, v string) error {
			return setInt(&cfg.Parser.CodeIndent, v)
		},
	},
	"FENCED_CODE": {
		description: "Recognise fenced code: true or false",
		apply: func(cfg *config.Config, v string) error {
			return setBool(&cfg.Parser.FencedCode, v)
		},
	},
	"DETECT_CODE_LANGUAGE": {
		description: "Detect code run languages: true or false",
		apply: func(cfg *config.Config, v string) error {
			return setBool(&cfg.Detect.CodeLanguage, v)
		},
	},
	"DETECT_LINKS": {
		description: "Extract links: true or false",
		apply: func(cfg *config.Config, v string) error {
			return setBool(&cfg.Detect.Links, v)
		},
	},
	"EXTENSIONS": {
		description: "Comma-separated file suffixes to parse",
		apply: func(cfg *config.Config, v string) error {
			cfg.Extensions = parseSliceValue(v)
			return nil
		},
	},
	"IGNORE": {
		description: "Comma-separated glob patterns to skip",
		apply: func(cfg *config.Config, v string) error {
			cfg.Ignore = parseSliceValue(v)
			return nil
		},
	},
	"FORMAT": {
		description: "Output format: text, table, json or summary",
		apply: func(cfg *config.Config, v string) error {
			cfg.Format = config.OutputFormat(v)
			return nil
		},
	},
	"JOBS": {
		description: "Parallel workers (0 = auto)",
		apply: func(cfg *config.Config, v string) error {
			return setInt(&cfg.Jobs, v)
		},
	},
	"COLOR": {
		description: "Colour output: auto, always or never",
		apply: func(cfg *config.Config, v string) error {
			cfg.Color = config.ColorMode(v)
			return nil
		},
	},
}

// LoadFromEnv applies MDPARA_* overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, name := range envNames() {
		value := os.Getenv(envVarPrefix + name)
		if value == "" {
			continue
		}
		if err := envBindings[name].apply(cfg, value); err != nil {
			return fmt.Errorf("%s%s: %w", envVarPrefix, name, err)
		}
	}

	return nil
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envBindings))
	for name, binding := range envBindings {
		vars[envVarPrefix+name] = binding.description
	}
	return vars
}

// envNames returns the binding names in a stable order so the first error
// reported does not depend on map iteration.
func envNames() []string {
	names := make([]string, 0, len(envBindings))
	for name := range envBindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func setInt(dst *int, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid integer %q", value)
	}
	*dst = n
	return nil
}

func setBool(dst **bool, value string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
	}
	*dst = &b
	return nil
}

// parseSliceValue splits a comma-separated list, dropping empty elements.
func parseSliceValue(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
