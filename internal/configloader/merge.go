package configloader

import (
	"slices"

	"github.com/yaklabco/mdpara/pkg/config"
)

// merge layers override on top of base and returns a new Config. Zero
// scalars and nil pointers or slices in override leave base untouched;
// non-nil slices replace base entirely.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	result := base.Clone()
	if override == nil {
		return result
	}

	if override.Parser.TableLookahead != "" {
		result.Parser.TableLookahead = override.Parser.TableLookahead
	}
	if override.Parser.HardBreakSpaces != 0 {
		result.Parser.HardBreakSpaces = override.Parser.HardBreakSpaces
	}
	if override.Parser.CodeIndent != 0 {
		result.Parser.CodeIndent = override.Parser.CodeIndent
	}
	mergeBool(&result.Parser.FencedCode, override.Parser.FencedCode)
	mergeBool(&result.Detect.CodeLanguage, override.Detect.CodeLanguage)
	mergeBool(&result.Detect.Links, override.Detect.Links)

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Compact {
		result.Compact = true
	}

	return result
}

func mergeBool(dst **bool, override *bool) {
	if override != nil {
		b := *override
		*dst = &b
	}
}

// MergeAll merges configs left to right; later configs win.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
