package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/pkg/config"
	"github.com/yaklabco/mdpara/pkg/table"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies pointers and slices", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Ignore = []string{"vendor/**"}
		original.Jobs = 3
		original.Format = config.FormatJSON

		clone := original.Clone()
		require.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		*clone.Parser.FencedCode = false
		clone.Ignore[0] = "changed"
		clone.Extensions[0] = ".x"

		assert.True(t, *original.Parser.FencedCode)
		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.Equal(t, ".md", original.Extensions[0])
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	data, err := nilCfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)

	cfg := config.NewConfig()
	cfg.Jobs = 8

	data, err = cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "table_lookahead: compat")
	assert.Contains(t, string(data), "hard_break_spaces: 2")
	assert.NotContains(t, string(data), "jobs")
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses sections", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
parser:
  table_lookahead: greedy
  code_indent: 2
detect:
  links: false
ignore: ["drafts/**"]
`))
		require.NoError(t, err)
		assert.Equal(t, "greedy", cfg.Parser.TableLookahead)
		assert.Equal(t, 2, cfg.Parser.CodeIndent)
		assert.Nil(t, cfg.Parser.FencedCode)
		require.NotNil(t, cfg.Detect.Links)
		assert.False(t, cfg.LinksEnabled())
		assert.True(t, cfg.CodeLanguageEnabled())
		assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
	})

	t.Run("comment-only file is empty config", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("# nothing here\n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
	})
}

func TestParagraphOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Parser.TableLookahead = "greedy"
	cfg.Parser.HardBreakSpaces = 3
	cfg.Parser.CodeIndent = 2
	disabled := false
	cfg.Parser.FencedCode = &disabled

	opts, err := cfg.ParagraphOptions()
	require.NoError(t, err)
	assert.Equal(t, table.LookaheadGreedy, opts.Lookahead)
	assert.Equal(t, 3, opts.HardBreakSpaces)
	assert.Equal(t, 2, opts.Classifier.CodeIndent)
	assert.False(t, opts.Classifier.FencedCode)

	cfg.Parser.TableLookahead = "sideways"
	_, err = cfg.ParagraphOptions()
	require.ErrorContains(t, err, "parser.table_lookahead")
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	for _, full := range []bool{false, true} {
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: full})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# mdpara configuration")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err, "template must load: full=%v", full)
		assert.Equal(t, "compat", cfg.Parser.TableLookahead)
	}

	data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "parser")
	assert.Contains(t, doc, "detect")
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("rainbow").IsValid())
}
