package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/internal/cli"
	"github.com/yaklabco/mdpara/internal/configloader"
	"github.com/yaklabco/mdpara/pkg/fsutil"
	"github.com/yaklabco/mdpara/pkg/runner"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "mdpara" {
		t.Errorf("expected Use to be 'mdpara', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"parse", "classify", "check-delimiter", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestParseCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	parseCmd, _, err := cmd.Find([]string{"parse"})
	require.NoError(t, err)

	expectedFlags := []string{
		"format",
		"output",
		"jobs",
		"ignore",
		"extensions",
		"follow-symlinks",
		"max-bytes",
		"lookahead",
		"code-indent",
		"hard-break-spaces",
		"no-fences",
		"no-links",
		"no-languages",
		"no-content",
		"no-summary",
		"compact",
		"per-file",
		"sort",
	}

	for _, flagName := range expectedFlags {
		assert.NotNil(t, parseCmd.Flags().Lookup(flagName), "expected flag %q on parse command", flagName)
	}
}

func TestParseCommandAlias(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	parseCmd, _, err := cmd.Find([]string{"p"})
	require.NoError(t, err)
	assert.Equal(t, "parse", parseCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "mdpara")
	assert.Contains(t, out.String(), "version=1.2.3")
	assert.Contains(t, out.String(), "commit=abc123")
}

func TestCheckDelimiterCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		row     string
		want    string
		wantErr error
	}{
		{
			name: "three alignments",
			row:  ":--|:-:|--:",
			want: "valid: 3 columns (left, center, right)\n",
		},
		{
			name: "outer pipes",
			row:  "|---|---|",
			want: "valid: 2 columns (left, left)\n",
		},
		{
			name: "leading dashes",
			row:  "---|:-:|--:",
			want: "valid: 3 columns (left, center, right)\n",
		},
		{
			name: "plain dashes",
			row:  "---|---",
			want: "valid: 2 columns (left, left)\n",
		},
		{
			name: "single dash cells",
			row:  "-|-",
			want: "valid: 2 columns (left, left)\n",
		},
		{
			name:    "empty cell",
			row:     "--||--",
			wantErr: cli.ErrInvalidDelimiter,
		},
		{
			name:    "too many colons",
			row:     ":::-|--",
			wantErr: cli.ErrInvalidDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{"check-delimiter", tt.row})

			err := cmd.Execute()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCheckDelimiterCommand_SeparatorAndHelp(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check-delimiter", "--", "--|--"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "valid: 2 columns (left, left)\n", out.String())

	cmd = cli.NewRootCommand(testInfo())
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check-delimiter", "--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "check-delimiter")
	assert.NotContains(t, out.String(), "valid:")
}

func TestCheckDelimiterCommand_RequiresOneArg(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check-delimiter"})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrInvalidUsage)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestUnknownFlagIsInvalidUsage(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"parse", "--no-such-flag"})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrInvalidUsage)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"parse failures", cli.ErrParseFailures, cli.ExitParseFailures},
		{"invalid usage", fmt.Errorf("%w: bad flag", cli.ErrInvalidUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: broken", cli.ErrConfig), cli.ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "jobs", Message: "negative"}, cli.ExitConfigError},
		{"not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"too large", fsutil.ErrTooLarge, cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(&runner.Result{}))

	failed := &runner.Result{}
	failed.Add(runner.FileOutcome{Path: "a.md", Error: errors.New("boom")})
	assert.Equal(t, cli.ExitParseFailures, cli.ExitCodeFromResult(failed))
}
