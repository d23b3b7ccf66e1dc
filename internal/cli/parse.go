package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpara/internal/configloader"
	"github.com/yaklabco/mdpara/internal/logging"
	"github.com/yaklabco/mdpara/pkg/analysis"
	"github.com/yaklabco/mdpara/pkg/config"
	"github.com/yaklabco/mdpara/pkg/fsutil"
	"github.com/yaklabco/mdpara/pkg/reporter"
	"github.com/yaklabco/mdpara/pkg/runner"
)

// stdinName is the path argument that reads from standard input.
const stdinName = "-"

type parseFlags struct {
	format         string
	jobs           int
	ignore         []string
	extensions     []string
	lookahead      string
	codeIndent     int
	hardBreak      int
	noFences       bool
	noLinks        bool
	noLanguages    bool
	compact        bool
	perFile        bool
	noContent      bool
	noSummary      bool
	sortBy         string
	maxBytes       int64
	output         string
	followSymlinks bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:     "parse [paths...]",
		Aliases: []string{"p"},
		Short:   "Split Markdown files into paragraphs",
		Long:    parseLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	addParseFlags(cmd, flags)

	return cmd
}

const parseLongDescription = `Split Markdown files into typed paragraphs.

By default, parses all .md, .markdown and .txt files in the current
directory and subdirectories. Specify paths to parse specific files or
directories, or "-" to read a single document from standard input.

Examples:
  mdpara parse                        # Parse current directory
  mdpara parse posts/                 # Parse a directory
  mdpara parse comment.md             # Parse a single file
  cat comment.md | mdpara parse -     # Parse standard input
  mdpara parse --format json -o out.json posts/
  mdpara parse --format summary --sort count
  mdpara parse --lookahead greedy     # Read tables to the last pipe row`

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	sortBy := analysis.SortField(flags.sortBy)
	if !sortBy.IsValid() {
		return fmt.Errorf("%w: invalid sort field %q; must be one of: count, alpha, size, order",
			ErrInvalidUsage, flags.sortBy)
	}
	if flags.maxBytes < 0 {
		return fmt.Errorf("%w: --max-bytes must be >= 0", ErrInvalidUsage)
	}
	if len(args) > 1 && slices.Contains(args, stdinName) {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, errStdinMixed)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		"lookahead", cfg.Parser.TableLookahead,
		"code_indent", cfg.Parser.CodeIndent,
		logging.FieldJobs, cfg.Jobs,
	)

	parseRunner, err := runner.NewFromConfig(cfg, runner.WithMaxBytes(flags.maxBytes))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	start := time.Now()

	var result *runner.Result
	if len(args) == 1 && args[0] == stdinName {
		result = &runner.Result{}
		result.Add(parseRunner.ParseReader(ctx, "<stdin>", cmd.InOrStdin()))
	} else {
		runOpts := runner.OptionsFromConfig(cfg, args)
		runOpts.WorkingDir = workDir
		runOpts.FollowSymlinks = flags.followSymlinks

		logger.Debug("starting parse run",
			"paths", runOpts.Paths,
			"working_dir", runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err = parseRunner.Run(ctx, runOpts)
		if err != nil {
			return fmt.Errorf("parse run failed: %w", err)
		}
	}

	logger.Debug("parse run finished",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldParagraphs, result.Stats.Paragraphs,
		logging.FieldDuration, time.Since(start),
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = string(config.ColorAuto)
	}

	var (
		out  io.Writer = cmd.OutOrStdout()
		file bytes.Buffer
	)
	if flags.output != "" {
		out = &file
		colorMode = string(config.ColorNever)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContent: !flags.noContent,
		ShowSummary: !flags.noSummary,
		Compact:     cfg.Compact,
		PerFile:     flags.perFile,
		SortBy:      sortBy,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if flags.output != "" {
		written, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, file.Bytes(), fsutil.DefaultFileMode)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if written {
			logger.Debug("wrote report", logging.FieldPath, flags.output, logging.FieldBytes, file.Len())
		} else {
			logger.Debug("report unchanged", logging.FieldPath, flags.output)
		}
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		for _, f := range result.Files {
			if f.Error != nil {
				logger.Debug("parse failed", logging.FieldPath, f.Path, logging.FieldError, f.Error)
			}
		}
		return ErrParseFailures
	}

	return nil
}

// cliConfig holds the flag values that were set explicitly. Unset flags stay
// zero so lower-precedence layers show through.
func cliConfig(cmd *cobra.Command, flags *parseFlags) *config.Config {
	changed := cmd.Flags().Changed
	cfg := &config.Config{
		Format:  config.OutputFormat(flags.format),
		Jobs:    flags.jobs,
		Compact: flags.compact,
	}

	if changed("lookahead") {
		cfg.Parser.TableLookahead = flags.lookahead
	}
	if changed("code-indent") {
		cfg.Parser.CodeIndent = flags.codeIndent
	}
	if changed("hard-break-spaces") {
		cfg.Parser.HardBreakSpaces = flags.hardBreak
	}
	if flags.noFences {
		cfg.Parser.FencedCode = boolPtr(false)
	}
	if flags.noLinks {
		cfg.Detect.Links = boolPtr(false)
	}
	if flags.noLanguages {
		cfg.Detect.CodeLanguage = boolPtr(false)
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("extensions") {
		cfg.Extensions = flags.extensions
	}

	if colorMode, err := cmd.Flags().GetString("color"); err == nil {
		cfg.Color = config.ColorMode(colorMode)
	}

	return cfg
}

func boolPtr(b bool) *bool {
	return &b
}

func addParseFlags(cmd *cobra.Command, flags *parseFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file suffixes parsed when walking directories (default .md,.markdown,.txt)")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "walk into symlinked directories")
	cmd.Flags().Int64Var(&flags.maxBytes, "max-bytes", 0, "skip files larger than this many bytes (0 = no limit)")

	cmd.Flags().StringVar(&flags.lookahead, "lookahead", "compat", "table row lookahead: compat, greedy")
	cmd.Flags().IntVar(&flags.codeIndent, "code-indent", 0, "leading spaces that make a code line (default 4)")
	cmd.Flags().IntVar(&flags.hardBreak, "hard-break-spaces", 0,
		"trailing spaces that end a paragraph (default 2)")
	cmd.Flags().BoolVar(&flags.noFences, "no-fences", false, "do not treat ``` and ~~~ fences as code")
	cmd.Flags().BoolVar(&flags.noLinks, "no-links", false, "skip link extraction")
	cmd.Flags().BoolVar(&flags.noLanguages, "no-languages", false, "skip code language detection")

	cmd.Flags().BoolVar(&flags.noContent, "no-content", false, "hide paragraph text in output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().StringVar(&flags.sortBy, "sort", string(analysis.SortByOrder),
		"order of files and kinds: count, alpha, size, order")
}

// errStdinMixed is returned when "-" is combined with other paths.
var errStdinMixed = errors.New(`"-" cannot be combined with other paths`)
