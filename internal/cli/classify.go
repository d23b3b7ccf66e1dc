package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpara/internal/configloader"
	"github.com/yaklabco/mdpara/internal/ui/pretty"
	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/fsutil"
	"github.com/yaklabco/mdpara/pkg/span"
)

const formatJSON = "json"

type classifyFlags struct {
	format string
}

// lineInfo is one classified line in JSON output.
type lineInfo struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Level   int    `json:"level,omitempty"`
	Ordinal int    `json:"ordinal,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
}

func newClassifyCommand() *cobra.Command {
	flags := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Show how each line is classified",
		Long: `Print the block kind of every physical line of a Markdown document,
before lines are merged into paragraphs. Reads standard input when no file
is given or the file is "-".

Fenced code is tracked across lines when parser.fenced_code is enabled.
A table-delimiter line is reported by its shape alone; whether it really
starts a table is decided during merging.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string, flags *classifyFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.format != "text" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q: must be text or json", ErrInvalidUsage, flags.format)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	parseOpts, err := loadResult.Config.ParagraphOptions()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	content, err := readInput(ctx, cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	buf := span.NewBuffer(string(content))
	lines := block.ClassifyAll(span.Lines(buf), parseOpts.Classifier)

	if flags.format == formatJSON {
		return outputLinesJSON(cmd.OutOrStdout(), lines)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := cmd.OutOrStdout()
	for i, line := range lines {
		label := fmt.Sprintf("%-15s", lineLabel(line))
		fmt.Fprintf(out, "%s  %s  %s\n",
			styles.Index.Render(fmt.Sprintf("%4d", i+1)),
			styles.KindStyle(line.Kind.String()).Render(label),
			styles.Content.Render(strconv.Quote(line.Content().String())),
		)
	}

	return nil
}

// lineLabel renders the kind with its level or ordinal when meaningful.
func lineLabel(line block.Line) string {
	switch line.Kind {
	case block.Numbered:
		return fmt.Sprintf("%s %d.", line.Kind, line.Ordinal)
	case block.Header, block.Quote, block.Bullet:
		return fmt.Sprintf("%s/%d", line.Kind, line.Level)
	default:
		return line.Kind.String()
	}
}

// readInput reads the named file, or stdin for no argument or "-".
func readInput(ctx context.Context, stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == stdinName {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	return fsutil.ReadFile(ctx, args[0], 0)
}

// outputLinesJSON writes lines as a JSON array.
func outputLinesJSON(w io.Writer, lines []block.Line) error {
	infos := make([]lineInfo, 0, len(lines))
	for i, line := range lines {
		infos = append(infos, lineInfo{
			Line:    i + 1,
			Kind:    line.Kind.String(),
			Level:   line.Level,
			Ordinal: line.Ordinal,
			Start:   line.Source.Start(),
			End:     line.Source.End(),
			Content: line.Content().String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding lines: %w", err)
	}
	return nil
}
