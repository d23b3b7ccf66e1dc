package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpara/pkg/table"
)

// ErrInvalidDelimiter is returned by check-delimiter for a malformed row.
var ErrInvalidDelimiter = errors.New("invalid table delimiter")

func newCheckDelimiterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-delimiter <row>",
		Short: "Validate a table delimiter row",
		Long: `Check whether a row such as ":--|:-:|--:" is accepted as a table
delimiter and print the alignment of each column.

The row is taken verbatim, so rows starting with "-" need no quoting
beyond the shell's. A leading "--" is accepted and ignored.

Examples:
  mdpara check-delimiter '---|:-:|--:'
  mdpara check-delimiter '|:--|--|'`,
		// Most delimiter rows start with "-" and must not be read as flags.
		DisableFlagParsing: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(delimiterArgs(args)) != 1 {
				return fmt.Errorf("%w: check-delimiter accepts exactly one row", ErrInvalidUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			row := delimiterArgs(args)[0]
			if row == "-h" || row == "--help" {
				return cmd.Help()
			}

			if !table.IsValidDelimiter(row) {
				return fmt.Errorf("%w: %q", ErrInvalidDelimiter, row)
			}

			alignments := table.ParseAlignments(row)
			names := make([]string, len(alignments))
			for i, a := range alignments {
				names[i] = a.String()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d columns (%s)\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}

	return cmd
}

// delimiterArgs drops a leading "--" separator.
func delimiterArgs(args []string) []string {
	if len(args) > 1 && args[0] == "--" {
		return args[1:]
	}
	return args
}
