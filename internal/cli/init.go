package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpara/internal/logging"
	"github.com/yaklabco/mdpara/pkg/config"
	"github.com/yaklabco/mdpara/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force    bool
	full     bool
	noBackup bool
	format   string
	output   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdpara configuration file",
		Long: `Create a new .mdpara.yml configuration file in the current directory
with the default parser settings.

Examples:
  mdpara init                      Create minimal .mdpara.yml
  mdpara init --full               Create full config with every setting documented
  mdpara init --format json        Create .mdpara.json instead
  mdpara init --output custom.yml  Write to a custom file path
  mdpara init --force              Overwrite, keeping the old file as .bak`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.noBackup, "no-backup", false, "Do not keep a .bak copy when overwriting")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every setting documented")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .mdpara.yml or .mdpara.json)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.Default()

	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrInvalidUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == formatJSON {
			outputPath = ".mdpara.json"
		} else {
			outputPath = ".mdpara.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, outputPath)
		}
		if !flags.noBackup {
			if _, err := fsutil.CreateBackup(ctx, absPath); err != nil {
				return fmt.Errorf("backup existing file: %w", err)
			}
			logger.Info("saved previous configuration", logging.FieldPath, fsutil.BackupPath(outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template documents every setting with its default")
	}
	logger.Info("run 'mdpara parse' to split Markdown files with these settings")

	return nil
}
