package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"critiplot/internal/services/pipeline"
)

func batchCmd() *cobra.Command {
	var (
		tool      string
		themeName string
		formats   []string
	)
	cmd := &cobra.Command{
		Use:   "batch <table>...",
		Short: "Render several tables concurrently",
		Long: `Renders every table with the same tool and theme. Each table's figures go
to <output>/<table name without extension>/. Up to 'concurrency' tables are
processed at once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := wire.Engine(tool)
			if err != nil {
				return err
			}
			theme := themeOrDefault(themeName)
			if _, err := engine.CheckTheme(theme); err != nil {
				return err
			}
			fs, err := formatsOrDefault(formats)
			if err != nil {
				return err
			}

			jobs := make([]pipeline.Job, len(args))
			for i, in := range args {
				base := filepath.Base(in)
				jobs[i] = pipeline.Job{
					Input:     in,
					OutputDir: filepath.Join(wire.Config.OutputDir, strings.TrimSuffix(base, filepath.Ext(base))),
				}
			}

			results, err := engine.Batch(cmd.Context(), wire.Reader, jobs, theme, fs, wire.Config.Concurrency)
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				printJob(out, r)
				if r.Err != nil {
					failed++
				}
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tables failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tool, "tool", "t", "", "assessment tool (see 'critiplot tools')")
	cmd.Flags().StringVar(&themeName, "theme", "", "colour theme (default from config)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats (default from config)")
	_ = cmd.MarkFlagRequired("tool")
	return cmd
}
