package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"critiplot/internal/app"
)

var (
	cfgPath   string
	verbose   bool
	outputDir string

	wire *app.Wire
)

// Execute runs the CLI. Errors are printed to stderr before being returned.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), errorStyle.Render("error:"), err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "critiplot",
		Short: "Risk-of-bias traffic-light plots for systematic reviews",
		Long: `critiplot validates risk-of-bias assessment tables (NOS, GRADE, ROBIS,
JBI Case Report, JBI Case Series) and renders a traffic-light grid with a
per-domain distribution chart as PNG, PDF, SVG and EPS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = outputDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := app.NewLogger(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, logger)
			if err != nil {
				_ = logger.Sync()
				return err
			}
			logger.Debug("config loaded",
				zap.String("output_dir", cfg.OutputDir),
				zap.Int("dpi", cfg.DPI),
				zap.Bool("strict_totals", cfg.StrictTotals),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				_ = wire.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./critiplot.yaml or $CRITIPLOT_CONFIG)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")

	root.AddCommand(renderCmd(), validateCmd(), batchCmd(), toolsCmd(), themesCmd(), digestCmd())
	return root
}
