package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"critiplot/internal/app"
	"critiplot/internal/digest"
	"critiplot/internal/domain"
	"critiplot/internal/services/pipeline"
)

func renderCmd() *cobra.Command {
	var (
		tool       string
		themeName  string
		formats    []string
		targets    []string
		noManifest bool
	)
	cmd := &cobra.Command{
		Use:   "render <table>",
		Short: "Render the traffic-light figure for a table",
		Long: `Validates the table against the tool schema and writes
<Tool>_TrafficLight.<ext> for every requested format into the output directory.
Use --target to name output files explicitly; the extension picks the format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noManifest {
				wire.Config.Manifest = false
			}
			engine, err := wire.Engine(tool)
			if err != nil {
				return err
			}
			theme := themeOrDefault(themeName)
			if _, err := engine.CheckTheme(theme); err != nil {
				return err
			}

			raw, err := wire.Reader.ReadFile(args[0])
			if err != nil {
				return err
			}
			vt, err := engine.Process(raw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printWarnings(out, vt)

			if len(targets) == 0 {
				fs, err := formatsOrDefault(formats)
				if err != nil {
					return err
				}
				targets = engine.Targets(wire.Config.OutputDir, fs)
			}
			res, err := engine.Render(vt, theme, targets...)
			printResult(out, res)
			return err
		},
	}
	cmd.Flags().StringVarP(&tool, "tool", "t", "", "assessment tool (see 'critiplot tools')")
	cmd.Flags().StringVar(&themeName, "theme", "", "colour theme (default from config)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats: png, pdf, svg, eps (default from config)")
	cmd.Flags().StringArrayVar(&targets, "target", nil, "explicit output file; repeatable")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "do not write the JSON manifest")
	_ = cmd.MarkFlagRequired("tool")
	return cmd
}

func themeOrDefault(name string) string {
	if name != "" {
		return name
	}
	return wire.Config.Theme
}

func formatsOrDefault(names []string) ([]domain.Format, error) {
	if len(names) == 0 {
		return wire.Config.Formats, nil
	}
	return app.ParseFormats(names)
}

func printWarnings(w io.Writer, vt domain.ValidatedTable) {
	for _, warn := range vt.Warnings {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(
			"warning: row %d (%s): declared total %g, domain scores sum to %d",
			warn.Row, warn.Study, warn.Declared, warn.Computed)))
	}
}

func printResult(w io.Writer, res *domain.RenderResult) {
	if res == nil {
		return
	}
	for _, a := range res.Artifacts {
		fmt.Fprintf(w, "%s %s %s\n", okStyle.Render("wrote"), a.Path,
			mutedStyle.Render(fmt.Sprintf("(%d bytes, %s)", a.Bytes, a.Digest[:2*digest.FingerprintBytes])))
	}
	if res.ManifestPath != "" {
		fmt.Fprintf(w, "%s %s\n", okStyle.Render("wrote"), res.ManifestPath)
	}
}

func printJob(w io.Writer, r pipeline.JobResult) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("failed"), r.Job.Input, r.Err)
	}
	printWarnings(w, r.Validated)
	printResult(w, r.Result)
}
