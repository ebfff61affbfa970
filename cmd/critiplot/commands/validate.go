package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var tool string
	cmd := &cobra.Command{
		Use:   "validate <table>",
		Short: "Check a table against a tool schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := wire.Engine(tool)
			if err != nil {
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
			s := engine.Schema()
			fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s: %d studies", s.Name, vt.Table.Len())))

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(mutedStyle).
				StyleFunc(cellStyle).
				Headers("ROW", "STUDY", "TOTAL", "OVERALL")
			for _, rec := range vt.Table.Records {
				total := "-"
				if v, ok := rec.DisplayTotal(); ok {
					total = strconv.FormatFloat(v, 'g', -1, 64)
				}
				t.Row(strconv.Itoa(rec.Row), rec.ID, total, rec.Overall)
			}
			fmt.Fprintln(out, t.Render())

			printWarnings(out, vt)
			if len(vt.Warnings) == 0 {
				fmt.Fprintln(out, okStyle.Render("ok"))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tool, "tool", "t", "", "assessment tool (see 'critiplot tools')")
	_ = cmd.MarkFlagRequired("tool")
	return cmd
}
