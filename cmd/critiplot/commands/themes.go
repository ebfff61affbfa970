package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"critiplot/internal/domain"
)

func themesCmd() *cobra.Command {
	var tool string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the themes available for each tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas := wire.Schemas.Schemas()
			if tool != "" {
				s, err := wire.Schemas.Lookup(tool)
				if err != nil {
					return err
				}
				schemas = []domain.DomainSchema{s}
			}
			out := cmd.OutOrStdout()
			for _, s := range schemas {
				fmt.Fprintf(out, "%s %s\n", labelStyle.Width(18).Render(string(s.ID)),
					strings.Join(wire.Themes.Names(s), ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tool, "tool", "t", "", "only list themes for this tool")
	return cmd
}
