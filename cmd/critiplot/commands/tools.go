package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domaintypes "critiplot/internal/domain/types"
)

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List supported tools and the columns each expects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range wire.Schemas.Schemas() {
				fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s (%s)", s.Name, s.ID)))

				id := fmt.Sprintf("%q", s.Identifier.Column)
				if len(s.Identifier.Compose) > 0 {
					id += " or " + strings.Join(s.Identifier.Compose, " + ")
				}
				if s.Identifier.Qualifier != "" {
					id += fmt.Sprintf(", plus %q", s.Identifier.Qualifier)
				}
				fmt.Fprintln(out, labelStyle.Render("identifier"), id)
				fmt.Fprintln(out, labelStyle.Render("columns"), strings.Join(s.RequiredColumns(), ", "))

				values := strings.Join(s.Tokens(), ", ")
				if s.Kind == domaintypes.KindBinary {
					values = "1 (low risk) or 0 (high risk)"
				}
				fmt.Fprintln(out, labelStyle.Render("values"), values)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
