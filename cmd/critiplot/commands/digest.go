package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"critiplot/internal/digest"
)

func digestCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "digest <file>...",
		Short: "Print BLAKE2b digests of files",
		Long: `Prints a short fingerprint of each file, or the full BLAKE2b-256 digest
with --full. Digests match the ones recorded in render manifests.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				sum, err := digest.File(path)
				if err != nil {
					return err
				}
				if !full {
					sum = sum[:2*digest.FingerprintBytes]
				}
				fmt.Fprintf(out, "%s  %s\n", sum, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print the full 256-bit digest")
	return cmd
}
