package cli

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pirateease version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("pirateease " + version)
		},
	}
}
