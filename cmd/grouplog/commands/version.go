package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/grouplog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version information",
	Long:        `Show the current version of grouplog`,
	Annotations: map[string]string{skipConfig: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "grouplog %s\n", version.Version)
	},
}
