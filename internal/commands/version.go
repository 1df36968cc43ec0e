package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set by the release build's -ldflags; "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mywm version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
