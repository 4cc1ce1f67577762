package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/arcanaland/adventurer/cmd.Version=..."
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the adventurer version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("adventurer", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
