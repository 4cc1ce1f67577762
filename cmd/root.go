package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "adventurer",
	Short: "Player for choose-your-own-adventure card games",
	Long: `Adventurer plays choose-your-own-adventure games made of cards.
Each card shows a background, some text and up to two buttons, and may play
a sound or advance on its own after a delay. Games live in your game library
(XDG_DATA_HOME/adventurer/games) or anywhere on disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
