package cmd

import (
	"errors"
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/adventurer/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [game]",
	Short: "Validate a game directory",
	Long: `Validate checks that a game's cyoa.json loads and that every card can be
played: button targets exist, auto-advance never runs past the last card and
referenced images and sounds are present. Without an argument the default
game is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		_, gamePath, err := resolveGame(name)
		if err != nil {
			return err
		}

		v := validator.NewValidator(gamePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if results.Valid() {
			colorize.Green("✅ Game '%s' is valid.", gamePath)
		} else {
			colorize.Red("❌ Game '%s' has %d validation errors:", gamePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println()
			colorize.Yellow("Warnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return errors.New("validation failed")
		}
		return nil
	},
}
