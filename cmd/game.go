package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/adventurer/internal/config"
	"github.com/arcanaland/adventurer/internal/game"
)

// gameCmd represents the game command group
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Manage games in your game library",
	Long:  `Commands for managing adventure games in your game library.`,
}

// gameListCmd represents the game list command
var gameListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available games in your game library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetGameLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Game library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'adventurer game init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		defaultGame, err := config.GetDefaultGame()
		if err != nil {
			return fmt.Errorf("error getting default game: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading game library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil || !fileInfo.IsDir() {
				continue
			}

			g, err := game.LoadGame(entryPath)
			if err != nil {
				// Not a playable game, skip
				continue
			}
			found++

			summary := fmt.Sprintf("%s, %d cards", g.Name, g.Cards.Len())
			if entry.Name() == defaultGame {
				fmt.Printf("* %s (%s) %s\n", entry.Name(), summary, colorize.GreenString("[DEFAULT]"))
			} else {
				fmt.Printf("  %s (%s)\n", entry.Name(), summary)
			}
		}

		if found == 0 {
			fmt.Println("No games found in your game library.")
			fmt.Println("You can add games by copying them to:", libraryPath)
		}
		return nil
	},
}

// gameSetDefaultCmd represents the game set-default command
var gameSetDefaultCmd = &cobra.Command{
	Use:   "set-default [game_name]",
	Short: "Set the default game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameName := args[0]

		gamePath, err := config.GetGamePath(gameName)
		if err != nil {
			return err
		}

		// Make sure the game loads before pointing the config at it
		if _, err := game.LoadGame(gamePath); err != nil {
			return fmt.Errorf("not a valid game: %w", err)
		}

		if err := config.SetDefaultGame(gameName); err != nil {
			return fmt.Errorf("error setting default game: %w", err)
		}

		fmt.Printf("Default game set to: %s\n", gameName)
		return nil
	},
}

// gameInitCmd represents the game init command
var gameInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the game library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetGameLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating game library: %w", err)
		}

		fmt.Println("Game library initialized at:", libraryPath)
		fmt.Println("You can now add games by copying them to this directory.")

		samplePath, installed, err := game.InstallSample(libraryPath)
		if err != nil {
			return err
		}
		if installed {
			fmt.Println("Sample game installed at:", samplePath)
		}

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(gameCmd)
	gameCmd.AddCommand(gameListCmd)
	gameCmd.AddCommand(gameSetDefaultCmd)
	gameCmd.AddCommand(gameInitCmd)
}

// resolveGame returns the directory of the named game, or of the default
// game when name is empty.
func resolveGame(name string) (string, string, error) {
	if name == "" {
		defaultGame, err := config.GetDefaultGame()
		if err != nil {
			return "", "", fmt.Errorf("error getting default game: %w", err)
		}
		name = defaultGame
	}

	gamePath, err := config.GetGamePath(name)
	if err != nil {
		return "", "", err
	}
	return name, gamePath, nil
}
