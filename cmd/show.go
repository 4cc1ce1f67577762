package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/adventurer/internal/art"
	"github.com/arcanaland/adventurer/internal/card"
	"github.com/arcanaland/adventurer/internal/config"
	"github.com/arcanaland/adventurer/internal/console"
	"github.com/arcanaland/adventurer/internal/engine"
	"github.com/arcanaland/adventurer/internal/logger"
	"github.com/arcanaland/adventurer/internal/story"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a single card and where its buttons lead",
	Long: `Show renders one card the way the player would see it, followed by its
navigation: button targets, auto-advance delay and sound.

You can specify a game using the --game flag, which will look for the game
in your game library (XDG_DATA_HOME/adventurer/games) or as a relative path.
If no game is specified, the default game from your config will be used.

Examples:
  adventurer show startup
  adventurer show --game ./haunted-house hallway`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		gameFlag, _ := cmd.Flags().GetString("game")
		_, gamePath, err := resolveGame(gameFlag)
		if err != nil {
			return err
		}

		graph, err := story.LoadDir(gamePath)
		if err != nil {
			return fmt.Errorf("error loading game: %w", err)
		}

		index, err := graph.FindIndexByID(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}
		c, err := graph.CardAt(index)
		if err != nil {
			return err
		}

		noArt, _ := cmd.Flags().GetBool("no-art")
		var opts []console.Option
		if noArt {
			opts = append(opts, console.WithoutArt())
		}
		renderer := art.Renderer{
			Width:     cfg.ArtWidth,
			Height:    cfg.ArtHeight,
			TrueColor: cfg.TrueColor,
			CacheDir:  filepath.Join(config.GetCacheDir(), "art"),
			CacheKey:  gamePath,
		}
		host := console.New(os.Stdin, os.Stdout, os.DirFS(gamePath), fitArt(renderer), opts...)

		// presenter problems such as a missing image go to stderr
		log, err := logger.New(logger.Config{Level: "warn", Encoding: "console"})
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		defer log.Sync()

		engine.New(graph, host, host,
			engine.WithTextWidth(cfg.TextWidth),
			engine.WithLogger(log),
		).Render(c)
		fmt.Println()
		displayNavigation(os.Stdout, graph, index, c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("game", "g", "", "Specify a game from your game library or a path to a game")
	showCmd.Flags().Bool("no-art", false, "Skip the background image")
}

func displayNavigation(w io.Writer, graph *story.Graph, index int, c card.Card) {
	label := colorize.CyanString
	value := colorize.HiWhiteString

	fmt.Fprintln(w, label("Card:  ") + value("%s (#%d of %d)", c.ID, index, graph.Len()))
	if c.BackgroundImage != "" {
		fmt.Fprintln(w, label("Image: ") + value("%s", c.BackgroundImage))
	}
	if c.Sound != "" {
		repeat := ""
		if c.SoundRepeat {
			repeat = " (repeats)"
		}
		fmt.Fprintln(w, label("Sound: ") + value("%s%s", c.Sound, repeat))
	}
	fmt.Fprintln(w, label("Text:  ") + value("%s on %s", c.TextColor, c.TextBackground))

	if c.HasAutoAdvance {
		next := "past the last card"
		if nc, err := graph.CardAt(index + 1); err == nil {
			next = nc.ID
		}
		fmt.Fprintln(w, label("Next:  ") + value("%s after %s", next, c.AutoAdvance))
		return
	}

	for _, b := range engine.AffordancesFor(c).Buttons {
		target := c.ChoiceA.Goto
		if b.Trigger == engine.ChoiceBSelected {
			target = c.ChoiceB.Goto
		}
		status := ""
		if _, err := graph.FindIndexByID(target); err != nil {
			status = colorize.RedString(" (missing)")
		}
		fmt.Fprintln(w, label("%-7s", b.Trigger.String()+":") + value("%q → %s", b.Label, target) + status)
	}
	if c.DeadEnd() {
		fmt.Fprintln(w, colorize.YellowString("Dead end: the player can only quit here"))
	}
}
