package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/adventurer/internal/art"
	"github.com/arcanaland/adventurer/internal/config"
	"github.com/arcanaland/adventurer/internal/console"
	"github.com/arcanaland/adventurer/internal/engine"
	"github.com/arcanaland/adventurer/internal/game"
	"github.com/arcanaland/adventurer/internal/logger"
	"github.com/arcanaland/adventurer/internal/story"
	"github.com/arcanaland/adventurer/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Play runs a game from its first card until you quit. The game is looked up
in your game library (XDG_DATA_HOME/adventurer/games) or as a path; without an
argument the default game from your config is played.

On a terminal the game runs full screen; use a/b (or 1/2, left/right) to
choose, enter for a single button and q to quit. With --plain, or when input
is not a terminal, cards are printed line by line and choices read from
standard input.

Examples:
  adventurer play
  adventurer play robots --start-card home
  adventurer play ./my-game --plain < moves.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		gameName, gamePath, err := resolveGame(name)
		if err != nil {
			return err
		}

		g, err := game.LoadGame(gamePath)
		if err != nil {
			if errors.Is(err, story.ErrMalformed) {
				return fmt.Errorf("error loading game: %w (run 'adventurer validate %s' for details)", err, gameName)
			}
			return fmt.Errorf("error loading game: %w", err)
		}

		graph := g.Cards
		start, err := startIndex(cmd, g)
		if err != nil {
			return err
		}

		width, _ := cmd.Flags().GetInt("width")
		if width <= 0 {
			width = cfg.TextWidth
		}

		log, err := logger.New(logger.Config{
			Level:      cfg.Log.Level,
			Encoding:   cfg.Log.Encoding,
			OutputPath: cfg.Log.OutputPath,
		})
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		defer log.Sync()
		log = log.With(
			zap.String("session", uuid.NewString()),
			zap.String("game", gameName),
		)
		log.Info("session started", zap.String("title", g.Name), zap.String("path", gamePath), zap.Int("cards", graph.Len()), zap.Int("start", start))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		renderer := art.Renderer{
			Width:     cfg.ArtWidth,
			Height:    cfg.ArtHeight,
			TrueColor: cfg.TrueColor,
			CacheDir:  filepath.Join(config.GetCacheDir(), "art"),
			CacheKey:  gamePath,
		}
		assets := os.DirFS(gamePath)
		opts := []engine.Option{engine.WithLogger(log), engine.WithTextWidth(width)}

		plain, _ := cmd.Flags().GetBool("plain")
		interactive := !plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

		if !interactive {
			host := console.New(os.Stdin, os.Stdout, assets, renderer)
			err = engine.New(graph, host, host, opts...).Run(ctx, start)
		} else {
			err = playFullScreen(ctx, graph, assets, fitArt(renderer), start, opts)
		}

		if err != nil && ctx.Err() != nil {
			log.Info("session interrupted")
			return nil
		}
		log.Info("session ended", zap.Error(err))
		return err
	},
}

// playFullScreen runs the interpreter against the TUI
func playFullScreen(ctx context.Context, graph *story.Graph, assets fs.FS, renderer art.Renderer, start int, opts []engine.Option) error {
	host := tui.New(ctx, assets, renderer)
	return host.Play(ctx, func(ctx context.Context) error {
		return engine.New(graph, host, host, opts...).Run(ctx, start)
	})
}

// fitArt shrinks the art to the terminal so the text stays on screen
func fitArt(r art.Renderer) art.Renderer {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return r
	}
	if r.Width > width {
		r.Width = width
	}
	// leave room for text, buttons and the status lines
	if maxHeight := height - 12; maxHeight > 0 && r.Height > maxHeight {
		r.Height = maxHeight
	}
	return r
}

// startIndex honours --start-card, then --start, then the manifest
func startIndex(cmd *cobra.Command, g *game.Game) (int, error) {
	graph := g.Cards
	if id, _ := cmd.Flags().GetString("start-card"); id != "" {
		index, err := graph.FindIndexByID(id)
		if err != nil {
			return 0, fmt.Errorf("invalid --start-card: %w", err)
		}
		return index, nil
	}

	if !cmd.Flags().Changed("start") {
		return g.StartIndex()
	}
	index, _ := cmd.Flags().GetInt("start")
	if index < 0 || index >= graph.Len() {
		return 0, fmt.Errorf("invalid --start %d: game has %d cards", index, graph.Len())
	}
	return index, nil
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int("start", 0, "Index of the card to start from")
	playCmd.Flags().String("start-card", "", "card_id of the card to start from")
	playCmd.Flags().Bool("plain", false, "Print cards line by line instead of running full screen")
	playCmd.Flags().Int("width", 0, "Text wrap width in columns (default from config)")
	playCmd.MarkFlagsMutuallyExclusive("start", "start-card")
}
