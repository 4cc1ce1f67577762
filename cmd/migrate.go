package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/adventurer/internal/story"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "Convert a page_id card document to the card_id schema",
	Long: `Migrate rewrites a cyoa.json written for the old page_id schema so that it
uses card_id and button0N_goto_card_id. The result replaces the file unless
--out names another destination; use --out - to print it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = src
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", src, err)
		}

		if !story.IsLegacy(data) {
			fmt.Printf("%s already uses the card_id schema\n", src)
			return nil
		}

		migrated, n, err := story.MigrateLegacy(data)
		if err != nil {
			return fmt.Errorf("error migrating %s: %w", src, err)
		}

		// Refuse to write something the player could not load
		if _, err := story.Parse(src, migrated); err != nil {
			return fmt.Errorf("migrated document does not load: %w", err)
		}

		if out == "-" {
			_, err = os.Stdout.Write(migrated)
			return err
		}
		if err := os.WriteFile(out, migrated, 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "Migrated %d cards to %s\n", n, out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringP("out", "o", "", "Write the migrated document here instead of replacing the input (- for stdout)")
}
