package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/arcanaland/adventurer/cmd"
)

func main() {
	// A .env next to the game is optional
	_ = godotenv.Load()

	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
