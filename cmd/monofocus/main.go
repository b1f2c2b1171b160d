package main

import (
	"os"

	"github.com/joho/godotenv"

	"monofocus-cli/internal/cli"
)

func main() {
	// Optional: lets MONOFOCUS_DIR etc. come from a local .env file.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
