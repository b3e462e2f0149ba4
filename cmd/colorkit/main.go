package main

import (
	"os"

	"colorkit/internal/cli"

	"github.com/joho/godotenv"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	os.Exit(cli.Execute(version))
}
