package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"torrent-picker/internal/config"
	"torrent-picker/internal/torrentx"
)

// errNoMatch is returned by commands whose lookup came back empty. It maps to
// exit status 2 so scripts can tell "nothing found" from a failure.
var errNoMatch = errors.New("no match")

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[init] .env: %v", err)
	}
	config.Load()
	config.SetupLogging()

	cmd := newRootCommand()
	err := cmd.Execute()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch), errors.Is(err, torrentx.ErrNoCandidate):
		return 2
	default:
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
}
