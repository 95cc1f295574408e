package config

import (
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

// LoadDotenv loads a .env file into the process environment when one is
// present. Deployed environments set real variables and skip this.
func LoadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}
}
