// Package config reads service settings from the environment, after
// optionally loading a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment when the file exists.
// Variables already set in the environment win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns key parsed as an integer, or fallback when unset.
// Malformed values are logged and ignored.
func GetInt(key string, fallback int) int {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return n
}

// GetDuration returns key parsed with time.ParseDuration, or fallback.
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return d
}
