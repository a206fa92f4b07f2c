// Package config loads server configuration from the environment.
//
// A .env file next to the binary is honored when present; real
// environment variables take precedence over it. Every setting has a
// development default, so the server runs with no configuration at all.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database path. ":memory:" keeps the
	// registry for the lifetime of the process only.
	DBPath string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dbPath := os.Getenv("PAYROLL_DB")
	if dbPath == "" {
		dbPath = "payroll.db"
	}

	return Config{
		Addr:   ":" + port,
		DBPath: dbPath,
	}
}
