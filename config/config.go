// Package config loads CLI settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvInputDir = "AOC_INPUT_DIR"
	EnvYear     = "AOC_YEAR"
)

// Defaults used when a variable is unset.
const (
	DefaultInputDir = "inputs"
	DefaultYear     = 2024
)

// Config holds the runner's configuration values.
type Config struct {
	InputDir string // Directory holding <year>/dayNN.txt inputs
	Year     int    // Event year used when a command does not name one
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and builds a Config. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[AOC] [INFO] .env file not found or could not be loaded: %v", err)
	}

	year, err := getEnvAsIntWithDefault(EnvYear, DefaultYear)
	if err != nil {
		return Config{}, err
	}

	return Config{
		InputDir: getEnvWithDefault(EnvInputDir, DefaultInputDir),
		Year:     year,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
