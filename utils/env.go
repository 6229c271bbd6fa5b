package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// EnvLocations are the .env files tried, in order of preference.
var EnvLocations = []string{
	".env",        // Current directory
	".env.local",  // Local override
	"config/.env", // Config directory
}

// LoadEnv loads environment variables from a .env file.
// Variables already set in the process environment are kept.
// A missing file is not an error.
func LoadEnv(filename string) (bool, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err := godotenv.Load(filename); err != nil {
		return false, fmt.Errorf("error loading %s file: %w", filename, err)
	}

	log.Info().Str("file", filename).Msg("Loaded environment variables")
	return true, nil
}

// LoadEnvWithFallback loads the first .env file found in EnvLocations.
func LoadEnvWithFallback() error {
	for _, location := range EnvLocations {
		loaded, err := LoadEnv(location)
		if err != nil {
			log.Warn().Err(err).Str("file", location).Msg("Could not load env file")
			continue
		}
		if loaded {
			return nil
		}
	}

	log.Debug().Msg("No .env files found in standard locations, using system environment only")
	return nil
}
