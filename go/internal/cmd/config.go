package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mcdev12/mindmeld/go/internal/words"
)

// Config holds server runtime settings read from the environment.
type Config struct {
	Port         string
	NATSURL      string
	AdvanceDelay time.Duration
	WordsFile    string
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		NATSURL:      getEnv("NATS_URL", "nats://localhost:4222"),
		AdvanceDelay: time.Duration(getEnvAsInt("ADVANCE_DELAY_SECONDS", 3)) * time.Second,
		WordsFile:    getEnv("WORDS_FILE", ""),
	}
}

// loadCatalog returns the word catalog, using the built-in deck unless a
// yaml override file is configured.
func loadCatalog(config Config) (*words.Catalog, error) {
	if config.WordsFile == "" {
		return words.Default(), nil
	}
	catalog, err := words.LoadFile(config.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load word catalog: %w", err)
	}
	return catalog, nil
}
