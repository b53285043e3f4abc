package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBPath      string
	Environment string
}

// Load reads an optional .env file, then the environment. Every setting
// has a workable default so the binary runs with no configuration.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DBPath:      getEnv("DB_PATH", "tutorhub.db"),
		Environment: getEnv("ENV", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
