package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBPath       string
	SecretKey    string
	LogLevel     string
	TemplateGlob string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:         getEnv("FITTRACKER_ADDR", ":8080"),
		DBPath:       getEnv("FITTRACKER_DB", "fittracker.db"),
		SecretKey:    getEnv("FITTRACKER_SECRET", "fit-tracker-secret-key-insane-project"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		TemplateGlob: getEnv("FITTRACKER_TEMPLATES", "templates/*.html"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
