package config

import (
	"os"
	"strings"
)

const (
	defaultDatabasePath   = "awards.db"
	defaultSourceJSONPath = "AcademyAwards.json"
)

type Config struct {
	// database path
	DatabasePath string

	// source JSON file the importer bulk-loads from
	SourceJSONPath string

	// origins allowed by the CORS middleware
	AllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DatabasePath:   getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		SourceJSONPath: getEnvOrDefault("SOURCE_JSON_PATH", defaultSourceJSONPath),
	}

	origins := getEnvOrDefault("ALLOWED_ORIGINS", "*")
	for _, origin := range strings.Split(origins, ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}
