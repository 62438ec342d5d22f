package config

import "os"

// Config holds server configuration.
type Config struct {
	Addr          string
	DBPath        string
	JWTSecret     string
	AdminPassword string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		Addr:          getenv("COSMOS_ADDR", ":8889"),
		DBPath:        getenv("COSMOS_DB_PATH", "./cosmos_blog.db"),
		JWTSecret:     getenv("COSMOS_JWT_SECRET", "cosmos_secret_key"),
		AdminPassword: getenv("COSMOS_ADMIN_PASSWORD", "r@@t00"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
