// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Optional .env file loading
)

type Config struct { // Config struct holds all configuration values
	Port      string // Port the HTTP server listens on
	DBPath    string // Path to the SQLite database file
	JWTSecret string // Secret key for JWT authentication

	// Optional superuser seeded at startup
	CreateSuperuser   bool
	SuperuserEmail    string
	SuperuserPassword string
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present, ignore when missing

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "data.db"),        // Get DB path or use default
		JWTSecret:         getEnv("JWT_SECRET", "supersecret"), // Get JWT secret or use default
		CreateSuperuser:   getEnv("CREATE_SUPERUSER", "") == "true",
		SuperuserEmail:    getEnv("SUPERUSER_EMAIL", ""),
		SuperuserPassword: getEnv("SUPERUSER_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
