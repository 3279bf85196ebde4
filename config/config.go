package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	Database    string
	ImagesDir   string
	SecretKey   string
	CORSOrigins []string

	SweepInterval time.Duration
	SweepMinAge   time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:      getEnv("MONGODB_DATABASE", "beanscene"),
		ImagesDir:     getEnv("IMAGES_DIR", "images"),
		SecretKey:     getEnv("SECRET_KEY", ""),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		SweepInterval: getDuration("SWEEP_INTERVAL", time.Hour),
		SweepMinAge:   getDuration("SWEEP_MIN_AGE", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
