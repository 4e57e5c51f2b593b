// Env loader
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Storage driver identifiers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv        string
	Port          string
	StorageDriver string
	SQLitePath    string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSchema      string
	DailyVerseURL string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:    getEnv("SQLITE_PATH", defaultSQLitePath()),
		DBHost:        getEnv("BLUEPRINT_DB_HOST", "localhost"),
		DBPort:        getEnv("BLUEPRINT_DB_PORT", "5432"),
		DBName:        getEnv("BLUEPRINT_DB_DATABASE", "shepherd_bible"),
		DBUser:        getEnv("BLUEPRINT_DB_USERNAME", "postgres"),
		DBPassword:    getEnv("BLUEPRINT_DB_PASSWORD", ""),
		DBSchema:      getEnv("BLUEPRINT_DB_SCHEMA", "public"),
		DailyVerseURL: getEnv("DAILY_VERSE_URL", "http://localhost:3000"),
	}

	return cfg
}

// PostgresDSN builds the connection string for the postgres storage driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSchema,
	)
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shepherd.db"
	}
	return filepath.Join(home, ".local", "share", "shepherd-bible", "shepherd.db")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
