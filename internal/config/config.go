package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	ProductionType string
	LogPath        string
	MigrationsPath string

	Database Database
	JWT      JWT
	Redis    Redis
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWT struct {
	Secret string
	TTL    time.Duration
}

type Redis struct {
	URL     string
	Channel string
}

const (
	defaultMigrationsPath = "file://migrations"
	defaultJWTTTL         = 24 * time.Hour
	defaultRedisChannel   = "academic_hub:events"
)

func NewEnvConfig() *Config {
	return &Config{
		Port:           os.Getenv("APP_PORT"),
		ProductionType: os.Getenv("APP_PRODUCTION_TYPE"),
		LogPath:        os.Getenv("APP_LOG_PATH"),
		MigrationsPath: getEnvDefault("APP_MIGRATIONS_PATH", defaultMigrationsPath),

		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},

		JWT: JWT{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    parseHours(os.Getenv("JWT_TTL_HOURS"), defaultJWTTTL),
		},

		Redis: Redis{
			URL:     os.Getenv("REDIS_URL"),
			Channel: getEnvDefault("REDIS_CHANNEL", defaultRedisChannel),
		},
	}
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseHours читает целое число часов, при ошибке возвращает fallback
func parseHours(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return fallback
	}
	return time.Duration(hours) * time.Hour
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")

	fmt.Println("\nApp Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tMigrationsPath: %s\n", config.MigrationsPath)

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tHost: %s\n", config.Database.Host)
	fmt.Printf("\tPort: %s\n", config.Database.Port)
	fmt.Printf("\tUser: %s\n", config.Database.User)
	fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
	fmt.Printf("\tName: %s\n", config.Database.Name)
	fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)

	fmt.Println("\nAuth Configuration:")
	fmt.Printf("\tJWTSecret: %s\n", mask(config.JWT.Secret))
	fmt.Printf("\tJWTTTL: %s\n", config.JWT.TTL)

	fmt.Println("\nRedis Configuration:")
	fmt.Printf("\tURL: %s\n", mask(config.Redis.URL))
	fmt.Printf("\tChannel: %s\n", config.Redis.Channel)

	fmt.Println("\n===================================")
}
