package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageDriverMySQL = "mysql"
	StorageDriverLocal = "local"
)

type Config struct {
	AppPort       string
	StorageDriver string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	LocalStorePath string

	GeminiAPIKey string
	GeminiModel  string

	VisibleStartHour int
	VisibleEndHour   int

	// DigestAt is the HH:MM local time of the daily digest job.
	DigestAt string

	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		StorageDriver:    getEnv("STORAGE_DRIVER", StorageDriverLocal),
		DbHost:           getEnv("MYSQL_HOST", "db"),
		DbPort:           getEnv("MYSQL_PORT", "3306"),
		DbUser:           getEnv("MYSQL_USER", "scholarsync"),
		DbPassword:       getEnv("MYSQL_PASSWORD", "scholarsync"),
		DbName:           getEnv("MYSQL_DATABASE", "scholarsync"),
		DbParams:         getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		LocalStorePath:   getEnv("LOCAL_STORE_PATH", "scholarsync.db"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		VisibleStartHour: getEnvInt("VISIBLE_START_HOUR", 7),
		VisibleEndHour:   getEnvInt("VISIBLE_END_HOUR", 22),
		DigestAt:         getEnv("DIGEST_AT", "07:00"),
		TrustedProxies:   parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
