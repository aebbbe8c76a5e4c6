package configs

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Источники набора данных
const (
	SourceFiles    = "files"
	SourcePostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Data     DataConfig
	Playback PlaybackConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

type AppConfig struct {
	Port     string // HTTP_PORT из .env
	GRPCPort string // GRPC_PORT из .env
	LogLevel string
	GinMode  string
	Env      string
}

type DataConfig struct {
	Source string // files | postgres
	Dir    string
}

type PlaybackConfig struct {
	Tick time.Duration
	Step float64 // секунд записи за один тик
}

// LoadConfig загружает конфигурацию из .env файла и окружения
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "insideor"),
			Password: getEnv("DB_PASSWORD", "insideor"),
			DBName:   getEnv("DB_NAME", "insideor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
		App: AppConfig{
			Port:     getEnv("HTTP_PORT", "8080"),
			GRPCPort: getEnv("GRPC_PORT", "50051"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
			GinMode:  getEnv("GIN_MODE", "release"),
			Env:      getEnv("ENV", "development"),
		},
		Data: DataConfig{
			Source: getEnv("DATA_SOURCE", SourceFiles),
			Dir:    getEnv("DATA_DIR", "./data"),
		},
		Playback: PlaybackConfig{
			Tick: time.Duration(getEnvAsInt("PLAYBACK_TICK_MS", 1000)) * time.Millisecond,
			Step: getEnvAsFloat("PLAYBACK_STEP", 100),
		},
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает переменную окружения как int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
