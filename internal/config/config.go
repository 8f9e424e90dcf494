package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config only tunes diagnostics; the task manager itself takes no settings.
type Config struct {
	LogLevel string
}

func Load() Config {
	_ = godotenv.Load() // .env необязателен

	return Config{
		LogLevel: getEnv("TASKS_LOG_LEVEL", "warn"),
	}
}

func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
