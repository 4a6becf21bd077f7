package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds the environment backed settings. They seed the logger before the
// command line is parsed; the -l/--log-level flag overrides LOG_LEVEL.
type Env struct {
	LogLevel    string
	LogFilePath string
}

// LoadEnv reads .env when present and returns the environment settings. A
// missing .env is fine, plain environment variables still apply.
func LoadEnv() Env {
	_ = godotenv.Load()
	return Env{
		LogLevel:    getEnvString("LOG_LEVEL", "info"),
		LogFilePath: getEnvString("LOG_FILE_PATH", ""),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
