package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// ServerAddr builds the listen address from HOST and PORT. PORT must be
// numeric; anything else falls back to 8080.
func ServerAddr() string {
	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		slog.Warn("Invalid PORT value, falling back to 8080",
			slog.String("port", port))
		port = "8080"
	}
	return host + ":" + port
}
