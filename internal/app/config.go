package app

import (
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	UsersURL string       // users endpoint; empty means userapi.DefaultURL
	HTTP     *http.Client // optional; defaults to http.DefaultClient
	Logger   *zap.Logger  // optional; defaults to a nop logger
}

// ConfigFromEnv returns a Config with env overrides applied.
// DEMO_USERS_URL sets the users endpoint.
func ConfigFromEnv() Config {
	return Config{UsersURL: strings.TrimSpace(os.Getenv("DEMO_USERS_URL"))}
}
