package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the settings of the terminal chat client.
type ClientConfig struct {
	// ServerAddress is the base URL of the go-medichat server
	// (e.g. "http://localhost:8000").
	// Env: MEDICHAT_SERVER
	ServerAddress string `env:"MEDICHAT_SERVER"`

	// RequestTimeout bounds a single API call made by the client.
	// Env: MEDICHAT_TIMEOUT
	RequestTimeout time.Duration `env:"MEDICHAT_TIMEOUT"`

	// HistoryPath is the SQLite file keeping the local chat transcript.
	// Env: MEDICHAT_HISTORY
	HistoryPath string `env:"MEDICHAT_HISTORY"`

	// LogPath is where client diagnostics are written; stdout belongs to
	// the terminal UI.
	// Env: MEDICHAT_LOG
	LogPath string `env:"MEDICHAT_LOG"`

	// Language is the preferred reply language ("en", "hi", "mr").
	// Env: MEDICHAT_LANGUAGE
	Language string `env:"MEDICHAT_LANGUAGE"`
}

// GetClientConfig loads the terminal client configuration from environment
// variables and command-line flags; flags win over the environment. The
// client uses its own flag set so it never collides with server flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerAddress:  "http://localhost:8000",
		RequestTimeout: 90 * time.Second,
		HistoryPath:    "medichat-history.db",
		LogPath:        "medichat-client.log",
		Language:       "en",
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("medichat-client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "s", cfg.ServerAddress, "Server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "Chat history SQLite file")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Client log file")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Reply language (en, hi, mr)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return ErrInvalidClientServer
	}

	return nil
}
