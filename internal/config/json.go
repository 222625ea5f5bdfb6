package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings such as
// "30s" or "1h15m".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for human-readable durations.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-encoded durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		SecretKey          string `json:"secret_key"`
		Algorithm          string `json:"algorithm"`
		TokenExpireMinutes int    `json:"access_token_expire_minutes"`
		TokenIssuer        string `json:"token_issuer"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		Address           string   `json:"address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ChatRatePerMinute float64  `json:"chat_rate_limit"`
		ChatRateBurst     int      `json:"chat_rate_burst"`
	} `json:"server,omitempty"`

	Storage struct {
		DatabaseURL        string `json:"database_url"`
		RedisURL           string `json:"redis_url"`
		VectorDimension    int    `json:"vector_dimension"`
		VectorSnapshotPath string `json:"vector_snapshot_path"`
	} `json:"storage,omitempty"`

	Upstream struct {
		OpenRouterAPIKey      string   `json:"openrouter_api_key"`
		OpenRouterBaseURL     string   `json:"openrouter_base_url"`
		OpenRouterModel       string   `json:"openrouter_model"`
		GoogleTranslateAPIKey string   `json:"google_translate_api_key"`
		Timeout               Duration `json:"timeout"`
	} `json:"upstream,omitempty"`

	Workers struct {
		SnapshotSchedule string   `json:"snapshot_schedule"`
		SessionTTL       Duration `json:"session_ttl"`
		CleanupSchedule  string   `json:"cleanup_schedule"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey:          jsonCfg.App.SecretKey,
			Algorithm:          jsonCfg.App.Algorithm,
			TokenExpireMinutes: jsonCfg.App.TokenExpireMinutes,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			Version:            jsonCfg.App.Version,
		},
		Server: Server{
			Address:           jsonCfg.Server.Address,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ChatRatePerMinute: jsonCfg.Server.ChatRatePerMinute,
			ChatRateBurst:     jsonCfg.Server.ChatRateBurst,
		},
		Storage: Storage{
			DatabaseURL:        jsonCfg.Storage.DatabaseURL,
			RedisURL:           jsonCfg.Storage.RedisURL,
			VectorDimension:    jsonCfg.Storage.VectorDimension,
			VectorSnapshotPath: jsonCfg.Storage.VectorSnapshotPath,
		},
		Upstream: Upstream{
			OpenRouterAPIKey:      jsonCfg.Upstream.OpenRouterAPIKey,
			OpenRouterBaseURL:     jsonCfg.Upstream.OpenRouterBaseURL,
			OpenRouterModel:       jsonCfg.Upstream.OpenRouterModel,
			GoogleTranslateAPIKey: jsonCfg.Upstream.GoogleTranslateAPIKey,
			Timeout:               time.Duration(jsonCfg.Upstream.Timeout),
		},
		Workers: Workers{
			SnapshotSchedule: jsonCfg.Workers.SnapshotSchedule,
			SessionTTL:       time.Duration(jsonCfg.Workers.SessionTTL),
			CleanupSchedule:  jsonCfg.Workers.CleanupSchedule,
		},
	}

	return cfg, nil
}
