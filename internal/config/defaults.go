package config

import "time"

// Default values applied when no other configuration source sets a field.
// SECRET_KEY and DATABASE_URL deliberately have no default: both are
// deployment secrets that validation requires explicitly.
const (
	DefaultAlgorithm          = "HS256"
	DefaultTokenExpireMinutes = 30
	DefaultTokenIssuer        = "go-medichat"

	DefaultServerAddress  = "0.0.0.0:8000"
	DefaultRequestTimeout = 30 * time.Second

	DefaultChatRatePerMinute = 10
	DefaultChatRateBurst     = 3

	DefaultVectorDimension    = 256
	DefaultVectorSnapshotPath = "data/vector/index.gob"

	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel   = "mistralai/mistral-7b-instruct"
	DefaultUpstreamTimeout   = 60 * time.Second

	DefaultSnapshotSchedule = "@every 5m"
	DefaultSessionTTL       = 30 * time.Minute
	DefaultCleanupSchedule  = "@every 5m"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Algorithm:          DefaultAlgorithm,
			TokenExpireMinutes: DefaultTokenExpireMinutes,
			TokenIssuer:        DefaultTokenIssuer,
		},
		Server: Server{
			Address:           DefaultServerAddress,
			RequestTimeout:    DefaultRequestTimeout,
			ChatRatePerMinute: DefaultChatRatePerMinute,
			ChatRateBurst:     DefaultChatRateBurst,
		},
		Storage: Storage{
			VectorDimension:    DefaultVectorDimension,
			VectorSnapshotPath: DefaultVectorSnapshotPath,
		},
		Upstream: Upstream{
			OpenRouterBaseURL: DefaultOpenRouterBaseURL,
			OpenRouterModel:   DefaultOpenRouterModel,
			Timeout:           DefaultUpstreamTimeout,
		},
		Workers: Workers{
			SnapshotSchedule: DefaultSnapshotSchedule,
			SessionTTL:       DefaultSessionTTL,
			CleanupSchedule:  DefaultCleanupSchedule,
		},
	}
}
