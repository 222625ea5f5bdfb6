package config

import (
	"flag"
	"time"
)

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database URL (PostgreSQL DSN)
//	-redis redis URL for the session store
//	-c/-config json file path with configs
//	-secret-key token signing secret
//	-algorithm token signing algorithm (HS256, HS384, HS512)
//	-token-expire-minutes access token lifetime in minutes
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-snapshot-path vector index snapshot file path
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseURL string
	var redisURL string
	var jsonConfigPath string
	var secretKey string
	var algorithm string
	var tokenExpireMinutes int
	var tokenIssuer string
	var requestTimeout time.Duration
	var snapshotPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseURL, "d", "", "Database URL")
	flag.StringVar(&redisURL, "redis", "", "Redis URL for the session store")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Token signing secret")
	flag.StringVar(&algorithm, "algorithm", "", "Token signing algorithm (HS256, HS384, HS512)")
	flag.IntVar(&tokenExpireMinutes, "token-expire-minutes", 0, "Access token lifetime in minutes")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Vector index snapshot file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SecretKey:          secretKey,
			Algorithm:          algorithm,
			TokenExpireMinutes: tokenExpireMinutes,
			TokenIssuer:        tokenIssuer,
		},
		Server: Server{
			Address:        serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DatabaseURL:        databaseURL,
			RedisURL:           redisURL,
			VectorSnapshotPath: snapshotPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
