// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, rate limiting and
// metrics concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.StructuredConfig

	chatLimiter *userRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     m,
		cfg:         cfg,
		chatLimiter: newUserRateLimiter(cfg.Server.ChatRatePerMinute, cfg.Server.ChatRateBurst),
		logger:      logger,
	}
}
