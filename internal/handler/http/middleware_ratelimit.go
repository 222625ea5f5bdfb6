// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package http

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

// userRateLimiter hands out one token-bucket limiter per authenticated user.
// Buckets are never evicted; with one small struct per user this stays
// negligible next to the user table itself.
type userRateLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter

	perMinute float64
	burst     int
}

func newUserRateLimiter(perMinute float64, burst int) *userRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &userRateLimiter{
		limiters:  make(map[int64]*rate.Limiter),
		perMinute: perMinute,
		burst:     burst,
	}
}

// enabled reports whether limiting is configured at all.
func (u *userRateLimiter) enabled() bool {
	return u.perMinute > 0
}

func (u *userRateLimiter) allow(userID int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	limiter, ok := u.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(u.perMinute/60), u.burst)
		u.limiters[userID] = limiter
	}
	return limiter.Allow()
}

// withChatRateLimit caps how often a single user may hit the chat endpoint,
// which fans out to a paid completion upstream. Runs after the auth
// middleware, so the user id is always present in the context.
func (h *Handler) withChatRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.chatLimiter.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if ok && !h.chatLimiter.allow(userID) {
			logger.FromRequest(r).Warn().Int64("user_id", userID).Msg("chat rate limit exceeded")
			utils.WriteJSON(w, models.ErrorResponse{Error: "too many chat requests, slow down"}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
