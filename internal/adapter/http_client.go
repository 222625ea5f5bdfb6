// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

// HTTPClientConfig carries the settings the terminal client uses to reach
// the medichat server.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds the terminal client's HTTP adapter for the
// medichat server API.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx).SetAuthToken(h.Token())
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp.Body(), "register")
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp.Body(), "login")
}

// adoptToken decodes a token response body, remembers the access token for
// subsequent authed requests and resolves the user id from its claims.
func (h *httpServerAdapter) adoptToken(body []byte, op string) (models.Token, error) {
	var tr models.TokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return models.Token{}, fmt.Errorf("%s decode token response: %w", op, err)
	}
	if tr.AccessToken == "" {
		return models.Token{}, fmt.Errorf("%s: %w: empty access token", op, ErrUpstreamResponse)
	}

	userID, err := utils.ParseUserIDFromJWT(tr.AccessToken)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse user id: %w", op, err)
	}

	h.SetToken(tr.AccessToken)
	return models.Token{SignedString: tr.AccessToken, UserID: userID}, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var reply models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return models.ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}
	return reply, nil
}
