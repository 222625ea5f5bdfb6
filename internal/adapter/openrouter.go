// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterConfig carries the connection settings for the OpenRouter
// chat-completions API.
type OpenRouterConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type openRouterClient struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewOpenRouterClient builds a completion client backed by OpenRouter.
// The client retries transient failures twice before giving up.
func NewOpenRouterClient(cfg OpenRouterConfig) CompletionClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mistralai/mistral-7b-instruct"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &openRouterClient{client: cli, apiKey: cfg.APIKey, model: cfg.Model}
}

func (o *openRouterClient) Model() string { return o.model }

func (o *openRouterClient) Configured() bool { return o.apiKey != "" }

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (o *openRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	if !o.Configured() {
		return "", ErrUpstreamNotConfigured
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(o.apiKey).
		SetBody(completionRequest{
			Model:    o.model,
			Messages: []completionMessage{{Role: "user", Content: prompt}},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: openrouter answered %d: %s",
			ErrUpstreamStatus, resp.StatusCode(), errorDetail(resp.Body()))
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("%w: no completion choices", ErrUpstreamResponse)
	}

	return strings.TrimSpace(content.String()), nil
}
