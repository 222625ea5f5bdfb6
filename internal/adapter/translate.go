// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const googleTranslateURL = "https://translation.googleapis.com/language/translate/v2"

// GoogleTranslateConfig carries the connection settings for the Google
// Cloud Translation v2 REST API. BaseURL is only overridden in tests.
type GoogleTranslateConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type googleTranslateClient struct {
	client *resty.Client
	apiKey string
}

// NewGoogleTranslateClient builds a translation client backed by the
// Google Cloud Translation v2 REST API.
func NewGoogleTranslateClient(cfg GoogleTranslateConfig) TranslateClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = googleTranslateURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(300 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &googleTranslateClient{client: cli, apiKey: cfg.APIKey}
}

func (g *googleTranslateClient) Configured() bool { return g.apiKey != "" }

func (g *googleTranslateClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	if !g.Configured() {
		return "", ErrUpstreamNotConfigured
	}
	if source == target || text == "" {
		return text, nil
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":    g.apiKey,
			"q":      text,
			"source": source,
			"target": target,
			"format": "text",
		}).
		Post("")
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: translate answered %d: %s",
			ErrUpstreamStatus, resp.StatusCode(), errorDetail(resp.Body()))
	}

	translated := gjson.GetBytes(resp.Body(), "data.translations.0.translatedText")
	if !translated.Exists() {
		return "", fmt.Errorf("%w: no translations", ErrUpstreamResponse)
	}

	return translated.String(), nil
}
