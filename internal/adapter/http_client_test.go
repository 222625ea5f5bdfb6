// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("go-medichat", userID, time.Hour, "test-secret", "HS256")
	require.NoError(t, err)
	return token.SignedString
}

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL})
	return a.(*httpServerAdapter)
}

func TestClientRegister_Success(t *testing.T) {
	signed := signedTestToken(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: signed,
			TokenType:   "bearer",
			ExpiresIn:   3600,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Login: "alice", Password: "s3cret", Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, signed, a.Token())
}

func TestClientRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"login already exists"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginTaken)
	assert.Contains(t, err.Error(), "login already exists")
}

func TestClientLogin_Success(t *testing.T) {
	signed := signedTestToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: signed, TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, signed, got.SignedString)
}

func TestClientLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestClientLogin_EmptyAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.TokenResponse{TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})

	assert.ErrorIs(t, err, ErrUpstreamResponse)
}

func TestClientProfile_SendsBearerToken(t *testing.T) {
	signed := signedTestToken(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/profile", r.URL.Path)
		assert.Equal(t, "Bearer "+signed, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.Profile{ID: 7, Login: "alice", Name: "Alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(signed)

	got, err := a.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice", got.Login)
}

func TestClientChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I have a headache", req.Message)

		_ = json.NewEncoder(w).Encode(models.ChatResponse{
			Reply:    "Rest and stay hydrated.",
			Language: "en",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(signedTestToken(t, 7))

	got, err := a.Chat(context.Background(), models.ChatRequest{Message: "I have a headache", Language: "en"})

	require.NoError(t, err)
	assert.Equal(t, "Rest and stay hydrated.", got.Reply)
}

func TestClientChat_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token is expired or invalid"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Chat(context.Background(), models.ChatRequest{Message: "hi"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}
