// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo *mockUserRepository) AuthService {
	cfg := config.App{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		TokenExpireMinutes: 30,
		TokenIssuer:        "go-medichat",
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func TestRegisterUser_HashesPasswordBeforeStorage(t *testing.T) {
	var storedUser models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			storedUser = user
			user.UserID = 1
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	got, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "s3cret", Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)

	assert.Empty(t, storedUser.Password)
	require.NotEmpty(t, storedUser.PasswordHash)
	ok, err := utils.CheckPassword("s3cret", storedUser.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_LoginAlreadyExists(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "s3cret"})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			assert.Equal(t, "alice", login)
			return models.User{UserID: 7, Login: "alice", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	got, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: "alice", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err = svc.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUserIndistinguishableFromWrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), models.User{Login: "nobody", Password: "s3cret"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("go-medichat", 42, 30*time.Minute, "other-secret", "HS256")
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(foreign.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_RejectsExpiredToken(t *testing.T) {
	expired, err := utils.GenerateJWTToken("go-medichat", 42, -time.Minute, "test-secret", "HS256")
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(expired.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_RejectsWrongIssuer(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("someone-else", 42, 30*time.Minute, "test-secret", "HS256")
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(foreign.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGetProfile_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{UserID: 7, Login: "alice", Name: "Alice"}, nil
		},
	}

	svc := newTestAuthService(repo)
	got, err := svc.GetProfile(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Login)
	assert.Equal(t, "Alice", got.Name)
}
