// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/internal/validators"
	"github.com/medichat/go-medichat/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// algorithm names the HMAC signing method (HS256, HS384 or HS512).
	algorithm string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// validator enforces the account rules on registration input.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.SecretKey,
		tokenIssuer:    cfg.TokenIssuer,
		algorithm:      cfg.Algorithm,
		tokenDuration:  cfg.TokenDuration(),
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the supplied credentials, hashes the password with bcrypt,
// and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the credentials fail validation.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by login and compares the supplied password against
// the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongPassword if the account does not exist or the password does not
//     match. The two cases are deliberately indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("login", user.Login).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	ok, err := utils.CheckPassword(user.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password check ended with error")
		return models.User{}, fmt.Errorf("password check ended with error: %w", err)
	}
	if !ok {
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetProfile returns the public profile of the user with the given id.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup ended with error: %w", err)
	}
	return user.ToProfile(), nil
}

// CreateToken issues a signed JWT for the given user id using the configured
// issuer, signing key, algorithm and lifetime.
func (a *authService) CreateToken(userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey, a.algorithm)
	if err != nil {
		a.logger.Err(err).Int64("user_id", userID).Msg("token generation ended with error")
		return models.Token{}, fmt.Errorf("token generation ended with error: %w", err)
	}
	token.UserID = userID
	return token, nil
}

// ParseToken validates a JWT string and extracts the user id from its
// subject claim. Any validation failure — bad signature, wrong issuer, wrong
// signing method, expiry — collapses into ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.algorithm)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
