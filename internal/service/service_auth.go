// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-equip-keeper/internal/config"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/internal/validators"
	"github.com/MKhiriev/go-equip-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as HMAC-SHA256 hashes; tokens are HS256 JWTs.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository
	validator       validators.Validator

	// hashKey is the HMAC secret used when hashing passwords.
	hashKey string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.DevServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		validator:       validators.NewInventoryValidator(),
		hashKey:         cfg.PasswordHashKey,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// RegisterUser creates a new account. An empty role defaults to
// models.RoleUser.
//
// Returns the created user or:
//   - a validation error wrapping validators.ErrValidation.
//   - store.ErrUserAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if reg.Role == "" {
		reg.Role = models.RoleUser
	}
	if err := a.validator.Validate(ctx, reg); err != nil {
		log.Error().Err(err).Str("email", reg.Email).Msg("invalid registration provided")
		return models.User{}, err
	}

	account, err := a.userRepository.CreateUser(ctx, models.Account{
		User:         models.User{Username: reg.Username, Email: reg.Email, Role: reg.Role},
		PasswordHash: utils.HashPassword(reg.Password, a.hashKey),
	})
	if err != nil {
		log.Err(err).Str("email", reg.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return account.User, nil
}

// Login authenticates an existing user.
//
// Returns the user or:
//   - a validation error wrapping validators.ErrValidation.
//   - ErrWrongPassword if the email is unknown or the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Msg("invalid credentials provided")
		return models.User{}, err
	}

	account, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	if !utils.CheckPassword(creds.Password, account.PasswordHash, a.hashKey) {
		log.Error().Str("id", account.ID).Str("email", account.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return account.User, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any failure is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	subject, err := utils.ValidateJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return "", ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.tokenRepository.IsRevoked(ctx, tokenString)
	if err != nil || revoked {
		return "", ErrTokenIsExpiredOrInvalid
	}

	return subject, nil
}

func (a *authService) RevokeToken(ctx context.Context, tokenString string) error {
	expiresAt, ok := utils.TokenExpiresAt(tokenString)
	if !ok {
		expiresAt = time.Now().Add(a.tokenDuration)
	}

	return a.tokenRepository.RevokeToken(ctx, tokenString, expiresAt)
}
