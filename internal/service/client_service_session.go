// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-equip-keeper/internal/adapter"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
	"github.com/MKhiriev/go-equip-keeper/internal/validators"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type clientSessionService struct {
	adapter   adapter.ServerAdapter
	cache     store.CredentialCache
	validator validators.Validator
	now       Clock

	mu      sync.Mutex
	session state.Session
	// cached mirrors what was last written to the credential cache.
	cached models.CachedSession

	logger *logger.Logger
}

func NewClientSessionService(serverAdapter adapter.ServerAdapter, cache store.CredentialCache, log *logger.Logger) SessionService {
	return &clientSessionService{
		adapter:   serverAdapter,
		cache:     cache,
		validator: validators.NewInventoryValidator(),
		now:       time.Now,
		logger:    log,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) {
	cached, err := s.cache.Load(ctx)
	if err != nil {
		s.logger.Err(err).Msg("loading credential cache failed, starting signed out")
		cached = models.CachedSession{}
	}

	s.mu.Lock()
	s.session = state.NewSession(cached)
	s.cached = cached
	s.mu.Unlock()

	s.adapter.SetToken(cached.Token)
	s.logger.Debug().Bool("authenticated", !cached.Empty()).Msg("session restored")
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) error {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return err
	}

	s.begin("login")
	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.fail("login", errorText(err, loginFallbacks, false), err)
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return s.signIn(ctx, "login", resp)
}

func (s *clientSessionService) Register(ctx context.Context, reg models.Registration) error {
	if reg.Role == "" {
		reg.Role = models.RoleUser
	}
	if err := s.validator.Validate(ctx, reg); err != nil {
		return err
	}

	s.begin("register")
	resp, err := s.adapter.Register(ctx, reg)
	if err != nil {
		s.fail("register", errorText(err, registerFallbacks, false), err)
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return s.signIn(ctx, "register", resp)
}

// signIn persists a successful auth response. A session that cannot be
// cached is not kept, because it would not count as valid.
func (s *clientSessionService) signIn(ctx context.Context, op string, resp models.AuthResponse) error {
	user := resp.User
	cached := models.CachedSession{Token: resp.Token, User: &user}

	if err := s.cache.Save(ctx, cached); err != nil {
		s.fail(op, MsgCredentialCacheWriteError, err)
		return fmt.Errorf("%w: %w", ErrCredentialCache, err)
	}

	s.mu.Lock()
	s.session.SignIn(resp.Token, &user)
	s.session.Succeed(resp.Message)
	s.cached = cached
	s.mu.Unlock()

	s.logger.Info().Str("op", op).Str("username", user.Username).Str("role", user.Role).Msg("signed in")
	return nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	authenticated := s.session.IsAuthenticated()
	s.mu.Unlock()

	if !authenticated {
		if err := s.clearLocal(ctx); err != nil {
			return err
		}
		s.mu.Lock()
		s.session.ClearBanner()
		s.mu.Unlock()
		return nil
	}

	s.begin("logout")
	resp, remoteErr := s.adapter.Logout(ctx)
	cacheErr := s.clearLocal(ctx)

	s.mu.Lock()
	switch {
	case remoteErr != nil:
		s.session.Fail(errorText(remoteErr, logoutFallbacks, false))
	case cacheErr != nil:
		s.session.Fail(MsgCredentialCacheWriteError)
	default:
		s.session.Succeed(resp.Message)
	}
	s.mu.Unlock()

	if remoteErr != nil {
		s.logger.Err(remoteErr).Str("op", "logout").Msg("server logout failed, local session cleared")
		remoteErr = fmt.Errorf("%w: %w", ErrLogoutOnServer, remoteErr)
	}
	s.logger.Info().Str("op", "logout").Msg("signed out")

	return errors.Join(remoteErr, cacheErr)
}

// clearLocal drops the in-memory session, the adapter token and the cache.
func (s *clientSessionService) clearLocal(ctx context.Context) error {
	s.mu.Lock()
	s.session.SignOut()
	s.cached = models.CachedSession{}
	s.mu.Unlock()

	s.adapter.SetToken("")

	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Err(err).Msg("clearing credential cache failed")
		return fmt.Errorf("%w: %w", ErrCredentialCache, err)
	}
	return nil
}

func (s *clientSessionService) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ClearBanner()
}

func (s *clientSessionService) Snapshot() state.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

func (s *clientSessionService) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return state.SessionValid(s.session, s.cached, s.now())
}

func (s *clientSessionService) begin(op string) {
	s.mu.Lock()
	s.session.Begin()
	s.mu.Unlock()
	s.logger.Debug().Str("op", op).Msg("auth request started")
}

// fail signs the session out and shows text. The cache is left as is: it
// still holds the previous session, which is not valid without a token in
// memory.
func (s *clientSessionService) fail(op, text string, err error) {
	s.mu.Lock()
	s.session.SignOut()
	s.session.Fail(text)
	s.mu.Unlock()

	s.adapter.SetToken("")
	s.logger.Err(err).Str("op", op).Str("status", state.StatusFailed.String()).Msg("auth request failed")
}
