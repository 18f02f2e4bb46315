// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository returns a [CredentialCache] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialCache {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *credentialRepository) Load(ctx context.Context) (models.CachedSession, error) {
	query, args, err := buildSelectCredentialsQuery()
	if err != nil {
		return models.CachedSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Err(err).Str("func", "credentialRepository.Load").Msg("failed to query credentials")
		return models.CachedSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return models.CachedSession{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[name] = value
	}
	if err = rows.Err(); err != nil {
		return models.CachedSession{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	session := models.CachedSession{Token: values[tokenKey]}
	if session.Token == "" {
		return models.CachedSession{}, nil
	}

	if raw, ok := values[userKey]; ok && raw != "" {
		var user models.User
		if err = json.Unmarshal([]byte(raw), &user); err != nil {
			// the token alone is still a usable session
			c.logger.Warn().Err(err).Str("func", "credentialRepository.Load").Msg("cached user is malformed, ignoring it")
		} else {
			session.User = &user
		}
	}

	return session, nil
}

func (c *credentialRepository) Save(ctx context.Context, session models.CachedSession) error {
	if session.Empty() {
		return c.Clear(ctx)
	}

	var userJSON []byte
	if session.User != nil {
		var err error
		if userJSON, err = json.Marshal(session.User); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingUser, err)
		}
	}

	return c.inTx(ctx, "credentialRepository.Save", func(tx *sql.Tx) error {
		if err := execBuilt(ctx, tx, buildUpsertCredentialQuery, tokenKey, session.Token); err != nil {
			return err
		}

		if userJSON == nil {
			query, args, err := buildDeleteCredentialsQuery(userKey)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			return nil
		}

		return execBuilt(ctx, tx, buildUpsertCredentialQuery, userKey, string(userJSON))
	})
}

func (c *credentialRepository) Clear(ctx context.Context) error {
	query, args, err := buildDeleteCredentialsQuery(tokenKey, userKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "credentialRepository.Clear").Msg("failed to clear credentials")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *credentialRepository) inTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		c.logger.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = body(tx); err != nil {
		_ = tx.Rollback()
		c.logger.Err(err).Str("func", fn).Msg("transaction rolled back")
		return err
	}

	if err = tx.Commit(); err != nil {
		c.logger.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func execBuilt(ctx context.Context, tx *sql.Tx, build func(name, value string) (string, []any, error), name, value string) error {
	query, args, err := build(name, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
