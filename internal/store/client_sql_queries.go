// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable = "credentials"

	tokenKey = "token"
	userKey  = "user"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectCredentialsQuery() (string, []any, error) {
	return psql.
		Select("name", "value").
		From(credentialsTable).
		Where(sq.Eq{"name": []string{tokenKey, userKey}}).
		ToSql()
}

func buildUpsertCredentialQuery(name, value string) (string, []any, error) {
	return psql.
		Insert(credentialsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCredentialsQuery(names ...string) (string, []any, error) {
	return psql.
		Delete(credentialsTable).
		Where(sq.Eq{"name": names}).
		ToSql()
}
