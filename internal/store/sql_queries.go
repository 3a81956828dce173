// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-directory/models"
)

const usersTable = "users"

var (
	localUserColumns = []string{
		"id", "nome", "email", "senha_hash", "role", "fazenda_id",
		"ativo", "created_at", "updated_at", "synced", "remote_id",
	}
	remoteUserColumns = []string{
		"id", "nome", "email", "senha_hash", "role", "fazenda_id",
		"ativo", "created_at", "updated_at",
	}
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func buildInsertLocalUserQuery(user models.User) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(usersTable).
		Columns(localUserColumns...).
		Values(
			user.ID,
			user.Nome,
			models.NormalizeEmail(user.Email),
			user.SenhaHash,
			string(user.Role),
			nullString(user.FazendaID),
			user.Ativo,
			user.CreatedAt.UTC(),
			user.UpdatedAt.UTC(),
			user.Synced,
			nullString(user.RemoteID),
		).
		ToSql()
	return wrapBuildErr(query, args, err)
}

// buildSelectLocalUserQuery selects users matching where; a nil where
// selects every user ordered by creation time.
func buildSelectLocalUserQuery(where sq.Sqlizer) (string, []any, error) {
	builder := sqliteBuilder.
		Select(localUserColumns...).
		From(usersTable)

	if where != nil {
		builder = builder.Where(where)
	} else {
		builder = builder.OrderBy("created_at", "id")
	}

	return wrapBuildErr(builder.ToSql())
}

func buildCountLocalUsersQuery() (string, []any, error) {
	return wrapBuildErr(sqliteBuilder.Select("COUNT(*)").From(usersTable).ToSql())
}

func buildUpdateLocalUserQuery(user models.User) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Update(usersTable).
		SetMap(map[string]any{
			"nome":       user.Nome,
			"email":      models.NormalizeEmail(user.Email),
			"senha_hash": user.SenhaHash,
			"role":       string(user.Role),
			"fazenda_id": nullString(user.FazendaID),
			"ativo":      user.Ativo,
			"updated_at": user.UpdatedAt.UTC(),
			"synced":     user.Synced,
			"remote_id":  nullString(user.RemoteID),
		}).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	return wrapBuildErr(query, args, err)
}

func buildDeleteLocalUserQuery(id string) (string, []any, error) {
	return wrapBuildErr(sqliteBuilder.Delete(usersTable).Where(sq.Eq{"id": id}).ToSql())
}

func buildSelectRemoteUsersQuery() (string, []any, error) {
	return wrapBuildErr(postgresBuilder.
		Select(remoteUserColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql())
}

func buildInsertRemoteUserQuery(user models.RemoteUser) (string, []any, error) {
	query, args, err := postgresBuilder.
		Insert(usersTable).
		Columns(remoteUserColumns...).
		Values(
			user.ID,
			user.Nome,
			models.NormalizeEmail(user.Email),
			user.SenhaHash,
			string(user.Role),
			nullString(user.FazendaID),
			user.Ativo,
			user.CreatedAt.UTC(),
			user.UpdatedAt.UTC(),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	return wrapBuildErr(query, args, err)
}

func wrapBuildErr(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
