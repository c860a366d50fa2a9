// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// Storage errors are mapped through [dberr.Wrap]; a missing row becomes
// [ErrUserNotFound] so callers never see pgx types.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

var userSelect = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.UserAccount.Columns(), ", "), schema.UserAccount.Table)

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	return user, err
}

// notFound narrows a wrapped "no rows" into the user sentinel.
func notFound(err error, action string) error {
	wrapped := dberr.Wrap(err, action)
	if errors.Is(wrapped, dberr.ErrNotFound) {
		return ErrUserNotFound
	}
	return wrapped
}

/*
FindByID retrieves a live user record by primary key.

Returns:
  - *User: Hydrated account entity
  - error: ErrUserNotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s IS NULL`,
		userSelect, schema.UserAccount.ID, schema.UserAccount.DeletedAt)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, notFound(err, "find_user_by_id")
	}
	return user, nil
}

/*
FindByEmail retrieves a live user record by email address.

Returns:
  - *User: Hydrated account entity
  - error: ErrUserNotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s IS NULL`,
		userSelect, schema.UserAccount.Email, schema.UserAccount.DeletedAt)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, notFound(err, "find_user_by_email")
	}
	return user, nil
}

// ExistsByEmail reports whether a live account already uses email.
func (repository *PostgresUserRepository) ExistsByEmail(context context.Context, email string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s IS NULL)`,
		schema.UserAccount.Table, schema.UserAccount.Email, schema.UserAccount.DeletedAt)

	var exists bool
	if err := repository.pool.QueryRow(context, query, email).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "exists_user_by_email")
	}
	return exists, nil
}

/*
Create persists a new user record into the users.account table.

Description: Initializes timestamps and writes the generated ID back onto user.

Returns:
  - error: dberr.ErrDuplicate on a taken email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Email, schema.UserAccount.Name, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := repository.pool.QueryRow(context, query,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	return dberr.Wrap(err, "create_user")
}

/*
Update persists the mutable fields (name, password hash) of a live account.

Returns:
  - error: ErrUserNotFound or persistence failures
*/
func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1 AND %s IS NULL`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Password, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	user.UpdatedAt = time.Now().UTC()

	tag, err := repository.pool.Exec(context, query, user.ID, user.Name, user.PasswordHash, user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

/*
SoftDelete stamps deletedat on a live account.

Returns:
  - error: ErrUserNotFound or persistence failures
*/
func (repository *PostgresUserRepository) SoftDelete(context context.Context, id int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $2 WHERE %s = $1 AND %s IS NULL`,
		schema.UserAccount.Table,
		schema.UserAccount.DeletedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	tag, err := repository.pool.Exec(context, query, id, time.Now().UTC())
	if err != nil {
		return dberr.Wrap(err, "soft_delete_user")
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
