package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new user. Email uniqueness is enforced by the schema.
func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, name, email, password_hash, company, position, department, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		strings.ToLower(user.Email),
		user.PasswordHash,
		user.Company,
		user.Position,
		user.Department,
		user.CreatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrEmailExists
	}
	return err
}

// GetByID fetches a user by ID.
func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, name, email, password_hash, company, position, department, created_at
FROM users
WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

// GetByEmail fetches a user by email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, name, email, password_hash, company, position, department, created_at
FROM users
WHERE email = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, strings.ToLower(email)))
}

// UpdatePassword replaces the stored password hash for an email.
func (r *PGRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE email = $2`
	res, err := r.DB.ExecContext(ctx, query, passwordHash, strings.ToLower(email))
	if err != nil {
		return err
	}
	if updated, err := res.RowsAffected(); err == nil && updated == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Company,
		&user.Position,
		&user.Department,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
