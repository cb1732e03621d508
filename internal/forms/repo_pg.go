package forms

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements FormsRepo using Postgres. Field lists and HR
// requirements are stored as JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new form.
func (r *PGRepo) Create(ctx context.Context, form Form) error {
	const query = `
INSERT INTO forms (id, owner_id, title, description, fields, hr_requirements, public_link, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	fieldsJSON, err := json.Marshal(form.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	reqJSON, err := json.Marshal(form.HRRequirements)
	if err != nil {
		return fmt.Errorf("marshal hr requirements: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		form.ID,
		form.OwnerID,
		form.Title,
		form.Description,
		fieldsJSON,
		reqJSON,
		form.PublicLink,
		form.CreatedAt,
	)
	return err
}

// GetByID returns a form by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Form, error) {
	const query = `
SELECT id, owner_id, title, description, fields, hr_requirements, public_link, created_at
FROM forms
WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetByPublicLink returns the form published under the given link.
func (r *PGRepo) GetByPublicLink(ctx context.Context, publicLink string) (Form, error) {
	const query = `
SELECT id, owner_id, title, description, fields, hr_requirements, public_link, created_at
FROM forms
WHERE public_link = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, publicLink))
}

// ListByOwner returns the owner's forms, newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Form, error) {
	const query = `
SELECT id, owner_id, title, description, fields, hr_requirements, public_link, created_at
FROM forms
WHERE owner_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Form
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, form)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row *sql.Row) (Form, error) {
	form, err := scanForm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Form{}, ErrNotFound
	}
	return form, err
}

func scanForm(row rowScanner) (Form, error) {
	var form Form
	var description sql.NullString
	var fieldsJSON, reqJSON []byte
	err := row.Scan(
		&form.ID,
		&form.OwnerID,
		&form.Title,
		&description,
		&fieldsJSON,
		&reqJSON,
		&form.PublicLink,
		&form.CreatedAt,
	)
	if err != nil {
		return Form{}, err
	}
	form.Description = description.String
	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &form.Fields); err != nil {
			return Form{}, fmt.Errorf("unmarshal fields: %w", err)
		}
	}
	if len(reqJSON) > 0 {
		if err := json.Unmarshal(reqJSON, &form.HRRequirements); err != nil {
			return Form{}, fmt.Errorf("unmarshal hr requirements: %w", err)
		}
	}
	return form, nil
}
