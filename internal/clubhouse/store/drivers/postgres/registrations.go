package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type registrationsRepo struct {
	db *sql.DB
}

func (r *registrationsRepo) Exists(ctx context.Context, key string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE reg_key = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}
	return exists, nil
}

func (r *registrationsRepo) Get(ctx context.Context, key string) (domain.Registration, error) {
	query :=
		`SELECT email, password, name, created_at, status FROM registrations
		 WHERE reg_key = $1`

	var rec domain.Registration
	err := r.db.QueryRowContext(ctx, query, key).
		Scan(&rec.Email, &rec.Password, &rec.Name, &rec.Timestamp, &rec.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Registration{}, store.ErrNotFound
		}
		return domain.Registration{}, fmt.Errorf("error performing sql request: %w", err)
	}
	return rec, nil
}

func (r *registrationsRepo) Put(ctx context.Context, key string, rec domain.Registration) error {
	query :=
		`INSERT INTO registrations (reg_key, email, password, name, created_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (reg_key) DO UPDATE SET
		 	email = EXCLUDED.email,
		 	password = EXCLUDED.password,
		 	name = EXCLUDED.name,
		 	created_at = EXCLUDED.created_at,
		 	status = EXCLUDED.status`

	if _, err := r.db.ExecContext(ctx, query,
		key, rec.Email, rec.Password, rec.Name, rec.Timestamp, string(rec.Status)); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *registrationsRepo) PutIfAbsent(ctx context.Context, key string, rec domain.Registration) error {
	query :=
		`INSERT INTO registrations (reg_key, email, password, name, created_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (reg_key) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		key, rec.Email, rec.Password, rec.Name, rec.Timestamp, string(rec.Status))
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if n == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *registrationsRepo) GetAll(ctx context.Context) ([]store.Entry, error) {
	query :=
		`SELECT reg_key, email, password, name, created_at, status FROM registrations
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var out []store.Entry
	for rows.Next() {
		var e store.Entry
		if err := rows.Scan(
			&e.Key,
			&e.Record.Email,
			&e.Record.Password,
			&e.Record.Name,
			&e.Record.Timestamp,
			&e.Record.Status,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}
