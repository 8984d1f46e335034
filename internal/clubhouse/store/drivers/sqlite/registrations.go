package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

const (
	existsQuery = `SELECT EXISTS (SELECT 1 FROM registrations WHERE reg_key = ?)`

	getQuery = `SELECT email, password, name, created_at, status
		FROM registrations WHERE reg_key = ?`

	putQuery = `INSERT INTO registrations (reg_key, email, password, name, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (reg_key) DO UPDATE SET
			email = excluded.email,
			password = excluded.password,
			name = excluded.name,
			created_at = excluded.created_at,
			status = excluded.status`

	insertQuery = `INSERT INTO registrations (reg_key, email, password, name, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (reg_key) DO NOTHING`

	listQuery = `SELECT reg_key, email, password, name, created_at, status
		FROM registrations ORDER BY id`
)

type registrationsRepo struct {
	db *sql.DB
}

func (r *registrationsRepo) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsQuery, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("sqlite: exists %q: %w", key, err)
	}
	return exists, nil
}

func (r *registrationsRepo) Get(ctx context.Context, key string) (domain.Registration, error) {
	var rec domain.Registration
	err := r.db.QueryRowContext(ctx, getQuery, key).
		Scan(&rec.Email, &rec.Password, &rec.Name, &rec.Timestamp, &rec.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Registration{}, store.ErrNotFound
		}
		return domain.Registration{}, fmt.Errorf("sqlite: get %q: %w", key, err)
	}
	return rec, nil
}

func (r *registrationsRepo) Put(ctx context.Context, key string, rec domain.Registration) error {
	_, err := r.db.ExecContext(ctx, putQuery, args(key, rec)...)
	if err != nil {
		return fmt.Errorf("sqlite: put %q: %w", key, err)
	}
	return nil
}

func (r *registrationsRepo) PutIfAbsent(ctx context.Context, key string, rec domain.Registration) error {
	res, err := r.db.ExecContext(ctx, insertQuery, args(key, rec)...)
	if err != nil {
		return fmt.Errorf("sqlite: insert %q: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: insert %q: %w", key, err)
	}
	if n == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *registrationsRepo) GetAll(ctx context.Context) ([]store.Entry, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list: %w", err)
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
			return nil, fmt.Errorf("sqlite: list: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list: %w", err)
	}
	return out, nil
}

func args(key string, rec domain.Registration) []any {
	return []any{key, rec.Email, rec.Password, rec.Name, rec.Timestamp, string(rec.Status)}
}
