package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func uniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}

	return false
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, password, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := m.db.QueryRowContext(ctx, query, u.Username, u.Password.hash, u.Name).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case uniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, password, name, bio, created_at
		FROM users
		WHERE username = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password.hash, &u.Name, &u.Bio, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, username, password, name, bio, created_at
		FROM users
		WHERE id = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password.hash, &u.Name, &u.Bio, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) update(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET name = $1, bio = $2, password = $3
		WHERE id = $4`

	res, err := m.db.ExecContext(ctx, query, u.Name, u.Bio, u.Password.hash, u.ID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
