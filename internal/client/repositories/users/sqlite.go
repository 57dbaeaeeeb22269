package users

import (
	"context"
	"fmt"

	"github.com/quickticket/quickticket-cli/internal/client/models"
	"github.com/quickticket/quickticket-cli/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users by email: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, user models.LocalUser) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)
	`, user.Name, user.Email, user.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted user id: %w", err)
	}
	return id, nil
}
