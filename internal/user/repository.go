package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dalarosa-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, email, passwordHash string, role Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, passwordHash string, role Role) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
		zap.String("email", email),
	)

	u := User{Email: email, PasswordHash: passwordHash, Role: role}
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO admin_users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at",
		email, passwordHash, role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.Warn("email already registered")
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user", zap.Error(err))
		return nil, fmt.Errorf("insert admin user: %w", err)
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, "id", id)
}

func (r *repository) findOne(ctx context.Context, column, value string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, role, created_at FROM admin_users WHERE "+column+" = $1",
		value,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find user",
			zap.String("by", column),
			zap.Error(err),
		)
		return nil, fmt.Errorf("find admin user: %w", err)
	}
	return &u, nil
}
