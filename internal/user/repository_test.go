package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO admin_users \(email, password_hash, role\)`).
			WithArgs("admin@dalarosa.com", "hash", "ADMIN").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u1", createdAt))

		u, err := repo.Create(ctx, "admin@dalarosa.com", "hash", RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, RoleAdmin, u.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO admin_users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "admin_users_email_key"})

		_, err = repo.Create(ctx, "admin@dalarosa.com", "hash", RoleAdmin)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO admin_users`).WillReturnError(errors.New("conn reset"))

		_, err = repo.Create(ctx, "admin@dalarosa.com", "hash", RoleAdmin)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_Find(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "email", "password_hash", "role", "created_at"}

	t.Run("ByEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, email, password_hash, role, created_at FROM admin_users WHERE email = \$1`).
			WithArgs("admin@dalarosa.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("u1", "admin@dalarosa.com", "hash", "ADMIN", createdAt))

		u, err := repo.FindByEmail(ctx, "admin@dalarosa.com")
		require.NoError(t, err)
		assert.Equal(t, "hash", u.PasswordHash)
		assert.True(t, u.IsAdmin())
	})

	t.Run("ByIDNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`FROM admin_users WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err = repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`FROM admin_users`).WillReturnError(errors.New("timeout"))

		_, err = repo.FindByID(ctx, "u1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}
