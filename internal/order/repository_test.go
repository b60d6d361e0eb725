package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{
	"id", "customer_name", "customer_email", "customer_phone", "delivery_address",
	"items", "total_amount", "status", "created_at",
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(orderRowColumns).
			AddRow("o1", "Maria", "", "4499", "Rua A",
				[]byte(`[{"id":"p1","name":"Arroz","price":"10.00","quantity":2,"image_url":""}]`),
				"20.00", "pending", createdAt)

		mock.ExpectQuery(`(?s)SELECT .* FROM orders ORDER BY created_at DESC, id$`).
			WillReturnRows(rows)

		orders, err := repo.List(ctx, Filter{})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, StatusPending, orders[0].Status)
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, 2, orders[0].Items[0].Quantity)
		assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(20)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ByIDAndStatus", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM orders WHERE id = \$1 AND status = \$2 ORDER BY`).
			WithArgs("o1", "in_progress").
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		orders, err := repo.List(ctx, Filter{ID: "o1", Status: StatusInProgress})
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("db down"))

		_, err = repo.List(ctx, Filter{})
		assert.ErrorIs(t, err, ErrFailedListOrders)
	})

	t.Run("BadItemsJSON", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(orderRowColumns).
			AddRow("o1", "Maria", "", "4499", "Rua A", []byte(`{broken`), "20.00", "pending", createdAt)
		mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

		_, err = repo.List(ctx, Filter{})
		assert.ErrorIs(t, err, ErrFailedListOrders)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		in := validOrder()
		mock.ExpectQuery(`(?s)INSERT INTO orders .* RETURNING id, created_at`).
			WithArgs("Maria", "", "44999990000", "Rua A, 10", sqlmock.AnyArg(), sqlmock.AnyArg(), "pending").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("o42", createdAt))

		out, err := repo.Create(ctx, &in)
		require.NoError(t, err)
		assert.Equal(t, "o42", out.ID)
		assert.Equal(t, createdAt, out.CreatedAt)
		assert.Empty(t, in.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		in := validOrder()
		mock.ExpectQuery(`INSERT INTO orders`).WillReturnError(errors.New("insert failed"))

		_, err = repo.Create(ctx, &in)
		assert.ErrorIs(t, err, ErrFailedCreateOrder)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
			WithArgs("completed", "o1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(ctx, "o1", StatusCompleted))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders`).WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStatus(ctx, "missing", StatusCompleted)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders`).WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, "o1", StatusCancelled), ErrFailedUpdateStatus)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).
			WithArgs("o1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "o1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM orders`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "o1"), ErrOrderNotFound)
	})
}
