package store

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentRow(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "INSERT INTO payments")
			require.Equal(t, []any{3, 100.0, "card", "ref-1", model.PaymentPaid}, args)
			return fakeRow{vals: []any{5, now}}
		},
	}
	p, err := CreatePayment(context.Background(), db, &model.Payment{
		InvoiceID: 3, Amount: 100, Method: "card", Reference: "ref-1", Status: model.PaymentPaid,
	})
	require.NoError(t, err)
	require.Equal(t, 5, p.ID)
	require.Equal(t, now, p.CreatedAt)
}

func TestListPaymentsByInvoice(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "WHERE invoice_id = $1")
			require.Contains(t, sql, "ORDER BY created_at")
			require.Equal(t, []any{3}, args)
			return &fakeRows{data: [][]any{
				{5, 3, 100.0, "card", "ref-1", model.PaymentPaid, now},
				{6, 3, 230.0, "cash", "ref-2", model.PaymentPaid, now},
			}}, nil
		},
	}
	payments, err := ListPaymentsByInvoice(context.Background(), db, 3)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	require.Equal(t, 230.0, payments[1].Amount)
}

func TestSumPaymentsByInvoice(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "COALESCE(SUM(amount), 0)")
			require.Equal(t, []any{3}, args)
			return fakeRow{vals: []any{300.0}}
		},
	}
	sum, err := SumPaymentsByInvoice(context.Background(), db, 3)
	require.NoError(t, err)
	require.Equal(t, 300.0, sum)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: pgx.ErrNoRows}
	}
	_, err = SumPaymentsByInvoice(context.Background(), db, 3)
	require.Error(t, err)
}
