package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func roomVals(id int, number string, available bool, created time.Time) []any {
	return []any{id, number, "double", 100.0, available, "sea view", created}
}

func TestCreateRoom(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "INSERT INTO rooms")
			require.Equal(t, []any{"101", "double", 100.0, true, "sea view"}, args)
			return fakeRow{vals: []any{1, now}}
		},
	}
	r, err := CreateRoom(context.Background(), db, &model.Room{
		Number:      "101",
		Type:        "double",
		BaseRate:    100,
		Available:   true,
		Description: "sea view",
	})
	require.NoError(t, err)
	require.Equal(t, 1, r.ID)
}

func TestGetRoomByIDForUpdate(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "FOR UPDATE")
			require.Equal(t, []any{2}, args)
			return fakeRow{vals: roomVals(2, "102", true, now)}
		},
	}
	r, err := GetRoomByIDForUpdate(context.Background(), db, 2)
	require.NoError(t, err)
	require.Equal(t, "102", r.Number)
	require.True(t, r.Available)
}

func TestListRooms(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY number")
			return &fakeRows{data: [][]any{
				roomVals(1, "101", true, now),
				roomVals(2, "102", false, now),
			}}, nil
		},
	}
	rooms, err := ListRooms(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, "101", rooms[0].Number)
	require.False(t, rooms[1].Available)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, err = ListRooms(context.Background(), db)
	require.Error(t, err)
}

func TestListFreeRooms(t *testing.T) {
	now := time.Now()
	in := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC)
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			// 重疊條件：b.check_in < $2 AND $1 < b.check_out
			require.Contains(t, sql, "b.check_in < $2")
			require.Contains(t, sql, "$1 < b.check_out")
			require.Contains(t, sql, "status = 'confirmed'")
			require.Equal(t, []any{in, out}, args)
			return &fakeRows{data: [][]any{roomVals(1, "101", true, now)}}, nil
		},
	}
	rooms, err := ListFreeRooms(context.Background(), db, in, out)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
}

func TestSetRoomAvailability(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "UPDATE rooms SET available")
			require.Equal(t, []any{false, 3}, args)
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, SetRoomAvailability(context.Background(), db, 3, false))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("x")
	}
	require.Error(t, SetRoomAvailability(context.Background(), db, 3, false))
}

func TestCountActiveBookings(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "status IN ('pending', 'confirmed')")
			require.Equal(t, []any{4}, args)
			return fakeRow{vals: []any{2}}
		},
	}
	n, err := CountActiveBookings(context.Background(), db, 4)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestDeleteRoom(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "DELETE FROM rooms")
			require.Equal(t, []any{9}, args)
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, DeleteRoom(context.Background(), db, 9))
}
