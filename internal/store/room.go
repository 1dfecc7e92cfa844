package store

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"
)

func scanRoom(row interface{ Scan(...any) error }, r *model.Room) error {
	return row.Scan(
		&r.ID,
		&r.Number,
		&r.Type,
		&r.BaseRate,
		&r.Available,
		&r.Description,
		&r.CreatedAt,
	)
}

func CreateRoom(ctx context.Context, db database.Querier, r *model.Room) (*model.Room, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO rooms (number, type, base_rate, available, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		r.Number,
		r.Type,
		r.BaseRate,
		r.Available,
		r.Description,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateRoom: %w", err)
	}
	return r, nil
}

func GetRoomByID(ctx context.Context, db database.Querier, roomID int) (*model.Room, error) {
	row := db.QueryRow(ctx,
		`SELECT id, number, type, base_rate, available, description, created_at
		 FROM rooms WHERE id = $1`,
		roomID,
	)
	r := &model.Room{}
	if err := scanRoom(row, r); err != nil {
		return nil, fmt.Errorf("GetRoomByID: %w", err)
	}
	return r, nil
}

// GetRoomByIDForUpdate 以 FOR UPDATE 鎖定房間列，將同房的訂房寫入序列化
func GetRoomByIDForUpdate(ctx context.Context, db database.Querier, roomID int) (*model.Room, error) {
	row := db.QueryRow(ctx,
		`SELECT id, number, type, base_rate, available, description, created_at
		 FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	)
	r := &model.Room{}
	if err := scanRoom(row, r); err != nil {
		return nil, fmt.Errorf("GetRoomByIDForUpdate: %w", err)
	}
	return r, nil
}

func ListRooms(ctx context.Context, db database.Querier) ([]model.Room, error) {
	rows, err := db.Query(ctx,
		`SELECT id, number, type, base_rate, available, description, created_at
		 FROM rooms ORDER BY number`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var r model.Room
		if err := scanRoom(rows, &r); err != nil {
			return nil, fmt.Errorf("ListRooms: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRooms: %w", err)
	}
	return rooms, nil
}

func ListAvailableRooms(ctx context.Context, db database.Querier) ([]model.Room, error) {
	rows, err := db.Query(ctx,
		`SELECT id, number, type, base_rate, available, description, created_at
		 FROM rooms WHERE available ORDER BY number`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAvailableRooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var r model.Room
		if err := scanRoom(rows, &r); err != nil {
			return nil, fmt.Errorf("ListAvailableRooms: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAvailableRooms: %w", err)
	}
	return rooms, nil
}

// ListFreeRooms 回傳指定日期區間內沒有已確認訂房重疊的可用房間，
// 重疊判斷：check_in < $2 AND $1 < check_out
func ListFreeRooms(ctx context.Context, db database.Querier, checkIn, checkOut time.Time) ([]model.Room, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.number, r.type, r.base_rate, r.available, r.description, r.created_at
		 FROM rooms r
		 WHERE r.available
		   AND NOT EXISTS (
		       SELECT 1 FROM bookings b
		       WHERE b.room_id = r.id
		         AND b.status = 'confirmed'
		         AND b.check_in < $2
		         AND $1 < b.check_out
		   )
		 ORDER BY r.number`,
		checkIn, checkOut,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFreeRooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var r model.Room
		if err := scanRoom(rows, &r); err != nil {
			return nil, fmt.Errorf("ListFreeRooms: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFreeRooms: %w", err)
	}
	return rooms, nil
}

func UpdateRoom(ctx context.Context, db database.Querier, r *model.Room) error {
	_, err := db.Exec(ctx,
		`UPDATE rooms
		 SET number = $1, type = $2, base_rate = $3, available = $4, description = $5
		 WHERE id = $6`,
		r.Number,
		r.Type,
		r.BaseRate,
		r.Available,
		r.Description,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateRoom: %w", err)
	}
	return nil
}

func SetRoomAvailability(ctx context.Context, db database.Querier, roomID int, available bool) error {
	_, err := db.Exec(ctx,
		`UPDATE rooms SET available = $1 WHERE id = $2`,
		available,
		roomID,
	)
	if err != nil {
		return fmt.Errorf("SetRoomAvailability: %w", err)
	}
	return nil
}

func DeleteRoom(ctx context.Context, db database.Querier, roomID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM rooms WHERE id = $1`,
		roomID,
	)
	if err != nil {
		return fmt.Errorf("DeleteRoom: %w", err)
	}
	return nil
}

// CountActiveBookings 回傳房間尚未取消的訂房數，刪除房間前用來把關
func CountActiveBookings(ctx context.Context, db database.Querier, roomID int) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE room_id = $1 AND status IN ('pending', 'confirmed')`,
		roomID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountActiveBookings: %w", err)
	}
	return n, nil
}
