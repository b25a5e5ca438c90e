package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id int) (*entity.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id int) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

// Create inserts a room and fills in the store-assigned id
func (rr *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (room_number, capacity, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := rr.db.QueryRow(ctx, query,
		room.RoomNumber,
		room.Capacity,
		room.Status,
		room.Description,
		room.CreatedAt,
	).Scan(&room.ID)

	if err != nil {
		rr.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (rr *roomRepository) FindByID(ctx context.Context, id int) (*entity.Room, error) {
	query := `
		SELECT id, room_number, capacity, status, description, created_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := rr.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Capacity,
		&room.Status,
		&room.Description,
		&room.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int("room_id", id),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	return &room, nil
}

func (rr *roomRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `
		SELECT id, room_number, capacity, status, description, created_at
		FROM rooms
		WHERE room_number = $1
	`

	var room entity.Room
	err := rr.db.QueryRow(ctx, query, roomNumber).Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Capacity,
		&room.Status,
		&room.Description,
		&room.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room by number %s: %w", roomNumber, err)
	}

	return &room, nil
}

func (rr *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, room_number, capacity, status, description, created_at
		FROM rooms
		ORDER BY id
	`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		rr.log.Error("Failed to get all rooms", zap.Error(err))
		return nil, fmt.Errorf("find all rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.Capacity,
			&room.Status,
			&room.Description,
			&room.CreatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rooms rows: %w", err)
	}

	return rooms, nil
}

func (rr *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, capacity = $3, status = $4, description = $5
		WHERE id = $1
	`

	result, err := rr.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Capacity,
		room.Status,
		room.Description,
	)

	if err != nil {
		rr.log.Error("Failed to update room",
			zap.Error(err),
			zap.Int("room_id", room.ID),
		)
		return fmt.Errorf("update room %d: %w", room.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found", room.ID)
	}

	return nil
}

func (rr *roomRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int("room_id", id),
		)
		return fmt.Errorf("delete room %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found", id)
	}

	rr.log.Info("Room deleted", zap.Int("room_id", id))
	return nil
}
