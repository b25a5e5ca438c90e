package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error

	// CountActiveByRoomID counts non-cancelled bookings that reference a room.
	CountActiveByRoomID(ctx context.Context, roomID int) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_id, room_id, booking_date, start_time, end_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.RoomID,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.CreatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("customer_id", booking.CustomerID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (br *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, customer_id, room_id, booking_date, start_time, end_time, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := br.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.RoomID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (br *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, customer_id, room_id, booking_date, start_time, end_time, status, created_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at
	`

	rows, err := br.db.Query(ctx, query, customerID)
	if err != nil {
		br.log.Error("Failed to get bookings by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find bookings by customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	return br.scanBookings(rows)
}

func (br *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, customer_id, room_id, booking_date, start_time, end_time, status, created_at
		FROM bookings
		ORDER BY created_at
	`

	rows, err := br.db.Query(ctx, query)
	if err != nil {
		br.log.Error("Failed to get all bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return br.scanBookings(rows)
}

// Update overwrites all mutable fields of a booking
func (br *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET room_id = $2, booking_date = $3, start_time = $4, end_time = $5, status = $6
		WHERE id = $1
	`

	result, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
	)

	if err != nil {
		br.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (br *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	result, err := br.db.Exec(ctx, query, id, status)
	if err != nil {
		br.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (br *bookingRepository) CountActiveByRoomID(ctx context.Context, roomID int) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND status <> $2`

	var count int64
	err := br.db.QueryRow(ctx, query, roomID, entity.BookingStatusCancelled).Scan(&count)
	if err != nil {
		br.log.Error("Failed to count active bookings for room",
			zap.Error(err),
			zap.Int("room_id", roomID),
		)
		return 0, fmt.Errorf("count active bookings for room %d: %w", roomID, err)
	}

	return count, nil
}

func (br *bookingRepository) scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.RoomID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			br.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate bookings rows: %w", err)
	}

	return bookings, nil
}
