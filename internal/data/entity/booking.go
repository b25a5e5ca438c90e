package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking times are kept as "15:04" strings; the date carries no time part.
type Booking struct {
	Base
	CustomerID  uuid.UUID     `db:"customer_id"`
	RoomID      int           `db:"room_id"`
	BookingDate time.Time     `db:"booking_date"`
	StartTime   string        `db:"start_time"`
	EndTime     string        `db:"end_time"`
	Status      BookingStatus `db:"status"`
}
