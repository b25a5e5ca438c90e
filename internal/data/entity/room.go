package entity

import "time"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusBooked      RoomStatus = "Booked"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

// Room id is assigned by the store (serial), unlike User and Booking.
type Room struct {
	ID          int        `db:"id"`
	RoomNumber  string     `db:"room_number"`
	Capacity    int        `db:"capacity"`
	Status      RoomStatus `db:"status"`
	Description *string    `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
}
