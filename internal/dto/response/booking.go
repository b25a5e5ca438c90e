package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	CustomerID  string               `json:"customer_id"`
	RoomID      int                  `json:"room_id"`
	BookingDate string               `json:"booking_date"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		CustomerID:  booking.CustomerID.String(),
		RoomID:      booking.RoomID,
		BookingDate: booking.BookingDate.Format("2006-01-02"),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}
