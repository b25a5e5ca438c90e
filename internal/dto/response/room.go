package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type RoomResponse struct {
	ID          int               `json:"id"`
	RoomNumber  string            `json:"room_number"`
	Capacity    int               `json:"capacity"`
	Status      entity.RoomStatus `json:"status"`
	Description *string           `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		RoomNumber:  room.RoomNumber,
		Capacity:    room.Capacity,
		Status:      room.Status,
		Description: room.Description,
		CreatedAt:   room.CreatedAt,
	}
}
