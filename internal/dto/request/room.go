package request

// RoomRequest is used for both create and update; updates overwrite all fields.
type RoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,min=1,max=20"`
	Capacity    int     `json:"capacity" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"required,oneof=Available Booked Maintenance"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}
