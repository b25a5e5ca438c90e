package request

type CreateBookingRequest struct {
	RoomID      int    `json:"room_id" validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateBookingRequest struct {
	RoomID      int    `json:"room_id" validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Status      string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled"`
}
