package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/entity"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Caller's own bookings
		r.Get("/api/bookings", bookingHandler.GetMyBookings)

		// GET /api/bookings/{id} - Single booking
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id} - Overwrite booking fields
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id} - Cancel booking
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin), string(entity.RoleStaff)))

		// GET /api/admin/bookings - All bookings regardless of owner
		r.Get("/api/admin/bookings", bookingHandler.GetAllBookings)
	})
}
