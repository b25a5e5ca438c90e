package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/entity"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing rooms needs no token
	r.Get("/api/rooms", roomHandler.GetRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)

	// ==================== STAFF ROUTES ====================
	// Inventory mutation requires an elevated role
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin), string(entity.RoleStaff)))

		r.Post("/api/rooms", roomHandler.CreateRoom)
		r.Put("/api/rooms/{id}", roomHandler.UpdateRoom)
		r.Delete("/api/rooms/{id}", roomHandler.DeleteRoom)
	})
}
