package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/entity"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// GET /api/users/me - own profile
		r.Get("/api/users/me", userHandler.GetProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		// GET /api/admin/users - paginated user list
		r.Get("/api/admin/users", userHandler.GetAllUsers)
	})
}
