package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/entity"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== ADMIN ROUTES ====================
	// Staff/admin registration requires an admin token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Post("/api/admin/staff", authHandler.RegisterStaff)
	})
}
