package wire

import (
	"stayease/internal/adaptor"
	"stayease/internal/data/repository"
	"stayease/pkg/middleware"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	r.With(auth).Post("/auth/logout", authHandler.Logout)
	r.With(auth).Get("/auth/profile", authHandler.Profile)
}
