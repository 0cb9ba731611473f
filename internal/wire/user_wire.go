package wire

import (
	"stayease/internal/adaptor"
	"stayease/internal/data/repository"
	"stayease/pkg/middleware"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	// ==================== ADMIN ROUTES ====================
	// Account management is admin only
	r.Route("/users", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.GetAllUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
