package wire

import (
	"stayease/internal/adaptor"
	"stayease/internal/data/repository"
	"stayease/pkg/middleware"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The room catalog is browsable without an account
	r.Get("/rooms", roomHandler.GetAllRooms)
	r.Get("/rooms/{id}", roomHandler.GetRoom)

	// ==================== STAFF ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	staff := middleware.Staff(log)

	r.With(auth, staff).Post("/rooms", roomHandler.CreateRoom)
	r.With(auth, staff).Put("/rooms/{id}", roomHandler.UpdateRoom)
	r.With(auth, staff).Delete("/rooms/{id}", roomHandler.DeleteRoom)
}
