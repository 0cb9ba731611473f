package wire

import (
	"stayease/internal/adaptor"
	"stayease/internal/data/repository"
	"stayease/pkg/middleware"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	staff := middleware.Staff(log)

	// ==================== USER ROUTES ====================
	r.With(auth).Post("/bookings/quote", bookingHandler.Quote)
	r.With(auth).Post("/bookings", bookingHandler.Create)
	r.With(auth).Get("/bookings", bookingHandler.GetAllBookings)
	r.With(auth).Get("/bookings/{id}", bookingHandler.GetBooking)

	// ==================== STAFF ROUTES ====================
	// Lifecycle transitions are staff decisions
	r.With(auth, staff).Post("/bookings/{id}/approve", bookingHandler.Approve)
	r.With(auth, staff).Post("/bookings/{id}/reject", bookingHandler.Reject)
	r.With(auth, staff).Post("/bookings/{id}/check-in", bookingHandler.CheckIn)
	r.With(auth, staff).Post("/bookings/{id}/check-out", bookingHandler.CheckOut)
}
