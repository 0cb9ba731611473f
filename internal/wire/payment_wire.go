package wire

import (
	"stayease/internal/adaptor"
	"stayease/internal/data/repository"
	"stayease/pkg/middleware"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	// The payments hub is a back-office screen
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	staff := middleware.Staff(log)

	r.With(auth, staff).Get("/payments", paymentHandler.GetAllPayments)
	r.With(auth, staff).Post("/payments", paymentHandler.CreatePayment)
	r.With(auth, staff).Put("/payments/{id}", paymentHandler.ConfirmPayment)
}
