package adaptor

import (
	"net/http"
	"strings"

	"stayease/internal/usecase"
	"stayease/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Room    *RoomHandler
	Booking *BookingHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
	}
}

// handleServiceError maps service error text onto HTTP status codes. Services
// return plain sentences, so the mapping keys off well-known phrases.
func handleServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "invalid credentials"):
		utils.ResponseUnauthorized(w, msg)
	case strings.Contains(msg, "validation failed"),
		strings.Contains(msg, "invalid"),
		strings.Contains(msg, "cannot"),
		strings.Contains(msg, "not available"),
		strings.Contains(msg, "already registered"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		utils.ResponseInternalError(w, msg)
	}
}
