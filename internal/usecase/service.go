package usecase

import (
	"stayease/internal/data/repository"
	"stayease/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Room    RoomService
	Booking BookingService
	Payment PaymentService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Room:    NewRoomService(repo.Room, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, log),
	}
}
