package repository

import (
	"stayease/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Room    RoomRepository
	Booking BookingRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}
