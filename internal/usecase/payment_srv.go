package usecase

import (
	"context"
	"fmt"
	"time"

	"stayease/internal/data/entity"
	"stayease/internal/data/repository"
	"stayease/internal/dto/request"
	"stayease/internal/dto/response"
	"stayease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error)

	// CreatePayment raises a pending invoice against an existing booking.
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)

	// ConfirmPayment flips a pending payment to success. A payment is
	// confirmed at most once.
	ConfirmPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get payments", zap.Error(err))
		return nil, fmt.Errorf("failed to get payments")
	}

	items := make([]response.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		items = append(items, response.PaymentToResponse(payment))
	}

	return items, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreatePayment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to get booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	now := time.Now()
	payment := &entity.Payment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:  bookingID,
		RenterName: req.RenterName,
		Amount:     req.Amount,
		Status:     entity.PaymentStatusPending,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("failed to create payment")
	}

	s.log.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Int64("amount", payment.Amount),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID")
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find payment", zap.Error(err), zap.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to get payment")
	}
	if payment == nil {
		return nil, fmt.Errorf("payment not found")
	}

	if err := s.repo.Payment.Confirm(ctx, id); err != nil {
		return nil, err
	}

	payment.Status = entity.PaymentStatusSuccess
	payment.UpdatedAt = time.Now()

	s.log.Info("Payment confirmed", zap.String("payment_id", paymentID))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}
