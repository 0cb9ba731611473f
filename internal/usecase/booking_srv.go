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

const dateLayout = "2006-01-02"

// defaultPaymentNote is stored when the confirmation payload carries no notes.
const defaultPaymentNote = "Paid via QRIS"

type BookingService interface {
	// Quote prices a stay without persisting anything.
	Quote(ctx context.Context, userID string, req *request.QuoteReservationRequest) (*response.ReservationIntentResponse, error)

	// Create records a paid reservation. The booking always starts pending
	// and the total is recomputed server side.
	Create(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// GetBooking returns one booking. A plain user may only read their
	// own; staff and admin may read any.
	GetBooking(ctx context.Context, bookingID, callerID string, role entity.UserRole) (*response.BookingResponse, error)
	GetAllBookings(ctx context.Context, userID string, role entity.UserRole, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	Approve(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	Reject(ctx context.Context, bookingID string, req *request.RejectBookingRequest) (*response.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CheckOut(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Quote(ctx context.Context, userID string, req *request.QuoteReservationRequest) (*response.ReservationIntentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	renterID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	room, checkIn, checkOut, err := s.resolveStay(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	nights := entity.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("invalid date range: select a valid check-in/check-out range")
	}

	renter, err := s.repo.User.FindByID(ctx, renterID)
	if err != nil {
		s.log.Error("Failed to find renter", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get renter")
	}
	if renter == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &response.ReservationIntentResponse{
		RoomID:        room.ID.String(),
		RoomTypeName:  room.TypeName,
		RoomCount:     req.RoomCount,
		CheckInDate:   checkIn.Format(dateLayout),
		CheckOutDate:  checkOut.Format(dateLayout),
		Nights:        nights,
		PricePerNight: room.PricePerNight,
		TotalPrice:    entity.StayTotal(room.PricePerNight, nights, req.RoomCount),
		Notes:         req.Notes,
		RenterName:    renter.Name,
	}, nil
}

func (s *bookingService) Create(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	renterID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	room, checkIn, checkOut, err := s.resolveStay(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	nights := entity.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("invalid date range: select a valid check-in/check-out range")
	}

	renter, err := s.repo.User.FindByID(ctx, renterID)
	if err != nil {
		s.log.Error("Failed to find renter", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get renter")
	}
	if renter == nil {
		return nil, fmt.Errorf("user not found")
	}

	notes := req.Notes
	if notes == "" {
		notes = defaultPaymentNote
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReferenceID:  utils.GenerateReferenceID(),
		UserID:       renterID,
		RoomID:       room.ID,
		RoomCount:    req.RoomCount,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Notes:        notes,
		TotalPrice:   entity.StayTotal(room.PricePerNight, nights, req.RoomCount),
		Status:       entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("room_id", room.ID.String()),
		)
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference_id", booking.ReferenceID),
		zap.String("user_id", userID),
		zap.Int64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, renter.Name, room.TypeName)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, callerID string, role entity.UserRole) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Hide other renters' bookings from plain users. Not-found keeps the
	// response identical to a booking that never existed.
	if !role.IsStaff() && booking.UserID.String() != callerID {
		s.log.Warn("Booking access denied",
			zap.String("booking_id", bookingID),
			zap.String("caller_id", callerID),
		)
		return nil, fmt.Errorf("booking not found")
	}

	renterName, roomTypeName := s.displayNames(ctx, booking)

	resp := response.BookingToResponse(booking, renterName, roomTypeName)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, userID string, role entity.UserRole, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	// Plain users only ever see their own bookings; staff and admin see all
	var owner *uuid.UUID
	if !role.IsStaff() {
		id, err := uuid.Parse(userID)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID")
		}
		owner = &id
	}

	items, err := s.repo.Booking.FindAllDetailed(ctx, req.Query, owner, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.Booking.CountAllDetailed(ctx, req.Query, owner)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to count bookings")
	}

	results := make([]response.BookingResponse, 0, len(items))
	for _, item := range items {
		results = append(results, response.BookingToResponse(&item.Booking, item.RenterName, item.RoomTypeName))
	}

	return response.NewPaginatedResponse(results, req.Page, req.Limit(), total), nil
}

func (s *bookingService) Approve(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusApproved, nil)
}

func (s *bookingService) Reject(ctx context.Context, bookingID string, req *request.RejectBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reject validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: a rejection reason is required")
	}

	return s.transition(ctx, bookingID, entity.BookingStatusRejected, &req.Notes)
}

func (s *bookingService) CheckIn(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusCheckedIn, nil)
}

func (s *bookingService) CheckOut(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusCheckedOut, nil)
}

// ==================== HELPER METHODS ====================

// resolveStay loads the room and parses both stay dates. It rejects rooms
// with no units left; availability is a room-level flag, not per date.
func (s *bookingService) resolveStay(ctx context.Context, roomID, checkInDate, checkOutDate string) (*entity.Room, time.Time, time.Time, error) {
	var zero time.Time

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid room ID")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", roomID))
		return nil, zero, zero, fmt.Errorf("failed to get room")
	}
	if room == nil {
		return nil, zero, zero, fmt.Errorf("room not found")
	}
	if !room.Available() {
		return nil, zero, zero, fmt.Errorf("room %s is not available", room.TypeName)
	}

	checkIn, err := time.Parse(dateLayout, checkInDate)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-in date")
	}

	checkOut, err := time.Parse(dateLayout, checkOutDate)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-out date")
	}

	return room, checkIn, checkOut, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to get booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return booking, nil
}

// transition moves a booking to the target status. The lifecycle table is
// checked first, then the update runs guarded on the current status so a
// concurrent transition loses instead of overwriting.
func (s *bookingService) transition(ctx context.Context, bookingID string, to entity.BookingStatus, notes *string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(to) {
		s.log.Warn("Illegal booking transition",
			zap.String("booking_id", bookingID),
			zap.String("from", string(booking.Status)),
			zap.String("to", string(to)),
		)
		return nil, fmt.Errorf("booking is %s, cannot move to %s", string(booking.Status), string(to))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, to, notes); err != nil {
		return nil, err
	}

	booking.Status = to
	if notes != nil {
		booking.Notes = *notes
	}
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking status changed",
		zap.String("booking_id", bookingID),
		zap.String("status", string(to)),
	)

	renterName, roomTypeName := s.displayNames(ctx, booking)

	resp := response.BookingToResponse(booking, renterName, roomTypeName)
	return &resp, nil
}

// displayNames resolves the renter and room labels for detail responses.
// Lookup failures degrade to empty labels rather than failing the request.
func (s *bookingService) displayNames(ctx context.Context, booking *entity.Booking) (string, string) {
	var renterName, roomTypeName string

	if renter, err := s.repo.User.FindByID(ctx, booking.UserID); err == nil && renter != nil {
		renterName = renter.Name
	}
	if room, err := s.repo.Room.FindByID(ctx, booking.RoomID); err == nil && room != nil {
		roomTypeName = room.TypeName
	}

	return renterName, roomTypeName
}
