package usecase_test

import (
	"context"
	"testing"

	"stayease/internal/data/entity"
	"stayease/internal/dto/request"
	"stayease/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentService(f *fixture) usecase.PaymentService {
	return usecase.NewPaymentService(f.repo, zap.NewNop())
}

func (f *fixture) seedBooking(t *testing.T, renter *entity.User, room *entity.Room) string {
	t.Helper()

	svc := newBookingService(f)
	created, err := svc.Create(context.Background(), renter.ID.String(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		RoomCount:    1,
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-03",
	})
	require.NoError(t, err)
	return created.ID
}

func TestPaymentService_CreatePayment(t *testing.T) {
	f := newFixture()
	renter := f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	room := f.seedRoom("Superior", 500000, 4)
	bookingID := f.seedBooking(t, renter, room)

	svc := newPaymentService(f)

	resp, err := svc.CreatePayment(context.Background(), &request.CreatePaymentRequest{
		BookingID:  bookingID,
		RenterName: "Andi Wijaya",
		Amount:     1000000,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, resp.Status)
	assert.Equal(t, int64(1000000), resp.Amount)
	assert.Equal(t, bookingID, resp.BookingID)
}

func TestPaymentService_CreatePayment_RequiresExistingBooking(t *testing.T) {
	f := newFixture()
	svc := newPaymentService(f)

	_, err := svc.CreatePayment(context.Background(), &request.CreatePaymentRequest{
		BookingID:  uuid.New().String(),
		RenterName: "Andi Wijaya",
		Amount:     1000000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking not found")
	assert.Empty(t, f.payments.payments)
}

func TestPaymentService_CreatePayment_Validation(t *testing.T) {
	f := newFixture()
	svc := newPaymentService(f)

	tests := []struct {
		name string
		req  request.CreatePaymentRequest
	}{
		{"missing booking id", request.CreatePaymentRequest{RenterName: "Andi Wijaya", Amount: 1000000}},
		{"malformed booking id", request.CreatePaymentRequest{BookingID: "not-a-uuid", RenterName: "Andi Wijaya", Amount: 1000000}},
		{"zero amount", request.CreatePaymentRequest{BookingID: uuid.New().String(), RenterName: "Andi Wijaya"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePayment(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestPaymentService_ConfirmPayment(t *testing.T) {
	f := newFixture()
	renter := f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	room := f.seedRoom("Superior", 500000, 4)
	bookingID := f.seedBooking(t, renter, room)

	svc := newPaymentService(f)

	created, err := svc.CreatePayment(context.Background(), &request.CreatePaymentRequest{
		BookingID:  bookingID,
		RenterName: "Andi Wijaya",
		Amount:     1000000,
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmPayment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, confirmed.Status)

	// A payment is confirmed at most once
	_, err = svc.ConfirmPayment(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot confirm")
}

func TestPaymentService_ConfirmPayment_Missing(t *testing.T) {
	f := newFixture()
	svc := newPaymentService(f)

	_, err := svc.ConfirmPayment(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment not found")

	_, err = svc.ConfirmPayment(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment ID")
}

func TestPaymentService_GetAllPayments(t *testing.T) {
	f := newFixture()
	renter := f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	room := f.seedRoom("Superior", 500000, 4)
	bookingID := f.seedBooking(t, renter, room)

	svc := newPaymentService(f)

	for _, amount := range []int64{500000, 1000000} {
		_, err := svc.CreatePayment(context.Background(), &request.CreatePaymentRequest{
			BookingID:  bookingID,
			RenterName: "Andi Wijaya",
			Amount:     amount,
		})
		require.NoError(t, err)
	}

	payments, err := svc.GetAllPayments(context.Background())
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
