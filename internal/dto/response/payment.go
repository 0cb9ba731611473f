package response

import (
	"time"

	"stayease/internal/data/entity"
)

type PaymentResponse struct {
	ID         string               `json:"id"`
	BookingID  string               `json:"booking_id"`
	RenterName string               `json:"renter_name"`
	Amount     int64                `json:"amount"`
	Status     entity.PaymentStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID.String(),
		BookingID:  payment.BookingID.String(),
		RenterName: payment.RenterName,
		Amount:     payment.Amount,
		Status:     payment.Status,
		CreatedAt:  payment.CreatedAt,
		UpdatedAt:  payment.UpdatedAt,
	}
}
