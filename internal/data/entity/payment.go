package entity

import "github.com/google/uuid"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusSuccess
}

// Payment is a manual invoice raised by staff against a booking. It starts
// pending and can only be confirmed once.
type Payment struct {
	BaseNoDelete
	BookingID  uuid.UUID     `db:"booking_id"`
	RenterName string        `db:"renter_name"`
	Amount     int64         `db:"amount"`
	Status     PaymentStatus `db:"status"`
}
