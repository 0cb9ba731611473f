package request

// CreatePaymentRequest raises a manual invoice against a booking.
type CreatePaymentRequest struct {
	BookingID  string `json:"booking_id" validate:"required,uuid4"`
	RenterName string `json:"renter_name" validate:"required,min=2,max=100"`
	Amount     int64  `json:"amount" validate:"required,min=1"`
}
