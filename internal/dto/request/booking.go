package request

// QuoteReservationRequest carries the stay parameters the reservation form
// collects before any booking exists. Dates travel as ISO calendar dates.
type QuoteReservationRequest struct {
	RoomID       string `json:"room_id" validate:"required,uuid4"`
	RoomCount    int    `json:"room_count" validate:"required,min=1,max=10"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Notes        string `json:"notes,omitempty"`
}

// CreateBookingRequest is the payment confirmation payload. Status may only
// be omitted or "pending"; the server decides the initial state.
type CreateBookingRequest struct {
	RoomID       string `json:"room_id" validate:"required,uuid4"`
	RoomCount    int    `json:"room_count" validate:"required,min=1,max=10"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=pending"`
}

// RejectBookingRequest requires a non-empty reason; the field is called
// notes on the wire.
type RejectBookingRequest struct {
	Notes string `json:"notes" validate:"required,min=1"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Query string `json:"q,omitempty"`
}
