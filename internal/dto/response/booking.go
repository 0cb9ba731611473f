package response

import (
	"time"

	"stayease/internal/data/entity"
)

// ReservationIntentResponse is the computed, unpersisted quote handed back
// to the reservation form. Nothing is written when it is produced.
type ReservationIntentResponse struct {
	RoomID        string `json:"room_id"`
	RoomTypeName  string `json:"room_type_name"`
	RoomCount     int    `json:"room_count"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"price_per_night"`
	TotalPrice    int64  `json:"total_price"`
	Notes         string `json:"notes,omitempty"`
	RenterName    string `json:"renter_name"`
}

type BookingResponse struct {
	ID           string               `json:"id"`
	ReferenceID  string               `json:"reference_id"`
	UserID       string               `json:"user_id"`
	RoomID       string               `json:"room_id"`
	RenterName   string               `json:"renter_name,omitempty"`
	RoomTypeName string               `json:"room_type_name,omitempty"`
	RoomCount    int                  `json:"room_count"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	Notes        string               `json:"notes,omitempty"`
	TotalPrice   int64                `json:"total_price"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func BookingToResponse(booking *entity.Booking, renterName, roomTypeName string) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		ReferenceID:  booking.ReferenceID,
		UserID:       booking.UserID.String(),
		RoomID:       booking.RoomID.String(),
		RenterName:   renterName,
		RoomTypeName: roomTypeName,
		RoomCount:    booking.RoomCount,
		CheckInDate:  booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate: booking.CheckOutDate.Format("2006-01-02"),
		Notes:        booking.Notes,
		TotalPrice:   booking.TotalPrice,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}
