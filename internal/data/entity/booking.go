package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusApproved   BookingStatus = "approved"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
)

// transitions is the lifecycle table. Statuses with no outgoing edges
// (rejected, checked_out) are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusApproved, BookingStatusRejected},
	BookingStatusApproved:  {BookingStatusCheckedIn},
	BookingStatusCheckedIn: {BookingStatusCheckedOut},
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected,
		BookingStatusCheckedIn, BookingStatusCheckedOut:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle table allows moving from s
// to next. Every mutation must consult this before touching storage.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Booking is a persisted reservation. It is created in pending status and
// only moves through the lifecycle table; it is never deleted.
type Booking struct {
	BaseNoDelete
	ReferenceID  string        `db:"reference_id"`
	UserID       uuid.UUID     `db:"user_id"`
	RoomID       uuid.UUID     `db:"room_id"`
	RoomCount    int           `db:"room_count"`
	CheckInDate  time.Time     `db:"check_in_date"`
	CheckOutDate time.Time     `db:"check_out_date"`
	Notes        string        `db:"notes"`
	TotalPrice   int64         `db:"total_price"`
	Status       BookingStatus `db:"status"`
}

// Nights returns the number of whole days between check-in and check-out.
// Zero or negative means the range is invalid for booking.
func Nights(checkIn, checkOut time.Time) int {
	in := checkIn.Truncate(24 * time.Hour)
	out := checkOut.Truncate(24 * time.Hour)
	return int(out.Sub(in).Hours() / 24)
}

// StayTotal computes nights * pricePerNight * roomCount. An invalid range
// prices to zero, which callers must treat as unbookable.
func StayTotal(pricePerNight int64, nights, roomCount int) int64 {
	if nights <= 0 {
		return 0
	}
	return pricePerNight * int64(nights) * int64(roomCount)
}
