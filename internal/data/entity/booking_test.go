package entity_test

import (
	"testing"
	"time"

	"stayease/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from entity.BookingStatus
		to   entity.BookingStatus
		want bool
	}{
		{"pending to approved", entity.BookingStatusPending, entity.BookingStatusApproved, true},
		{"pending to rejected", entity.BookingStatusPending, entity.BookingStatusRejected, true},
		{"approved to checked_in", entity.BookingStatusApproved, entity.BookingStatusCheckedIn, true},
		{"checked_in to checked_out", entity.BookingStatusCheckedIn, entity.BookingStatusCheckedOut, true},

		{"pending to checked_in skips approval", entity.BookingStatusPending, entity.BookingStatusCheckedIn, false},
		{"pending to checked_out", entity.BookingStatusPending, entity.BookingStatusCheckedOut, false},
		{"approved to rejected", entity.BookingStatusApproved, entity.BookingStatusRejected, false},
		{"approved to checked_out skips check-in", entity.BookingStatusApproved, entity.BookingStatusCheckedOut, false},
		{"checked_in to rejected", entity.BookingStatusCheckedIn, entity.BookingStatusRejected, false},
		{"rejected is terminal", entity.BookingStatusRejected, entity.BookingStatusApproved, false},
		{"checked_out is terminal", entity.BookingStatusCheckedOut, entity.BookingStatusCheckedIn, false},
		{"no self transition", entity.BookingStatusPending, entity.BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, entity.BookingStatusPending.IsTerminal())
	assert.False(t, entity.BookingStatusApproved.IsTerminal())
	assert.False(t, entity.BookingStatusCheckedIn.IsTerminal())
	assert.True(t, entity.BookingStatusRejected.IsTerminal())
	assert.True(t, entity.BookingStatusCheckedOut.IsTerminal())
}

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, entity.BookingStatusPending.IsValid())
	assert.True(t, entity.BookingStatusCheckedOut.IsValid())
	assert.False(t, entity.BookingStatus("cancelled").IsValid())
	assert.False(t, entity.BookingStatus("").IsValid())
}

func TestNights(t *testing.T) {
	date := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		assert.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2025-03-10", "2025-03-13", 3},
		{"one night", "2025-03-10", "2025-03-11", 1},
		{"same day", "2025-03-10", "2025-03-10", 0},
		{"reversed range", "2025-03-13", "2025-03-10", -3},
		{"across month boundary", "2025-01-30", "2025-02-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.Nights(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestStayTotal(t *testing.T) {
	tests := []struct {
		name          string
		pricePerNight int64
		nights        int
		roomCount     int
		want          int64
	}{
		{"three nights two rooms", 500000, 3, 2, 3000000},
		{"one night one room", 400000, 1, 1, 400000},
		{"three nights one room", 400000, 3, 1, 1200000},
		{"zero nights prices to zero", 500000, 0, 2, 0},
		{"negative nights prices to zero", 500000, -3, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.StayTotal(tt.pricePerNight, tt.nights, tt.roomCount))
		})
	}
}
