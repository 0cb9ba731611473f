package entity

type BedType string

const (
	BedTypeSingle BedType = "single"
	BedTypeDouble BedType = "double"
	BedTypeQueen  BedType = "queen"
	BedTypeKing   BedType = "king"
)

// Room is a bookable room category. PricePerNight is an integer currency
// amount (rupiah), the multiplier for every stay quote.
type Room struct {
	Base
	TypeName      string  `db:"type_name"`
	Description   *string `db:"description"`
	PricePerNight int64   `db:"price_per_night"`
	BedType       BedType `db:"bed_type"`
	HasAC         bool    `db:"has_ac"`
	HasFan        bool    `db:"has_fan"`
	TotalRooms    int     `db:"total_rooms"`
	ImageURL      *string `db:"image_url"`
}

// Available reports whether the room can accept new bookings. A room with
// zero units must never be bookable.
func (r *Room) Available() bool {
	return r.TotalRooms > 0
}
