package response

import (
	"time"

	"stayease/internal/data/entity"
)

type RoomResponse struct {
	ID            string         `json:"id"`
	TypeName      string         `json:"type_name"`
	Description   *string        `json:"description,omitempty"`
	PricePerNight int64          `json:"price_per_night"`
	BedType       entity.BedType `json:"bed_type"`
	HasAC         bool           `json:"has_ac"`
	HasFan        bool           `json:"has_fan"`
	TotalRooms    int            `json:"total_rooms"`
	Available     bool           `json:"available"`
	ImageURL      *string        `json:"image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		TypeName:      room.TypeName,
		Description:   room.Description,
		PricePerNight: room.PricePerNight,
		BedType:       room.BedType,
		HasAC:         room.HasAC,
		HasFan:        room.HasFan,
		TotalRooms:    room.TotalRooms,
		Available:     room.Available(),
		ImageURL:      room.ImageURL,
		CreatedAt:     room.CreatedAt,
	}
}
