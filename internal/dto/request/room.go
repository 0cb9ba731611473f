package request

type CreateRoomRequest struct {
	TypeName      string  `json:"type_name" validate:"required,min=2,max=100"`
	Description   *string `json:"description,omitempty"`
	PricePerNight int64   `json:"price_per_night" validate:"required,min=1"`
	BedType       string  `json:"bed_type" validate:"required,oneof=single double queen king"`
	HasAC         bool    `json:"has_ac"`
	HasFan        bool    `json:"has_fan"`
	TotalRooms    int     `json:"total_rooms" validate:"min=0"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateRoomRequest struct {
	TypeName      string  `json:"type_name" validate:"required,min=2,max=100"`
	Description   *string `json:"description,omitempty"`
	PricePerNight int64   `json:"price_per_night" validate:"required,min=1"`
	BedType       string  `json:"bed_type" validate:"required,oneof=single double queen king"`
	HasAC         bool    `json:"has_ac"`
	HasFan        bool    `json:"has_fan"`
	TotalRooms    int     `json:"total_rooms" validate:"min=0"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
}
