package request

type RoomRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	NumberOfSeats int    `json:"numberOfSeats" validate:"required,min=1,max=200"`
}

type RoomUpdateRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	NumberOfSeats *int    `json:"numberOfSeats,omitempty" validate:"omitempty,min=1,max=200"`
}
