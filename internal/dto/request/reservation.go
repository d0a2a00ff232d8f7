package request

type SeatRequest struct {
	SeatNumber int    `json:"seatNumber" validate:"required,min=1"`
	TypeOfSeat string `json:"typeOfSeat" validate:"required,oneof=ulgowy normalny"`
}

type ClientRequest struct {
	LastName  string `json:"lastName" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type ReservationRequest struct {
	Seats  []SeatRequest `json:"seats" validate:"required,min=1,dive"`
	Client ClientRequest `json:"client" validate:"required"`
}

// ReservationUpdateRequest replaces the seats of one reservation; client
// info falls back to the stored reservation when omitted.
type ReservationUpdateRequest struct {
	Seats  []SeatRequest  `json:"seats" validate:"required,min=1,dive"`
	Client *ClientRequest `json:"client,omitempty"`
}
