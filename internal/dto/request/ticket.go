package request

type TicketRequest struct {
	Name  string  `json:"name" validate:"required,oneof=ulgowy normalny"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type TicketUpdateRequest struct {
	Name  *string  `json:"name,omitempty" validate:"omitempty,oneof=ulgowy normalny"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}
