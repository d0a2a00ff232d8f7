package response

import (
	"screenix/internal/data/entity"
)

type TicketResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:    ticket.ID.String(),
		Name:  string(ticket.Name),
		Price: ticket.Price,
	}
}
