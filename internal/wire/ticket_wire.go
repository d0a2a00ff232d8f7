package wire

import (
	"screenix/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/tickets", func(r chi.Router) {
		r.Get("/", ticketHandler.GetTickets)
		r.Post("/", ticketHandler.CreateTicket)
		r.Patch("/{id}", ticketHandler.UpdateTicket)
		r.Delete("/{id}", ticketHandler.DeleteTicket)
	})
}
