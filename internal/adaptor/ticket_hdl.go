package adaptor

import (
	"encoding/json"
	"net/http"

	"screenix/internal/dto/request"
	"screenix/internal/usecase"
	"screenix/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTickets handles GET /api/v1/tickets?name=ulgowy
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	var name *string
	if value := r.URL.Query().Get("name"); value != "" {
		name = &value
	}

	tickets, err := h.service.GetTickets(r.Context(), name)
	if err != nil {
		respondError(w, h.log, err, "get tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved successfully", tickets)
}

// CreateTicket handles POST /api/v1/tickets
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket created successfully", ticket)
}

// UpdateTicket handles PATCH /api/v1/tickets/{id}
func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	var req request.TicketUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.UpdateTicket(r.Context(), ticketID, &req)
	if err != nil {
		respondError(w, h.log, err, "update ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket updated successfully", ticket)
}

// DeleteTicket handles DELETE /api/v1/tickets/{id}
func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	if err := h.service.DeleteTicket(r.Context(), ticketID); err != nil {
		respondError(w, h.log, err, "delete ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket deleted successfully", nil)
}
