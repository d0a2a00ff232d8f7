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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// GetReservations handles GET /api/v1/screenings/{id}/reservations
func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")

	reservations, err := h.service.GetReservations(r.Context(), screeningID)
	if err != nil {
		respondError(w, h.log, err, "get reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// GetReservationByID handles GET /api/v1/screenings/{id}/reservations/{reservationId}
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	reservationID := chi.URLParam(r, "reservationId")

	reservation, err := h.service.GetReservationByID(r.Context(), screeningID, reservationID)
	if err != nil {
		respondError(w, h.log, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "Reservation retrieved successfully", reservation)
}

// CreateReservation handles POST /api/v1/screenings/{id}/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")

	var req request.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), screeningID, &req)
	if err != nil {
		respondError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", reservation)
}

// UpdateReservation handles PATCH /api/v1/screenings/{id}/reservations/{reservationId}
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	reservationID := chi.URLParam(r, "reservationId")

	var req request.ReservationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), screeningID, reservationID, &req)
	if err != nil {
		respondError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation updated successfully", reservation)
}

// DeleteReservation handles DELETE /api/v1/screenings/{id}/reservations/{reservationId}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	reservationID := chi.URLParam(r, "reservationId")

	if err := h.service.DeleteReservation(r.Context(), screeningID, reservationID); err != nil {
		respondError(w, h.log, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation deleted successfully", nil)
}
