package wire

import (
	"screenix/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireScreening(r chi.Router, screeningHandler *adaptor.ScreeningHandler, reservationHandler *adaptor.ReservationHandler) {
	r.Route("/screenings", func(r chi.Router) {
		r.Get("/", screeningHandler.GetScreenings)
		r.Post("/", screeningHandler.CreateScreening)
		r.Get("/{id}", screeningHandler.GetScreeningByID)
		r.Patch("/{id}", screeningHandler.UpdateScreening)
		r.Delete("/{id}", screeningHandler.DeleteScreening)

		// Reservations live inside their screening.
		r.Get("/{id}/reservations", reservationHandler.GetReservations)
		r.Get("/{id}/reservations/{reservationId}", reservationHandler.GetReservationByID)
		r.Post("/{id}/reservations", reservationHandler.CreateReservation)
		r.Patch("/{id}/reservations/{reservationId}", reservationHandler.UpdateReservation)
		r.Delete("/{id}/reservations/{reservationId}", reservationHandler.DeleteReservation)
	})
}
