package adaptor

import (
	"net/http"

	"screenix/internal/usecase"
	"screenix/pkg/apperror"
	"screenix/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie       *MovieHandler
	Room        *RoomHandler
	Ticket      *TicketHandler
	Screening   *ScreeningHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:       NewMovieHandler(service.Movie, log),
		Room:        NewRoomHandler(service.Room, log),
		Ticket:      NewTicketHandler(service.Ticket, log),
		Screening:   NewScreeningHandler(service.Screening, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// respondError maps a service error onto the response envelope. Internal
// errors never leak their cause to the client.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	switch apperror.KindOf(err) {
	case apperror.KindInvalid:
		utils.ResponseBadRequest(w, apperror.MessageOf(err), nil)
	case apperror.KindNotFound:
		utils.ResponseNotFound(w, apperror.MessageOf(err))
	case apperror.KindConflict:
		utils.ResponseConflict(w, apperror.MessageOf(err))
	default:
		log.Error("Request failed", zap.Error(err), zap.String("action", action))
		utils.ResponseInternalError(w, "Something went wrong, please try again")
	}
}
