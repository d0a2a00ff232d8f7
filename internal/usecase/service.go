package usecase

import (
	"screenix/internal/data/repository"
	"screenix/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie       MovieService
	Room        RoomService
	Ticket      TicketService
	Screening   ScreeningService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, clients *Clients, config *utils.Config, log *zap.Logger) *Service {
	notifier := NewNotificationService(clients.Renderer, clients.Mailer, log)

	return &Service{
		Movie:       NewMovieService(repo, clients.Tags, clients.Assets, log),
		Room:        NewRoomService(repo, log),
		Ticket:      NewTicketService(repo, log),
		Screening:   NewScreeningService(repo, clients.Locks, log),
		Reservation: NewReservationService(repo, notifier, log),
	}
}
