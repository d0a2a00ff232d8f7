package repository

import (
	"screenix/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie     MovieRepository
	Room      RoomRepository
	Ticket    TicketRepository
	Screening ScreeningRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:     NewMovieRepository(db, log),
		Room:      NewRoomRepository(db, log),
		Ticket:    NewTicketRepository(db, log),
		Screening: NewScreeningRepository(db, log),
	}
}
