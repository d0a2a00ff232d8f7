package usecase

import (
	"context"
	"sort"

	"screenix/internal/data/entity"
	"screenix/internal/data/repository"
	"screenix/internal/dto/request"
	"screenix/internal/dto/response"
	"screenix/pkg/apperror"
	"screenix/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// casAttempts bounds the reload-validate-save loop when concurrent bookings
// keep bumping the screening version.
const casAttempts = 3

type ReservationService interface {
	GetReservations(ctx context.Context, screeningID string) (*response.ListResponse[response.ReservationResponse], error)
	GetReservationByID(ctx context.Context, screeningID, reservationID string) (*response.ReservationResponse, error)
	CreateReservation(ctx context.Context, screeningID string, req *request.ReservationRequest) (*response.ReservationResponse, error)
	UpdateReservation(ctx context.Context, screeningID, reservationID string, req *request.ReservationUpdateRequest) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, screeningID, reservationID string) error
}

type reservationService struct {
	repo     *repository.Repository
	notifier NotificationService
	log      *zap.Logger
}

func NewReservationService(repo *repository.Repository, notifier NotificationService, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) GetReservations(ctx context.Context, screeningID string) (*response.ListResponse[response.ReservationResponse], error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, apperror.Invalid("invalid screening ID format %s", screeningID)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get screening %s", screeningID)
	}
	if screening == nil {
		return nil, apperror.NotFound("no screening with ID: %s", screeningID)
	}

	reservations := make([]response.ReservationResponse, len(screening.Reservations))
	for i := range screening.Reservations {
		reservations[i] = response.ReservationToResponse(&screening.Reservations[i])
	}

	return response.NewListResponse(reservations), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, screeningID, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, apperror.Invalid("invalid screening ID format %s", screeningID)
	}
	resID, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperror.Invalid("invalid reservation ID format %s", reservationID)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get screening %s", screeningID)
	}
	if screening == nil {
		return nil, apperror.NotFound("no screening with ID: %s", screeningID)
	}

	reservation, found := screening.ReservationByID(resID)
	if !found {
		return nil, apperror.NotFound("no reservation with ID: %s", reservationID)
	}

	reservationResponse := response.ReservationToResponse(reservation)
	return &reservationResponse, nil
}

func (s *reservationService) CreateReservation(ctx context.Context, screeningID string, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, apperror.Invalid("invalid screening ID format %s", screeningID)
	}

	reservation := entity.Reservation{
		ID:    uuid.New(),
		Seats: toEntitySeats(req.Seats),
		Client: entity.Client{
			LastName:  req.Client.LastName,
			FirstName: req.Client.FirstName,
			Email:     req.Client.Email,
		},
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		screening, room, err := s.loadScreening(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := validateSeats(reservation.Seats, room.NumberOfSeats, screening.OccupiedSeats()); err != nil {
			return nil, err
		}

		screening.AppendReservation(reservation)

		saved, err := s.repo.Screening.SaveReservations(ctx, id, screening.Reservations, screening.Version)
		if err != nil {
			return nil, apperror.Internal(err, "save reservation for screening %s", screeningID)
		}
		if !saved {
			s.log.Info("Reservation save lost version race, retrying",
				zap.String("screening_id", screeningID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		s.log.Info("Reservation created",
			zap.String("screening_id", screeningID),
			zap.String("reservation_id", reservation.ID.String()),
			zap.Int("seats", len(reservation.Seats)),
		)

		s.notifyConfirmation(ctx, screening, room, &reservation)

		reservationResponse := response.ReservationToResponse(&reservation)
		return &reservationResponse, nil
	}

	return nil, apperror.Conflict("screening %s is being booked heavily, please retry", screeningID)
}

func (s *reservationService) UpdateReservation(ctx context.Context, screeningID, reservationID string, req *request.ReservationUpdateRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, apperror.Invalid("invalid screening ID format %s", screeningID)
	}
	resID, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperror.Invalid("invalid reservation ID format %s", reservationID)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		screening, room, err := s.loadScreening(ctx, id)
		if err != nil {
			return nil, err
		}

		stored, found := screening.ReservationByID(resID)
		if !found {
			return nil, apperror.NotFound("no reservation with ID: %s", reservationID)
		}

		replacement := entity.Reservation{
			ID:     resID,
			Seats:  toEntitySeats(req.Seats),
			Client: stored.Client,
		}
		if req.Client != nil {
			replacement.Client = entity.Client{
				LastName:  req.Client.LastName,
				FirstName: req.Client.FirstName,
				Email:     req.Client.Email,
			}
		}

		// The reservation's own seats are free for its replacement.
		if err := validateSeats(replacement.Seats, room.NumberOfSeats, screening.OccupiedSeats(resID)); err != nil {
			return nil, err
		}

		screening.ReplaceReservation(resID, replacement)

		saved, err := s.repo.Screening.SaveReservations(ctx, id, screening.Reservations, screening.Version)
		if err != nil {
			return nil, apperror.Internal(err, "save reservation for screening %s", screeningID)
		}
		if !saved {
			s.log.Info("Reservation save lost version race, retrying",
				zap.String("screening_id", screeningID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		s.log.Info("Reservation updated",
			zap.String("screening_id", screeningID),
			zap.String("reservation_id", reservationID),
		)

		s.notifyChange(ctx, screening, room, &replacement, false)

		reservationResponse := response.ReservationToResponse(&replacement)
		return &reservationResponse, nil
	}

	return nil, apperror.Conflict("screening %s is being booked heavily, please retry", screeningID)
}

func (s *reservationService) DeleteReservation(ctx context.Context, screeningID, reservationID string) error {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return apperror.Invalid("invalid screening ID format %s", screeningID)
	}
	resID, err := uuid.Parse(reservationID)
	if err != nil {
		return apperror.Invalid("invalid reservation ID format %s", reservationID)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		screening, room, err := s.loadScreening(ctx, id)
		if err != nil {
			return err
		}

		stored, found := screening.ReservationByID(resID)
		if !found {
			return apperror.NotFound("no reservation with ID: %s", reservationID)
		}
		removed := *stored

		screening.RemoveReservation(resID)

		saved, err := s.repo.Screening.SaveReservations(ctx, id, screening.Reservations, screening.Version)
		if err != nil {
			return apperror.Internal(err, "save reservation for screening %s", screeningID)
		}
		if !saved {
			s.log.Info("Reservation save lost version race, retrying",
				zap.String("screening_id", screeningID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		s.log.Info("Reservation deleted",
			zap.String("screening_id", screeningID),
			zap.String("reservation_id", reservationID),
		)

		s.notifyChange(ctx, screening, room, &removed, true)
		return nil
	}

	return apperror.Conflict("screening %s is being booked heavily, please retry", screeningID)
}

func (s *reservationService) loadScreening(ctx context.Context, id uuid.UUID) (*entity.Screening, *entity.Room, error) {
	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, nil, apperror.Internal(err, "get screening %s", id.String())
	}
	if screening == nil {
		return nil, nil, apperror.NotFound("no screening with ID: %s", id.String())
	}

	room, err := s.repo.Room.FindByID(ctx, screening.RoomID)
	if err != nil {
		return nil, nil, apperror.Internal(err, "get room %s", screening.RoomID.String())
	}
	if room == nil {
		return nil, nil, apperror.Internal(nil, "screening %s references missing room %s",
			id.String(), screening.RoomID.String())
	}

	return screening, room, nil
}

// validateSeats checks each requested seat against the room bounds and the
// already-claimed set. Requested seats join the claimed set as they pass, so
// a duplicate within one request also conflicts.
func validateSeats(seats []entity.Seat, capacity int, occupied []int) error {
	taken := make(map[int]bool, len(occupied))
	for _, seat := range occupied {
		taken[seat] = true
	}

	for _, seat := range seats {
		if seat.SeatNumber < 1 || seat.SeatNumber > capacity {
			return apperror.Invalid("seat number %d is not valid. It should be in the range of 1 to %d",
				seat.SeatNumber, capacity)
		}
		if taken[seat.SeatNumber] {
			return apperror.Conflict("seat number %d is already booked", seat.SeatNumber)
		}
		taken[seat.SeatNumber] = true
	}

	return nil
}

func toEntitySeats(seats []request.SeatRequest) []entity.Seat {
	converted := make([]entity.Seat, len(seats))
	for i, seat := range seats {
		converted[i] = entity.Seat{
			SeatNumber: seat.SeatNumber,
			TypeOfSeat: entity.SeatType(seat.TypeOfSeat),
		}
	}
	return converted
}

func seatNumbers(reservation *entity.Reservation) []int {
	seen := make(map[int]bool, len(reservation.Seats))
	var seats []int
	for _, seat := range reservation.Seats {
		if !seen[seat.SeatNumber] {
			seen[seat.SeatNumber] = true
			seats = append(seats, seat.SeatNumber)
		}
	}
	sort.Ints(seats)
	return seats
}

// notifyConfirmation emails the ticket PDF after the booking has landed.
// Failures are logged and swallowed: the reservation is already committed.
func (s *reservationService) notifyConfirmation(ctx context.Context, screening *entity.Screening, room *entity.Room, reservation *entity.Reservation) {
	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil || movie == nil {
		s.log.Error("Failed to load movie for confirmation email",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
		)
		return
	}

	tickets, err := s.repo.Ticket.FindAll(ctx, repository.TicketFilter{})
	if err != nil {
		s.log.Error("Failed to load ticket prices for confirmation email", zap.Error(err))
		return
	}

	invoice, err := buildInvoice(reservation, screening, movie, room, tickets)
	if err != nil {
		s.log.Error("Failed to build invoice",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return
	}

	details := &TicketDetails{
		Client:    reservation.Client,
		Movie:     movie,
		Room:      room,
		Screening: screening,
		Seats:     invoice.Seats,
	}
	if err := s.notifier.SendConfirmation(details, invoice); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}
}

func (s *reservationService) notifyChange(ctx context.Context, screening *entity.Screening, room *entity.Room, reservation *entity.Reservation, cancelled bool) {
	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil || movie == nil {
		s.log.Error("Failed to load movie for reservation email",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
		)
		return
	}

	details := &TicketDetails{
		Client:    reservation.Client,
		Movie:     movie,
		Room:      room,
		Screening: screening,
		Seats:     seatNumbers(reservation),
	}

	if cancelled {
		err = s.notifier.SendCancellation(details)
	} else {
		err = s.notifier.SendModification(details)
	}
	if err != nil {
		s.log.Error("Failed to send reservation email",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}
}
