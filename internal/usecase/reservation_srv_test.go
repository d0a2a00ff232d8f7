package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"screenix/internal/data/entity"
	"screenix/internal/data/repository"
	"screenix/internal/dto/request"
	"screenix/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reservationFixture struct {
	movies     *MockMovieRepository
	rooms      *MockRoomRepository
	tickets    *MockTicketRepository
	screenings *MockScreeningRepository
	notifier   *MockNotificationService
	service    ReservationService

	movieID     uuid.UUID
	screeningID uuid.UUID
	roomID      uuid.UUID
}

func newReservationFixture() *reservationFixture {
	movies := new(MockMovieRepository)
	rooms := new(MockRoomRepository)
	tickets := new(MockTicketRepository)
	screenings := new(MockScreeningRepository)
	notifier := new(MockNotificationService)

	repo := &repository.Repository{
		Movie:     movies,
		Room:      rooms,
		Ticket:    tickets,
		Screening: screenings,
	}

	return &reservationFixture{
		movies:      movies,
		rooms:       rooms,
		tickets:     tickets,
		screenings:  screenings,
		notifier:    notifier,
		service:     NewReservationService(repo, notifier, zap.NewNop()),
		movieID:     uuid.New(),
		screeningID: uuid.New(),
		roomID:      uuid.New(),
	}
}

// freshScreening returns a new aggregate per call, the way the repository
// hands out a fresh scan on every load.
func (f *reservationFixture) expectScreening(version int64, reservations ...entity.Reservation) {
	f.screenings.On("FindByID", mock.Anything, f.screeningID).Return(func(context.Context, uuid.UUID) *entity.Screening {
		return &entity.Screening{
			Base:                   entity.Base{ID: f.screeningID},
			Date:                   time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
			AdvertisementsDuration: 10,
			MovieID:                f.movieID,
			RoomID:                 f.roomID,
			Reservations:           append([]entity.Reservation{}, reservations...),
			Version:                version,
		}
	}, nil)
	f.rooms.On("FindByID", mock.Anything, f.roomID).
		Return(&entity.Room{Base: entity.Base{ID: f.roomID}, Name: "Sala 1", NumberOfSeats: 10}, nil)
}

func (f *reservationFixture) expectNotificationData() {
	f.movies.On("FindByID", mock.Anything, f.movieID).
		Return(&entity.Movie{Base: entity.Base{ID: f.movieID}, Title: "Diuna", Duration: 100}, nil)
	f.tickets.On("FindAll", mock.Anything, repository.TicketFilter{}).Return([]*entity.Ticket{
		{Name: entity.TicketReduced, Price: 19.50},
		{Name: entity.TicketStandard, Price: 29.99},
	}, nil)
}

func validReservationRequest(seats ...int) *request.ReservationRequest {
	seatRequests := make([]request.SeatRequest, len(seats))
	for i, seat := range seats {
		seatRequests[i] = request.SeatRequest{SeatNumber: seat, TypeOfSeat: "normalny"}
	}
	return &request.ReservationRequest{
		Seats: seatRequests,
		Client: request.ClientRequest{
			LastName:  "Kowalski",
			FirstName: "Jan",
			Email:     "jan.kowalski@example.com",
		},
	}
}

func TestGetReservationsListsEmbedded(t *testing.T) {
	f := newReservationFixture()
	existing := entity.Reservation{
		ID:    uuid.New(),
		Seats: []entity.Seat{{SeatNumber: 5, TypeOfSeat: entity.SeatTypeStandard}},
		Client: entity.Client{
			LastName:  "Kowalski",
			FirstName: "Jan",
			Email:     "jan.kowalski@example.com",
		},
	}
	f.expectScreening(1, existing)

	result, err := f.service.GetReservations(context.Background(), f.screeningID.String())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, existing.ID.String(), result.Items[0].ID)
	assert.Equal(t, "jan.kowalski@example.com", result.Items[0].Client.Email)
}

func TestGetReservationsScreeningNotFound(t *testing.T) {
	f := newReservationFixture()
	f.screenings.On("FindByID", mock.Anything, f.screeningID).Return(nil, nil)

	_, err := f.service.GetReservations(context.Background(), f.screeningID.String())

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetReservationByIDReturnsEmbedded(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	existing := entity.Reservation{
		ID:    reservationID,
		Seats: []entity.Seat{{SeatNumber: 7, TypeOfSeat: entity.SeatTypeReduced}},
		Client: entity.Client{
			LastName:  "Nowak",
			FirstName: "Anna",
			Email:     "anna.nowak@example.com",
		},
	}
	f.expectScreening(1, existing)

	result, err := f.service.GetReservationByID(context.Background(), f.screeningID.String(), reservationID.String())

	require.NoError(t, err)
	assert.Equal(t, reservationID.String(), result.ID)
	assert.Equal(t, 7, result.Seats[0].SeatNumber)
}

func TestGetReservationByIDUnknownID(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(1)

	_, err := f.service.GetReservationByID(context.Background(), f.screeningID.String(), uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCreateReservationSucceedsAndNotifies(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(3)
	f.expectNotificationData()
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, mock.Anything, int64(3)).
		Return(true, nil)
	f.notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(4, 5))

	require.NoError(t, err)
	assert.Len(t, result.Seats, 2)
	assert.Equal(t, "jan.kowalski@example.com", result.Client.Email)
	f.notifier.AssertCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestCreateReservationSeatOutOfRange(t *testing.T) {
	for _, seat := range []int{-1, 11} {
		f := newReservationFixture()
		f.expectScreening(0)

		_, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(seat))

		require.Error(t, err)
		assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
		f.screenings.AssertNotCalled(t, "SaveReservations", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestCreateReservationSeatZeroFailsValidation(t *testing.T) {
	f := newReservationFixture()

	_, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(0))

	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
}

func TestCreateReservationSeatAlreadyBooked(t *testing.T) {
	f := newReservationFixture()
	existing := entity.Reservation{
		ID:    uuid.New(),
		Seats: []entity.Seat{{SeatNumber: 5, TypeOfSeat: entity.SeatTypeStandard}},
	}
	f.expectScreening(1, existing)

	_, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(5))

	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCreateReservationDuplicateSeatInRequest(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(0)

	_, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(3, 3))

	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCreateReservationRetriesOnVersionRace(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(7)
	f.expectNotificationData()
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, mock.Anything, int64(7)).
		Return(false, nil).Once()
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, mock.Anything, int64(7)).
		Return(true, nil).Once()
	f.notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(2))

	require.NoError(t, err)
	f.screenings.AssertNumberOfCalls(t, "SaveReservations", 2)
}

func TestCreateReservationGivesUpAfterRepeatedRaces(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(7)
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, mock.Anything, int64(7)).
		Return(false, nil)

	_, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(2))

	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	f.screenings.AssertNumberOfCalls(t, "SaveReservations", casAttempts)
	f.notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestCreateReservationNotificationFailureDoesNotFailBooking(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(0)
	f.expectNotificationData()
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, mock.Anything, int64(0)).
		Return(true, nil)
	f.notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	result, err := f.service.CreateReservation(context.Background(), f.screeningID.String(), validReservationRequest(1))

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
}

func TestUpdateReservationReclaimsOwnSeats(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	existing := entity.Reservation{
		ID:    reservationID,
		Seats: []entity.Seat{{SeatNumber: 4, TypeOfSeat: entity.SeatTypeStandard}},
		Client: entity.Client{
			LastName:  "Kowalski",
			FirstName: "Jan",
			Email:     "jan.kowalski@example.com",
		},
	}
	f.expectScreening(2, existing)
	f.movies.On("FindByID", mock.Anything, f.movieID).
		Return(&entity.Movie{Base: entity.Base{ID: f.movieID}, Title: "Diuna", Duration: 100}, nil)
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, mock.Anything, int64(2)).
		Return(true, nil)
	f.notifier.On("SendModification", mock.Anything).Return(nil)

	// Seat 4 stays in the new selection; only this reservation held it.
	result, err := f.service.UpdateReservation(context.Background(), f.screeningID.String(), reservationID.String(), &request.ReservationUpdateRequest{
		Seats: []request.SeatRequest{
			{SeatNumber: 4, TypeOfSeat: "normalny"},
			{SeatNumber: 6, TypeOfSeat: "ulgowy"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, reservationID.String(), result.ID)
	assert.Len(t, result.Seats, 2)
	// Client falls back to the stored one when omitted.
	assert.Equal(t, "jan.kowalski@example.com", result.Client.Email)
	f.notifier.AssertCalled(t, "SendModification", mock.Anything)
}

func TestUpdateReservationUnknownID(t *testing.T) {
	f := newReservationFixture()
	f.expectScreening(0)

	_, err := f.service.UpdateReservation(context.Background(), f.screeningID.String(), uuid.New().String(), &request.ReservationUpdateRequest{
		Seats: []request.SeatRequest{{SeatNumber: 1, TypeOfSeat: "normalny"}},
	})

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDeleteReservationFreesSeatsAndNotifies(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	existing := entity.Reservation{
		ID:    reservationID,
		Seats: []entity.Seat{{SeatNumber: 9, TypeOfSeat: entity.SeatTypeReduced}},
		Client: entity.Client{
			LastName:  "Nowak",
			FirstName: "Anna",
			Email:     "anna.nowak@example.com",
		},
	}
	f.expectScreening(5, existing)
	f.movies.On("FindByID", mock.Anything, f.movieID).
		Return(&entity.Movie{Base: entity.Base{ID: f.movieID}, Title: "Diuna", Duration: 100}, nil)
	f.screenings.On("SaveReservations", mock.Anything, f.screeningID, []entity.Reservation{}, int64(5)).
		Return(true, nil)
	f.notifier.On("SendCancellation", mock.Anything).Return(nil)

	err := f.service.DeleteReservation(context.Background(), f.screeningID.String(), reservationID.String())

	require.NoError(t, err)
	f.notifier.AssertCalled(t, "SendCancellation", mock.Anything)
}

func TestDeleteReservationScreeningNotFound(t *testing.T) {
	f := newReservationFixture()
	f.screenings.On("FindByID", mock.Anything, f.screeningID).Return(nil, nil)

	err := f.service.DeleteReservation(context.Background(), f.screeningID.String(), uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
