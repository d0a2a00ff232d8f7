package usecase

import (
	"context"
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

type screeningFixture struct {
	movies     *MockMovieRepository
	rooms      *MockRoomRepository
	screenings *MockScreeningRepository
	locks      *MockLockManager
	service    ScreeningService
}

func newScreeningFixture() *screeningFixture {
	movies := new(MockMovieRepository)
	rooms := new(MockRoomRepository)
	screenings := new(MockScreeningRepository)
	locks := new(MockLockManager)

	repo := &repository.Repository{
		Movie:     movies,
		Room:      rooms,
		Screening: screenings,
	}

	return &screeningFixture{
		movies:     movies,
		rooms:      rooms,
		screenings: screenings,
		locks:      locks,
		service:    NewScreeningService(repo, locks, zap.NewNop()),
	}
}

func (f *screeningFixture) expectLock() {
	handle := new(MockLockHandle)
	handle.On("Release", mock.Anything).Return(nil)
	f.locks.On("AcquireWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(handle, nil)
}

func intPtr(v int) *int { return &v }

func TestCreateScreeningRejectsOverlap(t *testing.T) {
	movieID := uuid.New()
	roomID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}, Title: "Diuna", Duration: 100}
	room := &entity.Room{Base: entity.Base{ID: roomID}, Name: "Sala 1", NumberOfSeats: 50}

	// Existing screening 18:00 + 100 min film + 10 min ads ends at 19:50.
	existingStart := time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC)
	existing := &entity.Screening{
		Base:                   entity.Base{ID: uuid.New()},
		Date:                   existingStart,
		AdvertisementsDuration: 10,
		MovieID:                movieID,
		RoomID:                 roomID,
	}

	tests := []struct {
		name     string
		start    time.Time
		wantKind apperror.Kind
		created  bool
	}{
		{"starts when previous ends", existingStart.Add(110 * time.Minute), 0, true},
		{"starts one minute before previous ends", existingStart.Add(109 * time.Minute), apperror.KindConflict, false},
		{"starts during previous", existingStart.Add(30 * time.Minute), apperror.KindConflict, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScreeningFixture()
			f.movies.On("FindByID", mock.Anything, movieID).Return(movie, nil)
			f.rooms.On("FindByID", mock.Anything, roomID).Return(room, nil)
			f.screenings.On("FindByRoomID", mock.Anything, roomID, (*uuid.UUID)(nil)).
				Return([]*entity.Screening{existing}, nil)
			f.expectLock()
			if tt.created {
				f.screenings.On("Create", mock.Anything, mock.Anything).Return(nil)
			}

			req := &request.ScreeningRequest{
				MovieID:                movieID.String(),
				RoomID:                 roomID.String(),
				Date:                   tt.start,
				AdvertisementsDuration: intPtr(10),
			}
			result, err := f.service.CreateScreening(context.Background(), req)

			if tt.created {
				require.NoError(t, err)
				assert.Equal(t, movie.Title, result.Movie.Title)
				f.screenings.AssertCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				f.screenings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCreateScreeningMissingReferencesConflict(t *testing.T) {
	movieID := uuid.New()
	roomID := uuid.New()
	req := &request.ScreeningRequest{
		MovieID:                movieID.String(),
		RoomID:                 roomID.String(),
		Date:                   time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
		AdvertisementsDuration: intPtr(5),
	}

	t.Run("missing movie", func(t *testing.T) {
		f := newScreeningFixture()
		f.movies.On("FindByID", mock.Anything, movieID).Return(nil, nil)

		_, err := f.service.CreateScreening(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})

	t.Run("missing room", func(t *testing.T) {
		f := newScreeningFixture()
		f.movies.On("FindByID", mock.Anything, movieID).
			Return(&entity.Movie{Base: entity.Base{ID: movieID}, Duration: 90}, nil)
		f.rooms.On("FindByID", mock.Anything, roomID).Return(nil, nil)

		_, err := f.service.CreateScreening(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})
}

func TestUpdateScreeningExcludesItselfFromOverlapCheck(t *testing.T) {
	movieID := uuid.New()
	roomID := uuid.New()
	screeningID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}, Title: "Diuna", Duration: 100}
	room := &entity.Room{Base: entity.Base{ID: roomID}, Name: "Sala 1", NumberOfSeats: 50}
	screening := &entity.Screening{
		Base:                   entity.Base{ID: screeningID},
		Date:                   time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
		AdvertisementsDuration: 10,
		MovieID:                movieID,
		RoomID:                 roomID,
	}

	f := newScreeningFixture()
	f.screenings.On("FindByID", mock.Anything, screeningID).Return(screening, nil)
	f.movies.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	f.rooms.On("FindByID", mock.Anything, roomID).Return(room, nil)
	f.screenings.On("FindByRoomID", mock.Anything, roomID, &screeningID).
		Return([]*entity.Screening{}, nil)
	f.screenings.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.expectLock()

	newDate := time.Date(2026, 1, 15, 20, 0, 0, 0, time.UTC)
	result, err := f.service.UpdateScreening(context.Background(), screeningID.String(), &request.ScreeningUpdateRequest{
		Date: &newDate,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-01-15 20:00:00", result.Date)
}

func TestGetScreeningsRejectsBadDateFilter(t *testing.T) {
	f := newScreeningFixture()

	date := "2026-01-15"
	_, err := f.service.GetScreenings(context.Background(), &date, nil)

	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
}

func TestDeleteScreeningNotFound(t *testing.T) {
	f := newScreeningFixture()
	id := uuid.New()
	f.screenings.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := f.service.DeleteScreening(context.Background(), id.String())

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
