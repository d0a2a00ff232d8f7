package usecase

import (
	"context"
	"errors"
	"time"

	"screenix/internal/data/entity"
	"screenix/internal/data/repository"
	"screenix/internal/dto/request"
	"screenix/internal/dto/response"
	"screenix/pkg/apperror"
	"screenix/pkg/lock"
	"screenix/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	roomLockTTL        = 5 * time.Second
	roomLockRetries    = 5
	roomLockRetryDelay = 100 * time.Millisecond
)

type ScreeningService interface {
	GetScreenings(ctx context.Context, date *string, movieID *string) (*response.ListResponse[response.ScreeningResponse], error)
	GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error)
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID string) error
}

type screeningService struct {
	repo  *repository.Repository
	locks lock.Manager
	log   *zap.Logger
}

func NewScreeningService(repo *repository.Repository, locks lock.Manager, log *zap.Logger) ScreeningService {
	return &screeningService{
		repo:  repo,
		locks: locks,
		log:   log.With(zap.String("service", "screening")),
	}
}

func (s *screeningService) GetScreenings(ctx context.Context, date *string, movieID *string) (*response.ListResponse[response.ScreeningResponse], error) {
	var filter repository.ScreeningFilter

	if date != nil && *date != "" {
		parsed, err := time.Parse("02-01-2006", *date)
		if err != nil {
			return nil, apperror.Invalid("invalid date %q, expected DD-MM-YYYY", *date)
		}
		filter.Day = &parsed
	}
	if movieID != nil && *movieID != "" {
		id, err := uuid.Parse(*movieID)
		if err != nil {
			return nil, apperror.Invalid("invalid movie ID format %s", *movieID)
		}
		filter.MovieID = &id
	}

	screenings, err := s.repo.Screening.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get screenings", zap.Error(err))
		return nil, apperror.Internal(err, "get screenings")
	}

	movies := make(map[uuid.UUID]*entity.Movie)
	rooms := make(map[uuid.UUID]*entity.Room)
	screeningResponses := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		movie, room, err := s.resolveReferences(ctx, screening, movies, rooms)
		if err != nil {
			return nil, err
		}
		screeningResponses[i] = response.ScreeningToResponse(screening, movie, room)
	}

	return response.NewListResponse(screeningResponses), nil
}

func (s *screeningService) GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error) {
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

	movie, room, err := s.resolveReferences(ctx, screening, nil, nil)
	if err != nil {
		return nil, err
	}

	screeningResponse := response.ScreeningToResponse(screening, movie, room)
	return &screeningResponse, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create screening validation failed", zap.Any("errors", errs))
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, apperror.Invalid("invalid movie ID format %s", req.MovieID)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperror.Invalid("invalid room ID format %s", req.RoomID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, apperror.Internal(err, "get movie %s", req.MovieID)
	}
	if movie == nil {
		return nil, apperror.Conflict("no movie with ID: %s", req.MovieID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, apperror.Internal(err, "get room %s", req.RoomID)
	}
	if room == nil {
		return nil, apperror.Conflict("no room with ID: %s", req.RoomID)
	}

	now := time.Now()
	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Date:                   req.Date,
		AdvertisementsDuration: *req.AdvertisementsDuration,
		MovieID:                movieID,
		RoomID:                 roomID,
		Reservations:           []entity.Reservation{},
	}

	// The availability check and the insert must be atomic per room, or two
	// concurrent requests could both pass the check.
	handle, err := s.locks.AcquireWithRetry(ctx, "room:"+roomID.String(), roomLockTTL, roomLockRetries, roomLockRetryDelay)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, apperror.Conflict("room %s is busy, try again", room.Name)
		}
		return nil, apperror.Internal(err, "lock room %s", req.RoomID)
	}
	defer s.release(ctx, handle, roomID)

	if err := s.checkRoomAvailability(ctx, screening, movie.Duration, nil); err != nil {
		return nil, err
	}

	if err := s.repo.Screening.Create(ctx, screening); err != nil {
		return nil, apperror.Internal(err, "create screening")
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("room_id", roomID.String()),
		zap.Time("date", screening.Date),
	)

	screeningResponse := response.ScreeningToResponse(screening, movie, room)
	return &screeningResponse, nil
}

func (s *screeningService) UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

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

	if req.MovieID != nil {
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, apperror.Invalid("invalid movie ID format %s", *req.MovieID)
		}
		screening.MovieID = movieID
	}
	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, apperror.Invalid("invalid room ID format %s", *req.RoomID)
		}
		screening.RoomID = roomID
	}
	if req.Date != nil {
		screening.Date = *req.Date
	}
	if req.AdvertisementsDuration != nil {
		screening.AdvertisementsDuration = *req.AdvertisementsDuration
	}
	screening.UpdatedAt = time.Now()

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		return nil, apperror.Internal(err, "get movie %s", screening.MovieID.String())
	}
	if movie == nil {
		return nil, apperror.Conflict("no movie with ID: %s", screening.MovieID.String())
	}

	room, err := s.repo.Room.FindByID(ctx, screening.RoomID)
	if err != nil {
		return nil, apperror.Internal(err, "get room %s", screening.RoomID.String())
	}
	if room == nil {
		return nil, apperror.Conflict("no room with ID: %s", screening.RoomID.String())
	}

	handle, err := s.locks.AcquireWithRetry(ctx, "room:"+screening.RoomID.String(), roomLockTTL, roomLockRetries, roomLockRetryDelay)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, apperror.Conflict("room %s is busy, try again", room.Name)
		}
		return nil, apperror.Internal(err, "lock room %s", screening.RoomID.String())
	}
	defer s.release(ctx, handle, screening.RoomID)

	// Rescheduling rechecks availability against everyone but itself.
	if err := s.checkRoomAvailability(ctx, screening, movie.Duration, &id); err != nil {
		return nil, err
	}

	if err := s.repo.Screening.Update(ctx, screening); err != nil {
		return nil, apperror.Internal(err, "update screening %s", screeningID)
	}

	s.log.Info("Screening updated", zap.String("screening_id", screeningID))

	screeningResponse := response.ScreeningToResponse(screening, movie, room)
	return &screeningResponse, nil
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID string) error {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return apperror.Invalid("invalid screening ID format %s", screeningID)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal(err, "get screening %s", screeningID)
	}
	if screening == nil {
		return apperror.NotFound("no screening with ID: %s", screeningID)
	}

	if err := s.repo.Screening.Delete(ctx, id); err != nil {
		return apperror.Internal(err, "delete screening %s", screeningID)
	}

	s.log.Info("Screening deleted", zap.String("screening_id", screeningID))
	return nil
}

// checkRoomAvailability rejects the candidate screening when its interval
// intersects any other screening in the same room. Intervals are half-open,
// so back-to-back screenings are allowed.
func (s *screeningService) checkRoomAvailability(ctx context.Context, candidate *entity.Screening, movieDuration int, excludeID *uuid.UUID) error {
	existing, err := s.repo.Screening.FindByRoomID(ctx, candidate.RoomID, excludeID)
	if err != nil {
		return apperror.Internal(err, "get screenings for room %s", candidate.RoomID.String())
	}

	start := candidate.Date
	end := candidate.EndTime(movieDuration)

	durations := make(map[uuid.UUID]int)
	for _, screening := range existing {
		duration, ok := durations[screening.MovieID]
		if !ok {
			movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
			if err != nil {
				return apperror.Internal(err, "get movie %s", screening.MovieID.String())
			}
			if movie == nil {
				// Dangling reference; the slot is unverifiable, treat as free.
				s.log.Warn("Screening references missing movie",
					zap.String("screening_id", screening.ID.String()),
					zap.String("movie_id", screening.MovieID.String()),
				)
				continue
			}
			duration = movie.Duration
			durations[screening.MovieID] = duration
		}

		if entity.Overlaps(start, end, screening.Date, screening.EndTime(duration)) {
			return apperror.Conflict("room is not available at the specified time")
		}
	}

	return nil
}

func (s *screeningService) resolveReferences(ctx context.Context, screening *entity.Screening, movies map[uuid.UUID]*entity.Movie, rooms map[uuid.UUID]*entity.Room) (*entity.Movie, *entity.Room, error) {
	movie, ok := movies[screening.MovieID]
	if !ok {
		var err error
		movie, err = s.repo.Movie.FindByID(ctx, screening.MovieID)
		if err != nil {
			return nil, nil, apperror.Internal(err, "get movie %s", screening.MovieID.String())
		}
		if movie == nil {
			return nil, nil, apperror.Internal(nil, "screening %s references missing movie %s",
				screening.ID.String(), screening.MovieID.String())
		}
		if movies != nil {
			movies[screening.MovieID] = movie
		}
	}

	room, ok := rooms[screening.RoomID]
	if !ok {
		var err error
		room, err = s.repo.Room.FindByID(ctx, screening.RoomID)
		if err != nil {
			return nil, nil, apperror.Internal(err, "get room %s", screening.RoomID.String())
		}
		if room == nil {
			return nil, nil, apperror.Internal(nil, "screening %s references missing room %s",
				screening.ID.String(), screening.RoomID.String())
		}
		if rooms != nil {
			rooms[screening.RoomID] = room
		}
	}

	return movie, room, nil
}

func (s *screeningService) release(ctx context.Context, handle lock.Handle, roomID uuid.UUID) {
	if err := handle.Release(ctx); err != nil {
		s.log.Warn("Failed to release room lock",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
	}
}
