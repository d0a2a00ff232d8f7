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
	"screenix/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context) (*response.ListResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context) (*response.ListResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, apperror.Internal(err, "get rooms")
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return response.NewListResponse(roomResponses), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperror.Invalid("invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get room %s", roomID)
	}
	if room == nil {
		return nil, apperror.NotFound("no room with ID: %s", roomID)
	}

	roomResponse := response.RoomToResponse(room)
	return &roomResponse, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		NumberOfSeats: req.NumberOfSeats,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		if isAppError(err) {
			return nil, err
		}
		return nil, apperror.Internal(err, "create room %q", req.Name)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("number_of_seats", room.NumberOfSeats),
	)

	roomResponse := response.RoomToResponse(room)
	return &roomResponse, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperror.Invalid("invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get room %s", roomID)
	}
	if room == nil {
		return nil, apperror.NotFound("no room with ID: %s", roomID)
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.NumberOfSeats != nil {
		room.NumberOfSeats = *req.NumberOfSeats
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		if isAppError(err) {
			return nil, err
		}
		return nil, apperror.Internal(err, "update room %s", roomID)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	roomResponse := response.RoomToResponse(room)
	return &roomResponse, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return apperror.Invalid("invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal(err, "get room %s", roomID)
	}
	if room == nil {
		return apperror.NotFound("no room with ID: %s", roomID)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		return apperror.Internal(err, "delete room %s", roomID)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func isAppError(err error) bool {
	var appErr *apperror.Error
	return errors.As(err, &appErr)
}
