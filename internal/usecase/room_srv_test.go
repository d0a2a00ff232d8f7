package usecase

import (
	"context"
	"testing"

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

func newRoomService(rooms *MockRoomRepository) RoomService {
	repo := &repository.Repository{Room: rooms}
	return NewRoomService(repo, zap.NewNop())
}

func TestCreateRoom(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := newRoomService(rooms)

	result, err := service.CreateRoom(context.Background(), &request.RoomRequest{Name: "Sala 1", NumberOfSeats: 120})

	require.NoError(t, err)
	assert.Equal(t, "Sala 1", result.Name)
	assert.Equal(t, 120, result.NumberOfSeats)
}

func TestCreateRoomSeatBounds(t *testing.T) {
	service := newRoomService(new(MockRoomRepository))

	for _, seats := range []int{0, 201} {
		_, err := service.CreateRoom(context.Background(), &request.RoomRequest{Name: "Sala X", NumberOfSeats: seats})
		require.Error(t, err)
		assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
	}
}

func TestCreateRoomDuplicateNamePassesConflictThrough(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("Create", mock.Anything, mock.Anything).
		Return(apperror.Conflict(`room with name "Sala 1" already exists`))
	service := newRoomService(rooms)

	_, err := service.CreateRoom(context.Background(), &request.RoomRequest{Name: "Sala 1", NumberOfSeats: 50})

	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestGetRoomByIDNotFound(t *testing.T) {
	rooms := new(MockRoomRepository)
	id := uuid.New()
	rooms.On("FindByID", mock.Anything, id).Return(nil, nil)
	service := newRoomService(rooms)

	_, err := service.GetRoomByID(context.Background(), id.String())

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateRoomMergesOnlyProvidedFields(t *testing.T) {
	rooms := new(MockRoomRepository)
	id := uuid.New()
	rooms.On("FindByID", mock.Anything, id).
		Return(&entity.Room{Base: entity.Base{ID: id}, Name: "Sala 1", NumberOfSeats: 100}, nil)
	rooms.On("Update", mock.Anything, mock.Anything).Return(nil)
	service := newRoomService(rooms)

	seats := 80
	result, err := service.UpdateRoom(context.Background(), id.String(), &request.RoomUpdateRequest{NumberOfSeats: &seats})

	require.NoError(t, err)
	assert.Equal(t, "Sala 1", result.Name)
	assert.Equal(t, 80, result.NumberOfSeats)
}
