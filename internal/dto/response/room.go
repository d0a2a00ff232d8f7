package response

import (
	"screenix/internal/data/entity"
)

type RoomResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NumberOfSeats int    `json:"numberOfSeats"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		Name:          room.Name,
		NumberOfSeats: room.NumberOfSeats,
	}
}
