package response

import (
	"screenix/internal/data/entity"
)

type ScreeningResponse struct {
	ID                     string                `json:"id"`
	Date                   string                `json:"date"`
	AdvertisementsDuration int                   `json:"advertisementsDuration"`
	Movie                  MovieResponse         `json:"movie"`
	Room                   RoomResponse          `json:"room"`
	Reservations           []ReservationResponse `json:"reservations"`
}

// ScreeningToResponse builds the populated view: the movie and room
// references are resolved by the caller.
func ScreeningToResponse(screening *entity.Screening, movie *entity.Movie, room *entity.Room) ScreeningResponse {
	reservations := make([]ReservationResponse, len(screening.Reservations))
	for i := range screening.Reservations {
		reservations[i] = ReservationToResponse(&screening.Reservations[i])
	}

	return ScreeningResponse{
		ID:                     screening.ID.String(),
		Date:                   screening.Date.Format("2006-01-02 15:04:05"),
		AdvertisementsDuration: screening.AdvertisementsDuration,
		Movie:                  MovieToResponse(movie),
		Room:                   RoomToResponse(room),
		Reservations:           reservations,
	}
}
