package response

import (
	"screenix/internal/data/entity"
)

type SeatResponse struct {
	SeatNumber int    `json:"seatNumber"`
	TypeOfSeat string `json:"typeOfSeat"`
}

type ClientResponse struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

type ReservationResponse struct {
	ID     string         `json:"id"`
	Seats  []SeatResponse `json:"seats"`
	Client ClientResponse `json:"client"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	seats := make([]SeatResponse, len(reservation.Seats))
	for i, seat := range reservation.Seats {
		seats[i] = SeatResponse{
			SeatNumber: seat.SeatNumber,
			TypeOfSeat: string(seat.TypeOfSeat),
		}
	}

	return ReservationResponse{
		ID:    reservation.ID.String(),
		Seats: seats,
		Client: ClientResponse{
			LastName:  reservation.Client.LastName,
			FirstName: reservation.Client.FirstName,
			Email:     reservation.Client.Email,
		},
	}
}
