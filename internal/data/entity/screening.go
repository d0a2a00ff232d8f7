package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatTypeReduced  SeatType = "ulgowy"
	SeatTypeStandard SeatType = "normalny"
)

type Seat struct {
	SeatNumber int      `json:"seatNumber"`
	TypeOfSeat SeatType `json:"typeOfSeat"`
}

type Client struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

// Reservation is owned by its Screening and never referenced outside it.
type Reservation struct {
	ID     uuid.UUID `json:"id"`
	Seats  []Seat    `json:"seats"`
	Client Client    `json:"client"`
}

// Screening is the aggregate root for its embedded reservations. All
// reservation mutations go through it; Version backs the conditional
// persistence of the reservations list.
type Screening struct {
	Base
	Date                   time.Time     `db:"date"`
	AdvertisementsDuration int           `db:"advertisements_duration"`
	MovieID                uuid.UUID     `db:"movie_id"`
	RoomID                 uuid.UUID     `db:"room_id"`
	Reservations           []Reservation `db:"reservations"`
	Version                int64         `db:"version"`
}

// EndTime returns the instant the screening's interval ends, given the
// movie runtime in minutes.
func (s *Screening) EndTime(movieDuration int) time.Time {
	return s.Date.Add(time.Duration(movieDuration+s.AdvertisementsDuration) * time.Minute)
}

// Overlaps reports whether two half-open intervals intersect. Adjacency
// (one ending exactly when the other starts) is not an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OccupiedSeats returns the sorted set of seat numbers claimed by any
// reservation, optionally skipping the reservations with the given IDs.
func (s *Screening) OccupiedSeats(excluding ...uuid.UUID) []int {
	skip := make(map[uuid.UUID]bool, len(excluding))
	for _, id := range excluding {
		skip[id] = true
	}

	seen := make(map[int]bool)
	var seats []int
	for _, reservation := range s.Reservations {
		if skip[reservation.ID] {
			continue
		}
		for _, seat := range reservation.Seats {
			if !seen[seat.SeatNumber] {
				seen[seat.SeatNumber] = true
				seats = append(seats, seat.SeatNumber)
			}
		}
	}

	sort.Ints(seats)
	return seats
}

// ReservationByID finds an embedded reservation by identity.
func (s *Screening) ReservationByID(id uuid.UUID) (*Reservation, bool) {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			return &s.Reservations[i], true
		}
	}
	return nil, false
}

// AppendReservation adds a reservation to the end of the list.
func (s *Screening) AppendReservation(reservation Reservation) {
	s.Reservations = append(s.Reservations, reservation)
}

// ReplaceReservation swaps the reservation with the given identity in
// place, preserving its position and ID. Returns false if absent.
func (s *Screening) ReplaceReservation(id uuid.UUID, reservation Reservation) bool {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			reservation.ID = id
			s.Reservations[i] = reservation
			return true
		}
	}
	return false
}

// RemoveReservation deletes the reservation with the given identity.
// Returns false if absent.
func (s *Screening) RemoveReservation(id uuid.UUID) bool {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			s.Reservations = append(s.Reservations[:i], s.Reservations[i+1:]...)
			return true
		}
	}
	return false
}
