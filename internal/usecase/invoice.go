package usecase

import (
	"fmt"
	"math"
	"sort"

	"screenix/internal/data/entity"
	"screenix/pkg/ticketpdf"
	"screenix/pkg/utils"
)

var seatTypeDescriptions = map[entity.SeatType]string{
	entity.SeatTypeReduced:  "Dla osób uprawnionych do ulgi",
	entity.SeatTypeStandard: "Bilet pełnopłatny",
}

// buildInvoice assembles the invoice for one reservation: seats grouped by
// type into priced lines, with unit prices converted to grosze.
func buildInvoice(reservation *entity.Reservation, screening *entity.Screening, movie *entity.Movie, room *entity.Room, tickets []*entity.Ticket) (*ticketpdf.Invoice, error) {
	prices := make(map[entity.TicketName]int, len(tickets))
	for _, ticket := range tickets {
		prices[ticket.Name] = int(math.Round(ticket.Price * 100))
	}

	quantities := make(map[entity.SeatType]int)
	var order []entity.SeatType
	for _, seat := range reservation.Seats {
		if _, ok := quantities[seat.TypeOfSeat]; !ok {
			order = append(order, seat.TypeOfSeat)
		}
		quantities[seat.TypeOfSeat]++
	}

	items := make([]ticketpdf.Item, 0, len(order))
	for _, seatType := range order {
		amount, ok := prices[entity.TicketName(seatType)]
		if !ok {
			return nil, fmt.Errorf("no price configured for %q tickets", seatType)
		}
		items = append(items, ticketpdf.Item{
			Name:        fmt.Sprintf("Bilet %s", seatType),
			Description: seatTypeDescriptions[seatType],
			Quantity:    quantities[seatType],
			Amount:      amount,
		})
	}

	seats := make([]int, 0, len(reservation.Seats))
	seen := make(map[int]bool, len(reservation.Seats))
	for _, seat := range reservation.Seats {
		if !seen[seat.SeatNumber] {
			seen[seat.SeatNumber] = true
			seats = append(seats, seat.SeatNumber)
		}
	}
	sort.Ints(seats)

	return &ticketpdf.Invoice{
		Number: utils.GenerateInvoiceNumber(),
		Client: ticketpdf.Client{
			Name:  reservation.Client.LastName + " " + reservation.Client.FirstName,
			Email: reservation.Client.Email,
		},
		Items: items,
		Screening: ticketpdf.ScreeningInfo{
			Movie:                  movie.Title,
			Date:                   screening.Date,
			Duration:               movie.Duration + screening.AdvertisementsDuration,
			AdvertisementsDuration: screening.AdvertisementsDuration,
			Room:                   room.Name,
		},
		Seats: seats,
	}, nil
}
