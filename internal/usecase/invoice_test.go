package usecase

import (
	"testing"
	"time"

	"screenix/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoiceGroupsSeatsByType(t *testing.T) {
	reservation := &entity.Reservation{
		ID: uuid.New(),
		Seats: []entity.Seat{
			{SeatNumber: 7, TypeOfSeat: entity.SeatTypeStandard},
			{SeatNumber: 2, TypeOfSeat: entity.SeatTypeReduced},
			{SeatNumber: 5, TypeOfSeat: entity.SeatTypeStandard},
		},
		Client: entity.Client{LastName: "Kowalski", FirstName: "Jan", Email: "jan@example.com"},
	}
	screening := &entity.Screening{
		Date:                   time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
		AdvertisementsDuration: 10,
	}
	movie := &entity.Movie{Title: "Diuna", Duration: 100}
	room := &entity.Room{Name: "Sala 1"}
	tickets := []*entity.Ticket{
		{Name: entity.TicketStandard, Price: 29.99},
		{Name: entity.TicketReduced, Price: 19.50},
	}

	invoice, err := buildInvoice(reservation, screening, movie, room, tickets)
	require.NoError(t, err)

	require.Len(t, invoice.Items, 2)
	assert.Equal(t, "Bilet normalny", invoice.Items[0].Name)
	assert.Equal(t, 2, invoice.Items[0].Quantity)
	assert.Equal(t, 2999, invoice.Items[0].Amount)
	assert.Equal(t, "Bilet ulgowy", invoice.Items[1].Name)
	assert.Equal(t, 1, invoice.Items[1].Quantity)
	assert.Equal(t, 1950, invoice.Items[1].Amount)

	assert.Equal(t, 2*2999+1950, invoice.Total())
	assert.Equal(t, []int{2, 5, 7}, invoice.Seats)
	assert.Equal(t, "Kowalski Jan", invoice.Client.Name)
	assert.Equal(t, "Diuna", invoice.Screening.Movie)
	assert.Equal(t, 110, invoice.Screening.Duration)
	assert.Len(t, invoice.Number, 10)
}

func TestBuildInvoiceMissingPrice(t *testing.T) {
	reservation := &entity.Reservation{
		ID:    uuid.New(),
		Seats: []entity.Seat{{SeatNumber: 1, TypeOfSeat: entity.SeatTypeReduced}},
	}
	screening := &entity.Screening{Date: time.Now()}

	_, err := buildInvoice(reservation, screening, &entity.Movie{}, &entity.Room{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no price configured")
}
