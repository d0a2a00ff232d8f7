package entity

type Room struct {
	Base
	Name          string `db:"name"`
	NumberOfSeats int    `db:"number_of_seats"`
}
