package entity

type TicketName string

const (
	TicketReduced  TicketName = "ulgowy"
	TicketStandard TicketName = "normalny"
)

// Ticket is a pricing category. At most one ticket may exist per name.
type Ticket struct {
	Base
	Name  TicketName `db:"name"`
	Price float64    `db:"price"`
}
