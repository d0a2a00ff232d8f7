package repository

import (
	"context"
	"fmt"

	"screenix/internal/data/entity"
	"screenix/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TicketFilter narrows the ticket listing; nil fields mean "any".
type TicketFilter struct {
	Name *entity.TicketName
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindAll(ctx context.Context, filter TicketFilter) ([]*entity.Ticket, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByName(ctx context.Context, name entity.TicketName) (*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Name,
		ticket.Price,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("name", string(ticket.Name)),
		)
		return fmt.Errorf("create ticket %q: %w", ticket.Name, err)
	}

	return nil
}

func (r *ticketRepository) FindAll(ctx context.Context, filter TicketFilter) ([]*entity.Ticket, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM tickets`

	var args []any
	if filter.Name != nil {
		query += ` WHERE name = $1`
		args = append(args, *filter.Name)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find tickets", zap.Error(err))
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Name,
			&ticket.Price,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM tickets WHERE id = $1`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Name,
		&ticket.Price,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindByName(ctx context.Context, name entity.TicketName) (*entity.Ticket, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM tickets WHERE name = $1`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, name).Scan(
		&ticket.ID,
		&ticket.Name,
		&ticket.Price,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by name",
			zap.Error(err),
			zap.String("name", string(name)),
		)
		return nil, fmt.Errorf("find ticket by name %q: %w", name, err)
	}

	return &ticket, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET name = $2, price = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Name,
		ticket.Price,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID.String()),
		)
		return fmt.Errorf("update ticket %s: %w", ticket.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", ticket.ID.String())
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	return nil
}
