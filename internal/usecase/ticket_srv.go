package usecase

import (
	"context"
	"time"

	"screenix/internal/data/entity"
	"screenix/internal/data/repository"
	"screenix/internal/dto/request"
	"screenix/internal/dto/response"
	"screenix/pkg/apperror"
	"screenix/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	GetTickets(ctx context.Context, nameFilter *string) (*response.ListResponse[response.TicketResponse], error)
	CreateTicket(ctx context.Context, req *request.TicketRequest) (*response.TicketResponse, error)
	UpdateTicket(ctx context.Context, ticketID string, req *request.TicketUpdateRequest) (*response.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID string) error
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTickets(ctx context.Context, nameFilter *string) (*response.ListResponse[response.TicketResponse], error) {
	var filter repository.TicketFilter
	if nameFilter != nil && *nameFilter != "" {
		name := entity.TicketName(*nameFilter)
		filter.Name = &name
	}

	tickets, err := s.repo.Ticket.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get tickets", zap.Error(err))
		return nil, apperror.Internal(err, "get tickets")
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = response.TicketToResponse(ticket)
	}

	return response.NewListResponse(ticketResponses), nil
}

func (s *ticketService) CreateTicket(ctx context.Context, req *request.TicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	name := entity.TicketName(req.Name)

	// At most one ticket may exist per name, enforced before persisting
	existing, err := s.repo.Ticket.FindByName(ctx, name)
	if err != nil {
		return nil, apperror.Internal(err, "check ticket name %q", req.Name)
	}
	if existing != nil {
		return nil, apperror.Conflict("there can be only one %q ticket", req.Name)
	}

	now := time.Now()
	ticket := &entity.Ticket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  name,
		Price: req.Price,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		return nil, apperror.Internal(err, "create ticket %q", req.Name)
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("name", string(ticket.Name)),
		zap.Float64("price", ticket.Price),
	)

	ticketResponse := response.TicketToResponse(ticket)
	return &ticketResponse, nil
}

func (s *ticketService) UpdateTicket(ctx context.Context, ticketID string, req *request.TicketUpdateRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, apperror.Invalid("invalid ticket ID format %s", ticketID)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get ticket %s", ticketID)
	}
	if ticket == nil {
		return nil, apperror.NotFound("no ticket with ID: %s", ticketID)
	}

	if req.Name != nil {
		name := entity.TicketName(*req.Name)
		if name != ticket.Name {
			existing, err := s.repo.Ticket.FindByName(ctx, name)
			if err != nil {
				return nil, apperror.Internal(err, "check ticket name %q", *req.Name)
			}
			if existing != nil && existing.ID != ticket.ID {
				return nil, apperror.Conflict("there can be only one %q ticket", *req.Name)
			}
			ticket.Name = name
		}
	}
	if req.Price != nil {
		ticket.Price = *req.Price
	}
	ticket.UpdatedAt = time.Now()

	if err := s.repo.Ticket.Update(ctx, ticket); err != nil {
		return nil, apperror.Internal(err, "update ticket %s", ticketID)
	}

	s.log.Info("Ticket updated", zap.String("ticket_id", ticketID))

	ticketResponse := response.TicketToResponse(ticket)
	return &ticketResponse, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string) error {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return apperror.Invalid("invalid ticket ID format %s", ticketID)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal(err, "get ticket %s", ticketID)
	}
	if ticket == nil {
		return apperror.NotFound("no ticket with ID: %s", ticketID)
	}

	if err := s.repo.Ticket.Delete(ctx, id); err != nil {
		return apperror.Internal(err, "delete ticket %s", ticketID)
	}

	s.log.Info("Ticket deleted", zap.String("ticket_id", ticketID))
	return nil
}
