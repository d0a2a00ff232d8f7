package usecase

import (
	"context"
	"io"
	"time"

	"screenix/internal/data/entity"
	"screenix/internal/data/repository"
	"screenix/pkg/lock"
	"screenix/pkg/mailer"
	"screenix/pkg/ticketpdf"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// === Mock implementations ===

// MockMovieRepository implements repository.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomRepository implements repository.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTicketRepository implements repository.TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) FindAll(ctx context.Context, filter repository.TicketFilter) ([]*entity.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByName(ctx context.Context, name entity.TicketName) (*entity.Ticket, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockScreeningRepository implements repository.ScreeningRepository
type MockScreeningRepository struct {
	mock.Mock
}

func (m *MockScreeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepository) FindAll(ctx context.Context, filter repository.ScreeningFilter) ([]*entity.Screening, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Screening), args.Error(1)
}

func (m *MockScreeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) *entity.Screening); ok {
		return fn(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Screening), args.Error(1)
}

func (m *MockScreeningRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Screening, error) {
	args := m.Called(ctx, roomID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Screening), args.Error(1)
}

func (m *MockScreeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepository) SaveReservations(ctx context.Context, id uuid.UUID, reservations []entity.Reservation, expectedVersion int64) (bool, error) {
	args := m.Called(ctx, id, reservations, expectedVersion)
	return args.Bool(0), args.Error(1)
}

func (m *MockScreeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLockManager implements lock.Manager
type MockLockManager struct {
	mock.Mock
}

func (m *MockLockManager) Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Handle, error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(lock.Handle), args.Error(1)
}

func (m *MockLockManager) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (lock.Handle, error) {
	args := m.Called(ctx, key, ttl, maxRetries, retryDelay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(lock.Handle), args.Error(1)
}

// MockLockHandle implements lock.Handle
type MockLockHandle struct {
	mock.Mock
}

func (m *MockLockHandle) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockNotificationService implements NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendConfirmation(details *TicketDetails, invoice *ticketpdf.Invoice) error {
	args := m.Called(details, invoice)
	return args.Error(0)
}

func (m *MockNotificationService) SendModification(details *TicketDetails) error {
	args := m.Called(details)
	return args.Error(0)
}

func (m *MockNotificationService) SendCancellation(details *TicketDetails) error {
	args := m.Called(details)
	return args.Error(0)
}

// MockTicketRenderer implements TicketRenderer
type MockTicketRenderer struct {
	mock.Mock
}

func (m *MockTicketRenderer) Render(invoice *ticketpdf.Invoice) ([]byte, error) {
	args := m.Called(invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockMailer implements Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(recipient mailer.Recipient, subject string, text *string, attachments []mailer.Attachment, html string) error {
	args := m.Called(recipient, subject, text, attachments, html)
	return args.Error(0)
}

// MockTagSuggester implements TagSuggester
type MockTagSuggester struct {
	mock.Mock
}

func (m *MockTagSuggester) SuggestTags(ctx context.Context, title, description string) (string, error) {
	args := m.Called(ctx, title, description)
	return args.String(0), args.Error(1)
}

// MockAssetHost implements AssetHost
type MockAssetHost struct {
	mock.Mock
}

func (m *MockAssetHost) Upload(ctx context.Context, filename string, file io.Reader) (string, string, error) {
	args := m.Called(ctx, filename, file)
	return args.String(0), args.String(1), args.Error(2)
}
