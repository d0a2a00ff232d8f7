package usecase

import (
	"context"
	"io"

	"screenix/pkg/lock"
	"screenix/pkg/mailer"
	"screenix/pkg/ticketpdf"
)

// TagSuggester proposes display tags for a movie.
type TagSuggester interface {
	SuggestTags(ctx context.Context, title, description string) (string, error)
}

// AssetHost stores uploaded poster images.
type AssetHost interface {
	Upload(ctx context.Context, filename string, file io.Reader) (url string, assetID string, err error)
}

// TicketRenderer produces the PDF bytes for an invoice.
type TicketRenderer interface {
	Render(invoice *ticketpdf.Invoice) ([]byte, error)
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(recipient mailer.Recipient, subject string, text *string, attachments []mailer.Attachment, html string) error
}

// Clients groups the external collaborators, constructed at process start
// and injected into the services that need them.
type Clients struct {
	Tags     TagSuggester
	Assets   AssetHost
	Renderer TicketRenderer
	Mailer   Mailer
	Locks    lock.Manager
}
