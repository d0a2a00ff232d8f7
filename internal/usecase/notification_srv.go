package usecase

import (
	"fmt"
	"strings"

	"screenix/internal/data/entity"
	"screenix/pkg/mailer"
	"screenix/pkg/ticketpdf"

	"go.uber.org/zap"
)

const (
	subjectConfirmation = "Potwierdzenie zakupu biletów"
	subjectModification = "Modyfikacja miejsc na seansie"
	subjectCancellation = "Twoje zamówienie zostało anulowane."
)

// TicketDetails carries everything the notification emails mention about
// one reservation.
type TicketDetails struct {
	Client    entity.Client
	Movie     *entity.Movie
	Room      *entity.Room
	Screening *entity.Screening
	Seats     []int
}

// NotificationService emails clients about their reservations. Callers run
// it after the reservation has been persisted; a failed email never undoes
// the booking.
type NotificationService interface {
	SendConfirmation(details *TicketDetails, invoice *ticketpdf.Invoice) error
	SendModification(details *TicketDetails) error
	SendCancellation(details *TicketDetails) error
}

type notificationService struct {
	renderer TicketRenderer
	mailer   Mailer
	log      *zap.Logger
}

func NewNotificationService(renderer TicketRenderer, mailer Mailer, log *zap.Logger) NotificationService {
	return &notificationService{
		renderer: renderer,
		mailer:   mailer,
		log:      log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) SendConfirmation(details *TicketDetails, invoice *ticketpdf.Invoice) error {
	pdfContent, err := s.renderer.Render(invoice)
	if err != nil {
		return fmt.Errorf("render invoice %s: %w", invoice.Number, err)
	}

	html := fmt.Sprintf(`
		<h1>Dziękujemy za zakup biletów!</h1>
		<p>Cześć %s,</p>
		<p>Twoja rezerwacja na film <strong>%s</strong> została potwierdzona.</p>
		%s
		<p>Fakturę znajdziesz w załączniku. Do zobaczenia w Kinie Screenix!</p>
	`, details.Client.FirstName, details.Movie.Title, detailsTable(details))

	attachments := []mailer.Attachment{{Filename: "invoice.pdf", Content: pdfContent}}
	if err := s.mailer.Send(recipientOf(details.Client), subjectConfirmation, nil, attachments, html); err != nil {
		return err
	}

	s.log.Info("Confirmation email sent",
		zap.String("recipient", details.Client.Email),
		zap.String("invoice", invoice.Number))
	return nil
}

func (s *notificationService) SendModification(details *TicketDetails) error {
	html := fmt.Sprintf(`
		<h1>Twoja rezerwacja została zmieniona</h1>
		<p>Cześć %s,</p>
		<p>Miejsca na film <strong>%s</strong> zostały zaktualizowane.</p>
		%s
		<p>Do zobaczenia w Kinie Screenix!</p>
	`, details.Client.FirstName, details.Movie.Title, detailsTable(details))

	if err := s.mailer.Send(recipientOf(details.Client), subjectModification, nil, nil, html); err != nil {
		return err
	}

	s.log.Info("Modification email sent", zap.String("recipient", details.Client.Email))
	return nil
}

func (s *notificationService) SendCancellation(details *TicketDetails) error {
	html := fmt.Sprintf(`
		<h1>Twoje zamówienie zostało anulowane</h1>
		<p>Cześć %s,</p>
		<p>Rezerwacja na film <strong>%s</strong> (%s, sala %s) została anulowana.</p>
		<p>Mamy nadzieję, że zobaczymy się przy innej okazji.</p>
	`, details.Client.FirstName, details.Movie.Title,
		details.Screening.Date.Format("2006-01-02 15:04"), details.Room.Name)

	if err := s.mailer.Send(recipientOf(details.Client), subjectCancellation, nil, nil, html); err != nil {
		return err
	}

	s.log.Info("Cancellation email sent", zap.String("recipient", details.Client.Email))
	return nil
}

func detailsTable(details *TicketDetails) string {
	return fmt.Sprintf(`
		<ul>
			<li>Data: %s</li>
			<li>Godzina: %s</li>
			<li>Sala: %s</li>
			<li>Miejsca: %s</li>
		</ul>
	`,
		details.Screening.Date.Format("2006-01-02"),
		details.Screening.Date.Format("15:04"),
		details.Room.Name,
		joinSeatNumbers(details.Seats),
	)
}

func joinSeatNumbers(seats []int) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = fmt.Sprintf("%d", seat)
	}
	return strings.Join(parts, ", ")
}

func recipientOf(client entity.Client) mailer.Recipient {
	return mailer.Recipient{
		Name:  client.FirstName + " " + client.LastName,
		Email: client.Email,
	}
}
