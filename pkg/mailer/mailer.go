package mailer

import (
	"fmt"
	"io"

	"screenix/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Recipient struct {
	Name  string
	Email string
}

type Attachment struct {
	Filename string
	Content  []byte
}

// SMTPMailer sends transactional mail through a single SMTP account.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	log      *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:     config.From,
		fromName: config.FromName,
		log:      log.With(zap.String("client", "mailer")),
	}
}

// Send delivers one email. Text is optional, attachments may be empty, html
// is the message body.
func (m *SMTPMailer) Send(recipient Recipient, subject string, text *string, attachments []Attachment, html string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetAddressHeader("To", recipient.Email, recipient.Name)
	msg.SetHeader("Subject", subject)
	if text != nil {
		msg.SetBody("text/plain", *text)
		msg.AddAlternative("text/html", html)
	} else {
		msg.SetBody("text/html", html)
	}

	for _, att := range attachments {
		content := att.Content
		msg.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", recipient.Email),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", recipient.Email, err)
	}

	m.log.Info("Email sent",
		zap.String("to", recipient.Email),
		zap.String("subject", subject),
		zap.Int("attachments", len(attachments)),
	)
	return nil
}
