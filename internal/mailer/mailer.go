package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// Message is a single outbound email. HTML is already rendered and
// escaped; Text is the plain alternative.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the transport named by MAIL_DRIVER.
func New(cfg config.MailConfig, log *logrus.Logger) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "smtp":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.FromName, cfg.From, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUseTLS), nil
	case "mailersend":
		if cfg.MailerSendKey == "" {
			return nil, fmt.Errorf("mailersend driver requires MAILERSEND_API_KEY")
		}
		return NewMailerSend(cfg.MailerSendKey, cfg.FromName, cfg.From), nil
	case "", "log":
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}

func validate(msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("empty recipient email")
	}
	return nil
}
