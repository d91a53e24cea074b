package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/mailer"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	SubjectBusiness = "New Appointment Booking"
	SubjectCustomer = "Appointment Confirmation"

	sendTimeout = 30 * time.Second
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Notifier struct {
	sender   mailer.Sender
	receiver string
	log      *logrus.Logger
}

// New returns a notifier that reports every booking to receiver and
// confirms it to the customer.
func New(sender mailer.Sender, receiver string, log *logrus.Logger) *Notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Notifier{sender: sender, receiver: receiver, log: log}
}

type view struct {
	Name     string
	Email    string
	Phone    string
	Category string
	Date     string
	Time     string
	Message  string
}

func newView(ap *models.Appointment) view {
	msg := ap.Message
	if msg == "" {
		msg = "N/A"
	}
	return view{
		Name:     ap.Name,
		Email:    ap.Email,
		Phone:    ap.Phone,
		Category: ap.Category,
		Date:     ap.Date.String(),
		Time:     ap.Time,
		Message:  msg,
	}
}

// NotifyBooking sends the business notice and then the customer
// confirmation. The second send is attempted even when the first fails.
// Any failure comes back as a *httperr.NotificationError.
func (n *Notifier) NotifyBooking(ctx context.Context, ap *models.Appointment) error {
	v := newView(ap)

	errBusiness := n.send(ctx, "business", mailer.Message{
		To:      n.receiver,
		Subject: SubjectBusiness,
	}, "business.html", v)

	errCustomer := n.send(ctx, "customer", mailer.Message{
		To:      ap.Email,
		ToName:  ap.Name,
		Subject: SubjectCustomer,
	}, "customer.html", v)

	if err := errors.Join(errBusiness, errCustomer); err != nil {
		return httperr.ErrNotification(err)
	}
	return nil
}

func (n *Notifier) send(ctx context.Context, kind string, msg mailer.Message, tmpl string, v view) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, v); err != nil {
		return fmt.Errorf("render %s email: %w", kind, err)
	}
	msg.HTML = buf.String()

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	err := n.sender.Send(ctx, msg)
	metrics.RecordNotification(kind, err)
	if err != nil {
		n.log.WithError(err).WithFields(logrus.Fields{
			"recipient": kind,
			"subject":   msg.Subject,
		}).Error("booking email failed")
		return fmt.Errorf("send %s email: %w", kind, err)
	}
	return nil
}
