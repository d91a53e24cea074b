package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Notifier sends the booking emails. A failure must come back as a
// *httperr.NotificationError.
type Notifier interface {
	NotifyBooking(ctx context.Context, ap *models.Appointment) error
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	notifier Notifier
}

func NewBookAppointment(
	repo domain.Repository,
	notifier Notifier,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates, stores and then notifies. The insert is the commit
// point: when only notification fails the stored record is returned
// together with the *httperr.NotificationError.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in domain.Input,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validation
	// --------------------------------------------------
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Persist
	// --------------------------------------------------
	ap := in.ToModel()
	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		return nil, err
	}
	metrics.RecordBooking("public")

	// --------------------------------------------------
	// 3. Notify (best effort)
	// --------------------------------------------------
	if err := uc.notifier.NotifyBooking(ctx, ap); err != nil {
		return ap, err
	}

	return ap, nil
}
