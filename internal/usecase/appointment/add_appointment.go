package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AddAppointment is the dashboard form. Same validation as a public
// booking, no emails.
type AddAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewAddAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *AddAppointment {
	return &AddAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddAppointment) Execute(
	ctx context.Context,
	actorID uint,
	in domain.Input,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	ap := in.ToModel()
	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		return nil, err
	}
	metrics.RecordBooking("admin")

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
	})

	return ap, nil
}
