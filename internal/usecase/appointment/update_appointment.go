package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every field of the appointment. The input is validated
// like a new booking so an edit cannot blank a required field.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in domain.Input,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	ap, err := uc.repo.UpdateAppointment(ctx, id, in.ToModel())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
	})

	return ap, nil
}
