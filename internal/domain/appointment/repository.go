package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Repository is the appointment side of the persistence gateway.
// Missing ids are reported as httperr.ErrNotFound; backend failures as
// *httperr.StorageError.
type Repository interface {
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointments returns every row ordered by date, then time.
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// UpdateAppointment replaces every field of row id.
	UpdateAppointment(
		ctx context.Context,
		id uint,
		fields *models.Appointment,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
