package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Gateway is the only owner of the appointments and users tables. All
// statements go through gorm with bound parameters.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *Gateway) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return storageErr("insert appointment", err)
	}
	return nil
}

func (r *Gateway) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	apps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, storageErr("list appointments", err)
	}

	return apps, nil
}

func (r *Gateway) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFoundFor("appointment")
		}
		return nil, storageErr("get appointment", err)
	}

	return &ap, nil
}

func (r *Gateway) UpdateAppointment(
	ctx context.Context,
	id uint,
	fields *models.Appointment,
) (*models.Appointment, error) {

	// a map so empty strings are written too
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":     fields.Name,
			"email":    fields.Email,
			"phone":    fields.Phone,
			"category": fields.Category,
			"date":     fields.Date,
			"time":     fields.Time,
			"message":  fields.Message,
		})
	if res.Error != nil {
		return nil, storageErr("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFoundFor("appointment")
	}

	updated := *fields
	updated.ID = id
	return &updated, nil
}

func (r *Gateway) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return storageErr("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFoundFor("appointment")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*Gateway)(nil)
