package dto

import "github.com/BruksfildServices01/barber-booking/internal/models"

// AppointmentListDTO is one dashboard row. Date is projected as
// YYYY-MM-DD.
type AppointmentListDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Message  string `json:"message"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:       ap.ID,
		Name:     ap.Name,
		Email:    ap.Email,
		Phone:    ap.Phone,
		Category: ap.Category,
		Date:     ap.Date.String(),
		Time:     ap.Time,
		Message:  ap.Message,
	}
}
