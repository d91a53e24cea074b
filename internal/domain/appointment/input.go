package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const MaxMessageLength = 500

// Input is the booking form as submitted. Everything except Message is
// required.
type Input struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Category string `json:"category" form:"category"`
	Date     string `json:"date" form:"date"`
	Time     string `json:"time" form:"time"`
	Message  string `json:"message" form:"message"`
}

// Validate checks presence of the required fields, then the date format
// and the message length. Whitespace-only values count as missing.
func (in Input) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"category", in.Category},
		{"date", in.Date},
		{"time", in.Time},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return httperr.ErrValidation("missing required fields", missing...)
	}

	if _, err := models.ParseDate(strings.TrimSpace(in.Date)); err != nil {
		return httperr.ErrValidation("date must be YYYY-MM-DD", "date")
	}

	if len([]rune(in.Message)) > MaxMessageLength {
		return httperr.ErrValidation("message is too long", "message")
	}

	return nil
}

// ToModel converts a validated input. Call Validate first.
func (in Input) ToModel() *models.Appointment {
	date, _ := models.ParseDate(strings.TrimSpace(in.Date))
	return &models.Appointment{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Category: strings.TrimSpace(in.Category),
		Date:     date,
		Time:     strings.TrimSpace(in.Time),
		Message:  in.Message,
	}
}
