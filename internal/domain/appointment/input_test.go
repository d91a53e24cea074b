package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func validInput() Input {
	return Input{
		Name:     "Alice",
		Email:    "a@x.com",
		Phone:    "555-1000",
		Category: "Haircut",
		Date:     "2024-06-01",
		Time:     "10:00",
	}
}

func TestValidateAcceptsMissingMessage(t *testing.T) {
	assert.NoError(t, validInput().Validate())
}

func TestValidateRejectsEachMissingField(t *testing.T) {
	blank := map[string]func(*Input){
		"name":     func(in *Input) { in.Name = "" },
		"email":    func(in *Input) { in.Email = "" },
		"phone":    func(in *Input) { in.Phone = "" },
		"category": func(in *Input) { in.Category = "" },
		"date":     func(in *Input) { in.Date = "" },
		"time":     func(in *Input) { in.Time = "   " },
	}

	for field, clear := range blank {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			clear(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.True(t, httperr.IsValidation(err))

			var ve httperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, []string{field}, ve.Fields)
		})
	}
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	var ve httperr.ValidationError
	require.ErrorAs(t, Input{Message: "hi"}.Validate(), &ve)
	assert.Equal(t, []string{"name", "email", "phone", "category", "date", "time"}, ve.Fields)
}

func TestValidateDateAndMessage(t *testing.T) {
	in := validInput()
	in.Date = "June 1st"
	assert.True(t, httperr.IsValidation(in.Validate()))

	in = validInput()
	in.Message = strings.Repeat("x", MaxMessageLength+1)
	assert.True(t, httperr.IsValidation(in.Validate()))

	in.Message = strings.Repeat("é", MaxMessageLength)
	assert.NoError(t, in.Validate())
}

func TestToModel(t *testing.T) {
	in := validInput()
	in.Name = "  Alice "
	in.Message = "first visit"

	ap := in.ToModel()
	assert.Equal(t, "Alice", ap.Name)
	assert.Equal(t, models.NewDate(2024, time.June, 1), ap.Date)
	assert.Equal(t, "first visit", ap.Message)
	assert.Zero(t, ap.ID)
}
