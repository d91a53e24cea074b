package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

const (
	msgBooked        = "Appointment booked successfully."
	msgNotifyFailed  = "Appointment saved, but confirmation emails could not be sent."
	msgBookingFailed = "Failed to save appointment."
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	book *ucAppointment.BookAppointment
}

func NewPublicHandler(book *ucAppointment.BookAppointment) *PublicHandler {
	return &PublicHandler{book: book}
}

// ======================================================
// POST /book-appointment
// ======================================================

// BookAppointment accepts JSON or a urlencoded form.
func (h *PublicHandler) BookAppointment(c *gin.Context) {
	var in domain.Input
	if err := c.ShouldBind(&in); err != nil {
		h.fail(c, httperr.ErrValidation("malformed request body"))
		return
	}

	ap, err := h.book.Execute(opContext(c), in)

	warning := ""
	switch {
	case err == nil:
	case httperr.IsNotification(err) && ap != nil:
		logger.FromContext(c).WithError(err).
			WithField("appointment_id", ap.ID).
			Warn("appointment stored but notification failed")
		warning = msgNotifyFailed
	default:
		logCaught(c, err, "booking failed")
		h.fail(c, err)
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusCreated, "index.html", pageData("Book", gin.H{
			"Message": msgBooked,
			"Error":   warning,
		}))
		return
	}

	body := gin.H{
		"appointment": ap,
		"message":     msgBooked,
	}
	if warning != "" {
		body["warning"] = warning
	}
	httpresp.Created(c, body)
}

func (h *PublicHandler) fail(c *gin.Context, err error) {
	if !wantsHTML(c) {
		httperr.Respond(c, err, msgBookingFailed)
		return
	}

	msg := msgBookingFailed
	if httperr.IsValidation(err) {
		msg = msgInvalidInput
	}
	c.HTML(httperr.Status(err), "index.html", pageData("Book", gin.H{
		"Error":  msg,
		"Fields": validationFields(err),
	}))
}
