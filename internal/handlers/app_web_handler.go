package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

const (
	defaultUserName = "Guest"

	msgAdded      = "Appointment added successfully!"
	msgListFailed = "Error fetching appointments."
	msgAddFailed  = "Failed to add appointment."
)

// AppWebHandler serves the admin dashboard.
type AppWebHandler struct {
	list *ucAppointment.ListAppointments
	add  *ucAppointment.AddAppointment
}

func NewAppWebHandler(
	list *ucAppointment.ListAppointments,
	add *ucAppointment.AddAppointment,
) *AppWebHandler {
	return &AppWebHandler{
		list: list,
		add:  add,
	}
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, gin.H{})
}

// AddAppointment stores a booking entered by the admin and shows the
// dashboard again with the outcome.
func (h *AppWebHandler) AddAppointment(c *gin.Context) {
	var in domain.Input
	if err := c.ShouldBind(&in); err != nil {
		h.fail(c, httperr.ErrValidation("malformed request body"))
		return
	}

	ap, err := h.add.Execute(opContext(c), middleware.UserID(c), in)
	if err != nil {
		logCaught(c, err, "admin add appointment failed")
		h.fail(c, err)
		return
	}

	if !wantsHTML(c) {
		httpresp.Created(c, gin.H{
			"appointment": ap,
			"message":     msgAdded,
		})
		return
	}
	h.render(c, http.StatusOK, gin.H{"Message": msgAdded})
}

func (h *AppWebHandler) fail(c *gin.Context, err error) {
	if !wantsHTML(c) {
		httperr.Respond(c, err, msgAddFailed)
		return
	}

	msg := msgAddFailed
	if httperr.IsValidation(err) {
		msg = msgInvalidInput
	}
	h.render(c, httperr.Status(err), gin.H{
		"Error":  msg,
		"Fields": validationFields(err),
	})
}

func (h *AppWebHandler) render(c *gin.Context, status int, extra gin.H) {
	userName, err := c.Cookie(middleware.UserNameCookie)
	if err != nil || userName == "" {
		userName = defaultUserName
	}

	apps, err := h.list.Execute(opContext(c))
	if err != nil {
		logCaught(c, err, "list appointments failed")
		if wantsHTML(c) {
			c.String(http.StatusInternalServerError, msgListFailed)
			return
		}
		httperr.Respond(c, err, msgListFailed)
		return
	}

	if !wantsHTML(c) {
		c.JSON(status, gin.H{
			"user_name":    userName,
			"appointments": apps,
			"total":        len(apps),
		})
		return
	}

	extra["UserName"] = userName
	extra["Appointments"] = apps
	c.HTML(status, "dashboard.html", pageData("Dashboard", extra))
}
