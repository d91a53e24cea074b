package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	get    *ucAppointment.GetAppointment
	list   *ucAppointment.ListAppointments
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		get:    get,
		list:   list,
		update: update,
		delete: del,
	}
}

// ======================================================
// GET /api/appointments
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(opContext(c))
	if err != nil {
		logCaught(c, err, "list appointments failed")
		httperr.Respond(c, err, "Failed to fetch appointments.")
		return
	}
	httpresp.List(c, apps)
}

// ======================================================
// GET /api/appointments/:id
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(opContext(c), id)
	if err != nil {
		logCaught(c, err, "get appointment failed")
		httperr.Respond(c, err, "Failed to fetch appointment.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// PUT /api/appointments/:id
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.ErrValidation("malformed request body"), "")
		return
	}

	ap, err := h.update.Execute(opContext(c), middleware.UserID(c), id, in)
	if err != nil {
		logCaught(c, err, "update appointment failed")
		httperr.Respond(c, err, "Failed to update appointment.")
		return
	}
	httpresp.OK(c, dto.NewAppointmentListDTO(*ap))
}

// ======================================================
// DELETE /api/appointments/:id
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(opContext(c), middleware.UserID(c), id); err != nil {
		logCaught(c, err, "delete appointment failed")
		httperr.Respond(c, err, "Failed to delete appointment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully."})
}
