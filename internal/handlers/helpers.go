package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
)

const (
	msgInvalidInput = "Invalid or missing input fields."
	msgServerError  = "An error occurred. Please try again."
)

// wantsHTML is true when the client prefers a page over JSON. A missing
// or wildcard Accept gets JSON.
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

// opContext carries the request values but not its cancellation. A
// client that disconnects abandons the response only; the write or mail
// already under way still runs to completion or failure.
func opContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// logCaught logs failures the caller only sees as a generic message.
func logCaught(c *gin.Context, err error, msg string) {
	if httperr.IsStorage(err) || httperr.IsNotification(err) || httperr.Status(err) >= 500 {
		logger.FromContext(c).WithError(err).Error(msg)
	}
}

// parseID reads a positive integer :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// pageData holds what every template reads from the layout.
func pageData(title string, extra gin.H) gin.H {
	data := gin.H{"Title": title}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func validationFields(err error) []string {
	var ve httperr.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
