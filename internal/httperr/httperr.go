package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string   `json:"error_code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Status maps an error of the taxonomy to its HTTP status.
func Status(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsInvalidCredentials(err), IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as JSON. Storage and notification causes are not
// exposed; callers log them before calling Respond.
func Respond(c *gin.Context, err error, internalMessage string) {
	var ve ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_error",
			Message: "Invalid or missing input fields.",
			Fields:  ve.Fields,
		})
	case IsNotFound(err):
		NotFound(c, "not_found", notFoundMessage(err))
	case IsInvalidCredentials(err):
		Unauthorized(c, "invalid_credentials", "Invalid email or password")
	case IsUnauthorized(err):
		Unauthorized(c, "unauthorized", "Authentication required.")
	default:
		Internal(c, "internal_error", internalMessage)
	}
}

func notFoundMessage(err error) string {
	var nf NotFoundError
	if errors.As(err, &nf) && nf.Resource != "" {
		return strings.ToUpper(nf.Resource[:1]) + nf.Resource[1:] + " not found."
	}
	return "Not found."
}
