package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PublicWebHandler struct{}

func NewPublicWebHandler() *PublicWebHandler {
	return &PublicWebHandler{}
}

// ShowBookingPage serves the public booking form.
func (h *PublicWebHandler) ShowBookingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData("Book", nil))
}

func (h *PublicWebHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
