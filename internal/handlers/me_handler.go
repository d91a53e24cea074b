package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucSession "github.com/BruksfildServices01/barber-booking/internal/usecase/session"
)

type MeHandler struct {
	current *ucSession.CurrentUser
}

func NewMeHandler(current *ucSession.CurrentUser) *MeHandler {
	return &MeHandler{current: current}
}

// GetMe returns the signed-in account. The password hash never leaves
// the models package.
func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.current.Execute(opContext(c), middleware.UserID(c))
	if err != nil {
		if httperr.IsNotFound(err) {
			// token outlived its account
			httperr.Respond(c, httperr.ErrUnauthorized, "")
			return
		}
		logCaught(c, err, "load current user failed")
		httperr.Respond(c, err, "Failed to load account.")
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}
