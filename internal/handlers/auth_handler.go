package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucSession "github.com/BruksfildServices01/barber-booking/internal/usecase/session"
)

const (
	DashboardPath = "/admin/dashboard"

	msgBadLogin = "Invalid email or password"
)

type AuthHandler struct {
	login  *ucSession.Login
	logout *ucSession.Logout
	config *config.Config
}

func NewAuthHandler(
	login *ucSession.Login,
	logout *ucSession.Logout,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		login:  login,
		logout: logout,
		config: cfg,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData("Login", nil))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	// missing credentials get the same page as wrong ones, without a lookup
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", pageData("Login", gin.H{"Error": msgBadLogin}))
		return
	}

	s, err := h.login.Execute(opContext(c), req.Email, req.Password)
	if err != nil {
		if httperr.IsInvalidCredentials(err) {
			c.HTML(http.StatusUnauthorized, "login.html", pageData("Login", gin.H{"Error": msgBadLogin}))
			return
		}
		logger.FromContext(c).WithError(err).Error("login failed")
		c.HTML(http.StatusInternalServerError, "login.html", pageData("Login", gin.H{"Error": msgServerError}))
		return
	}

	maxAge := int(h.config.SessionTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, s.Token, maxAge, "/", "", h.config.CookieSecure, true)
	c.SetCookie(middleware.UserNameCookie, s.UserName, maxAge, "/", "", h.config.CookieSecure, false)

	c.Redirect(http.StatusSeeOther, DashboardPath)
}

// Logout revokes the current token and clears both cookies. It always
// lands on the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.TokenCookie)
	if err := h.logout.Execute(opContext(c), token); err != nil {
		logger.FromContext(c).WithError(err).Error("token revocation failed")
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.config.CookieSecure, true)
	c.SetCookie(middleware.UserNameCookie, "", -1, "/", "", h.config.CookieSecure, false)

	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
