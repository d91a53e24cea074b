package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
)

const (
	ContextUserID  = "userID"
	ContextTokenID = "tokenID"

	TokenCookie    = "token"
	UserNameCookie = "userName"

	LoginPath = "/admin/login"
)

// GuardMode decides what an unauthenticated request gets back.
type GuardMode int

const (
	// RedirectToLogin answers 303 to the login page (HTML routes).
	RedirectToLogin GuardMode = iota
	// RespondUnauthorized answers 401 JSON (API routes).
	RespondUnauthorized
)

// AuthGuard admits a request only with a valid, unrevoked session token,
// read from the token cookie or an Authorization: Bearer header. The user
// id is stored under ContextUserID.
func AuthGuard(secret string, store auth.RevocationStore, mode GuardMode) gin.HandlerFunc {
	return authGuard(secret, store, mode, time.Now)
}

func authGuard(secret string, store auth.RevocationStore, mode GuardMode, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.VerifyToken(tokenFrom(c), secret, now())
		if err != nil {
			reject(c, mode)
			return
		}

		revoked, err := store.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.FromContext(c).WithError(err).Error("revocation lookup failed")
			reject(c, mode)
			return
		}
		if revoked {
			reject(c, mode)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTokenID, claims.ID)

		c.Next()
	}
}

func tokenFrom(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func reject(c *gin.Context, mode GuardMode) {
	if mode == RedirectToLogin {
		c.Redirect(http.StatusSeeOther, LoginPath)
		c.Abort()
		return
	}
	httperr.Respond(c, httperr.ErrUnauthorized, "")
	c.Abort()
}

// UserID returns the id set by AuthGuard, or 0 outside a guarded route.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ContextUserID)
	uid, _ := id.(uint)
	return uid
}
