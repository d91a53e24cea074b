package session

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
)

type Logout struct {
	store  auth.RevocationStore
	secret string
	audit  audit.Recorder
	now    func() time.Time
}

func NewLogout(
	store auth.RevocationStore,
	secret string,
	audit audit.Recorder,
) *Logout {
	return &Logout{
		store:  store,
		secret: secret,
		audit:  audit,
		now:    time.Now,
	}
}

// Execute revokes the token until its natural expiry. A missing or
// already invalid token has nothing to revoke.
func (uc *Logout) Execute(
	ctx context.Context,
	token string,
) error {

	claims, err := auth.VerifyToken(token, uc.secret, uc.now())
	if err != nil {
		return nil
	}

	if err := uc.store.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &claims.UserID,
		Action:   audit.ActionLogout,
		Entity:   audit.EntityUser,
		EntityID: &claims.UserID,
	})

	return nil
}
