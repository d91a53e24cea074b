package session

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	userDomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// compared against when the email is unknown so both failure paths cost
// one bcrypt comparison
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("not-a-real-password")
	return h
})

type Session struct {
	UserID    uint
	UserName  string
	Token     string
	ExpiresAt time.Time
}

type Login struct {
	users  userDomain.Repository
	secret string
	ttl    time.Duration
	audit  audit.Recorder
	now    func() time.Time
}

func NewLogin(
	users userDomain.Repository,
	secret string,
	ttl time.Duration,
	audit audit.Recorder,
) *Login {
	return &Login{
		users:  users,
		secret: secret,
		ttl:    ttl,
		audit:  audit,
		now:    time.Now,
	}
}

// Execute returns httperr.ErrInvalidCredentials for an unknown email and
// for a wrong password alike.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*Session, error) {

	email = validators.NormalizeEmail(email)

	user, err := uc.users.FindUserByEmail(ctx, email)
	if err != nil {
		if !httperr.IsNotFound(err) {
			metrics.RecordLogin("error")
			return nil, err
		}
		auth.CheckPassword(dummyHash(), password)
		uc.fail(email)
		return nil, httperr.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		uc.fail(email)
		return nil, httperr.ErrInvalidCredentials
	}

	now := uc.now()
	token, err := auth.IssueToken(user.ID, uc.secret, uc.ttl, now)
	if err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}

	metrics.RecordLogin("success")
	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionLoginSucceeded,
		Entity:   audit.EntityUser,
		EntityID: &user.ID,
	})

	return &Session{
		UserID:    user.ID,
		UserName:  user.Name,
		Token:     token,
		ExpiresAt: now.Add(uc.ttl),
	}, nil
}

func (uc *Login) fail(email string) {
	metrics.RecordLogin("invalid_credentials")
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionLoginFailed,
		Entity:   audit.EntityUser,
		Metadata: map[string]string{"email": email},
	})
}
