package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const secret = "test-secret"

type memUsers struct {
	mu     sync.Mutex
	nextID uint
	byMail map[string]models.User
	err    error
}

func newMemUsers() *memUsers {
	return &memUsers{byMail: map[string]models.User{}}
}

func (m *memUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byMail[email]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) GetUser(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byMail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (m *memUsers) InsertUserIfAbsent(_ context.Context, name, email, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byMail[email]; ok {
		return nil
	}
	m.nextID++
	m.byMail[email] = models.User{ID: m.nextID, Name: name, Email: email, PasswordHash: hash}
	return nil
}

type recordingAudit struct {
	events []audit.Event
}

func (a *recordingAudit) Dispatch(ev audit.Event) { a.events = append(a.events, ev) }

func seeded(t *testing.T) *memUsers {
	t.Helper()
	users := newMemUsers()
	require.NoError(t, NewSeedAdmin(users).Execute(context.Background(), "Admin", "admin@example.com", "password123"))
	return users
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	users := seeded(t)
	first := users.byMail["admin@example.com"]

	require.NoError(t, NewSeedAdmin(users).Execute(context.Background(), "Admin", "admin@example.com", "other-password"))

	assert.Len(t, users.byMail, 1)
	assert.Equal(t, first, users.byMail["admin@example.com"], "existing account untouched")
	assert.NotEqual(t, "password123", first.PasswordHash)
	assert.True(t, auth.CheckPassword(first.PasswordHash, "password123"))
}

func TestSeedAdminRejectsBadInput(t *testing.T) {
	users := newMemUsers()
	assert.Error(t, NewSeedAdmin(users).Execute(context.Background(), "Admin", "not-an-email", "pw"))
	assert.Error(t, NewSeedAdmin(users).Execute(context.Background(), "Admin", "admin@example.com", ""))
	assert.Empty(t, users.byMail)
}

func TestLoginSuccess(t *testing.T) {
	users := seeded(t)
	rec := &recordingAudit{}
	uc := NewLogin(users, secret, time.Hour, rec)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	s, err := uc.Execute(context.Background(), " Admin@Example.com ", "password123")
	require.NoError(t, err)

	assert.Equal(t, "Admin", s.UserName)
	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)

	claims, err := auth.VerifyToken(s.Token, secret, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, s.UserID, claims.UserID)

	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.ActionLoginSucceeded, rec.events[0].Action)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := seeded(t)
	rec := &recordingAudit{}
	uc := NewLogin(users, secret, time.Hour, rec)

	_, errWrongPassword := uc.Execute(context.Background(), "admin@example.com", "wrong")
	_, errUnknownEmail := uc.Execute(context.Background(), "ghost@example.com", "password123")

	assert.True(t, httperr.IsInvalidCredentials(errWrongPassword))
	assert.True(t, httperr.IsInvalidCredentials(errUnknownEmail))
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())

	require.Len(t, rec.events, 2)
	assert.Equal(t, audit.ActionLoginFailed, rec.events[0].Action)
	assert.Nil(t, rec.events[1].UserID)
}

func TestLoginStorageError(t *testing.T) {
	users := newMemUsers()
	users.err = httperr.ErrStorage("find user", errors.New("connection refused"))

	_, err := NewLogin(users, secret, time.Hour, audit.Nop{}).Execute(context.Background(), "admin@example.com", "x")
	assert.True(t, httperr.IsStorage(err))
	assert.False(t, httperr.IsInvalidCredentials(err))
}

func TestLogoutRevokesToken(t *testing.T) {
	users := seeded(t)
	store := auth.NewMemoryRevocationStore()
	rec := &recordingAudit{}

	s, err := NewLogin(users, secret, time.Hour, rec).Execute(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, NewLogout(store, secret, rec).Execute(context.Background(), s.Token))

	claims, err := auth.VerifyToken(s.Token, secret, time.Now())
	require.NoError(t, err, "signature alone still verifies")

	revoked, err := store.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, audit.ActionLogout, rec.events[len(rec.events)-1].Action)
}

func TestLogoutWithoutValidTokenIsNoop(t *testing.T) {
	store := auth.NewMemoryRevocationStore()
	rec := &recordingAudit{}
	uc := NewLogout(store, secret, rec)

	assert.NoError(t, uc.Execute(context.Background(), ""))
	assert.NoError(t, uc.Execute(context.Background(), "garbage"))
	assert.Empty(t, rec.events)
}

func TestCurrentUser(t *testing.T) {
	users := seeded(t)

	u, err := NewCurrentUser(users).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", u.Email)

	_, err = NewCurrentUser(users).Execute(context.Background(), 42)
	assert.True(t, httperr.IsNotFound(err))
}
