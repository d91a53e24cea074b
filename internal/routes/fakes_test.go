package routes

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/mailer"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// store is an in-memory gateway for both tables. Writes fail on a done
// context like the gorm gateway does.
type store struct {
	mu     sync.Mutex
	nextID uint
	apps   map[uint]models.Appointment
	users  map[string]models.User
	err    error
}

func newStore() *store {
	return &store{apps: map[uint]models.Appointment{}, users: map[string]models.User{}}
}

func (s *store) InsertAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	ap.ID = s.nextID
	s.apps[ap.ID] = *ap
	return nil
}

func (s *store) ListAppointments(context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Appointment, 0, len(s.apps))
	for _, ap := range s.apps {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Before(out[j].Date.Time)
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	ap, ok := s.apps[id]
	if !ok {
		return nil, httperr.ErrNotFoundFor("appointment")
	}
	return &ap, nil
}

func (s *store) UpdateAppointment(ctx context.Context, id uint, f *models.Appointment) (*models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.apps[id]; !ok {
		return nil, httperr.ErrNotFoundFor("appointment")
	}
	up := *f
	up.ID = id
	s.apps[id] = up
	return &up, nil
}

func (s *store) DeleteAppointment(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.apps[id]; !ok {
		return httperr.ErrNotFoundFor("appointment")
	}
	delete(s.apps, id)
	return nil
}

func (s *store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, httperr.ErrNotFoundFor("user")
	}
	return &u, nil
}

func (s *store) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFoundFor("user")
}

func (s *store) InsertUserIfAbsent(_ context.Context, name, email, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; ok {
		return nil
	}
	s.nextID++
	s.users[email] = models.User{ID: s.nextID, Name: name, Email: email, PasswordHash: hash}
	return nil
}

func (s *store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type outbox struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

// Send refuses a done context before attempting, like the SMTP mailer.
func (o *outbox) Send(ctx context.Context, msg mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return o.err
}

func (o *outbox) recipients() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.sent))
	for _, m := range o.sent {
		out = append(out, m.To)
	}
	return out
}

type auditLogs struct {
	last audit.Filter
}

func (l *auditLogs) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	l.last = f
	return []models.AuditLog{}, 0, nil
}
