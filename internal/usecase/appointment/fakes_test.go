package appointment

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type memRepo struct {
	mu      sync.Mutex
	nextID  uint
	rows    map[uint]models.Appointment
	inserts int
	err     error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[uint]models.Appointment{}}
}

func (r *memRepo) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	ap.ID = r.nextID
	r.rows[ap.ID] = *ap
	r.inserts++
	return nil
}

func (r *memRepo) ListAppointments(context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Appointment, 0, len(r.rows))
	for _, ap := range r.rows {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.Before(b.Date.Time)
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *memRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	ap, ok := r.rows[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &ap, nil
}

func (r *memRepo) UpdateAppointment(_ context.Context, id uint, fields *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.rows[id]; !ok {
		return nil, httperr.ErrNotFound
	}
	updated := *fields
	updated.ID = id
	r.rows[id] = updated
	return &updated, nil
}

func (r *memRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.rows[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type recordingNotifier struct {
	recipients []string
	err        error
}

func (n *recordingNotifier) NotifyBooking(_ context.Context, ap *models.Appointment) error {
	n.recipients = append(n.recipients, "owner@shop.com", ap.Email)
	return n.err
}

type recordingAudit struct {
	events []audit.Event
}

func (a *recordingAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
