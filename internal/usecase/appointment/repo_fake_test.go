package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
)

// fakeRepo guarda agendamentos em memória com a mesma disciplina do banco:
// o claim da vaga acontece sob o mutex, então duas admissões sequenciais
// pelo mesmo horário reproduzem o conflito real.
type fakeRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uint]*models.Appointment)}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func occupiesSlot(ap *models.Appointment, date time.Time, slot string) bool {
	st, ok := domain.NormalizeStatus(ap.Status)
	if !ok || !domain.Occupies(st) {
		return false
	}
	return sameDay(ap.ScheduledDate, date) && ap.ScheduledTime == slot
}

func (f *fakeRepo) ReserveSlot(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, other := range f.items {
		if occupiesSlot(other, ap.ScheduledDate, ap.ScheduledTime) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	f.seq++
	ap.ID = f.seq

	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) MoveSlot(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, other := range f.items {
		if id != ap.ID && occupiesSlot(other, ap.ScheduledDate, ap.ScheduledTime) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.items[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[ap.ID]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}

	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListActiveTimes(_ context.Context, date time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	times := make([]string, 0)
	for _, ap := range f.items {
		st, ok := domain.NormalizeStatus(ap.Status)
		if ok && domain.Occupies(st) && sameDay(ap.ScheduledDate, date) {
			times = append(times, ap.ScheduledTime)
		}
	}

	sort.Strings(times)
	return times, nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Appointment, 0)
	for _, ap := range f.items {
		if !ap.ScheduledDate.Before(start) && ap.ScheduledDate.Before(end) {
			out = append(out, *ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		return out[i].ScheduledTime < out[j].ScheduledTime
	})

	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// noopSink ignora auditoria nos testes
type noopSink struct{}

func (noopSink) Log(*uint, string, string, *uint, any) error { return nil }
