package appointment

import (
	"time"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica uma troca de status vinda do balcão administrativo,
// mantendo os carimbos de cancelamento/conclusão.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from, ok := NormalizeStatus(ap.Status)
	if !ok {
		return httperr.ErrBusiness("invalid_state")
	}

	if err := CanTransition(from, to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

// Reschedule move um agendamento ativo para uma nova data/horário já
// validados pelo chamador. Agendamentos encerrados não podem ser movidos.
func Reschedule(ap *models.Appointment, newDate time.Time, newTime string) error {
	st, ok := NormalizeStatus(ap.Status)
	if !ok || !Occupies(st) {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.ScheduledDate = newDate
	ap.ScheduledTime = NormalizeSlot(newTime)
	return nil
}
