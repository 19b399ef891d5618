package appointment

import (
	"context"
	"time"

	"github.com/saobentodouna/rg-agendamento/internal/audit"
	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
	"github.com/saobentodouna/rg-agendamento/internal/notify"
	"github.com/saobentodouna/rg-agendamento/internal/timezone"
)

// Reagendar é um novo claim de vaga: a data/horário de destino passa pela
// mesma admissão de uma criação, e só então o registro é movido.
type RescheduleAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
	tz       string
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	notifier notify.Notifier,
	tz string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
		tz:       tz,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	newDateStr string,
	newTimeStr string,
) (*models.Appointment, error) {

	newDate, err := time.ParseInLocation(
		"2006-01-02",
		newDateStr,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsBusinessDay(newDate) {
		return nil, httperr.ErrBusiness("weekend_date")
	}

	slot := domain.NormalizeSlot(newTimeStr)
	if !domain.IsBookableSlot(newDate, slot) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Reschedule(ap, newDate, slot); err != nil {
		return nil, err
	}

	if err := uc.repo.MoveSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"date": newDateStr,
			"time": slot,
		},
	})

	uc.notifier.Notify(ctx, notify.Message{
		Text:     "Agendamento remarcado com sucesso!",
		Severity: notify.SeveritySuccess,
	})

	return ap, nil
}
