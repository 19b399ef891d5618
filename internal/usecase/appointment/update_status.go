package appointment

import (
	"context"

	"github.com/saobentodouna/rg-agendamento/internal/audit"
	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
	"github.com/saobentodouna/rg-agendamento/internal/notify"
	"github.com/saobentodouna/rg-agendamento/internal/timezone"
)

type UpdateStatus struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
	tz       string
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	notifier notify.Notifier,
	tz string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
		tz:       tz,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	newStatus, ok := domain.NormalizeStatus(rawStatus)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, newStatus, now); err != nil {
		return nil, err
	}

	// falha de escrita não pode ser engolida: o operador refaz a consulta
	// e o estado otimista da tela é descartado
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		uc.notifier.Notify(ctx, notify.Message{
			Text:     "Erro ao atualizar status. Tente novamente.",
			Severity: notify.SeverityError,
		})
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(newStatus)},
	})

	uc.notifier.Notify(ctx, notify.Message{
		Text:     "Status atualizado com sucesso!",
		Severity: notify.SeveritySuccess,
	})

	return ap, nil
}
