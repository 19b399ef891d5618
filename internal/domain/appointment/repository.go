package appointment

import (
	"context"
	"time"

	"github.com/saobentodouna/rg-agendamento/internal/models"
)

type Repository interface {
	// -------- Admissão (claim atômico de vaga) --------

	// ReserveSlot insere o agendamento se, e somente se, nenhuma reserva
	// ativa segurar o mesmo par (data, horário). A verificação e a escrita
	// acontecem na mesma transação; a corrida restante é fechada pela
	// restrição de unicidade do banco. Conflito vem como
	// httperr.ErrBusiness("slot_unavailable").
	ReserveSlot(ctx context.Context, ap *models.Appointment) error

	// MoveSlot persiste um reagendamento já aplicado na entidade,
	// reivindicando o novo par (data, horário) sob as mesmas garantias de
	// ReserveSlot.
	MoveSlot(ctx context.Context, ap *models.Appointment) error

	// -------- Agendamento --------

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Disponibilidade --------

	// ListActiveTimes devolve os horários (HH:MM) das reservas ativas da
	// data, em ordem crescente.
	ListActiveTimes(
		ctx context.Context,
		date time.Time,
	) ([]string, error)

	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
