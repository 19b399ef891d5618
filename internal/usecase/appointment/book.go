package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saobentodouna/rg-agendamento/internal/audit"
	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
	"github.com/saobentodouna/rg-agendamento/internal/notify"
	"github.com/saobentodouna/rg-agendamento/internal/timezone"
	"github.com/saobentodouna/rg-agendamento/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

const (
	ChannelOnline   = "online"
	ChannelInPerson = "in_person"
)

type BookAppointmentInput struct {
	FullName  string
	TaxID     string
	BirthDate string
	Phone     string
	Email     string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	Channel string
}

type BookAppointmentOutput struct {
	Appointment *models.Appointment
	// Grade restante da data, já sem o horário recém-consumido, para o
	// cliente atualizar o cache sem nova consulta.
	RemainingSlots []string
	// Comprovante em texto para o cidadão encaminhar por WhatsApp
	Receipt string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
	tz       string
}

func NewBookAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	notifier notify.Notifier,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
	adminID *uint,
) (*BookAppointmentOutput, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.FullName == "" || in.TaxID == "" || in.BirthDate == "" ||
		in.Phone == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !validators.IsCPFValid(in.TaxID) {
		return nil, httperr.ErrBusiness("invalid_tax_id")
	}

	if _, err := time.Parse("2006-01-02", in.BirthDate); err != nil {
		return nil, httperr.ErrBusiness("invalid_birth_date")
	}

	// --------------------------------------------------
	// 2. Data / horário no fuso da prefeitura
	// --------------------------------------------------
	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsBusinessDay(date) {
		return nil, httperr.ErrBusiness("weekend_date")
	}

	slot := domain.NormalizeSlot(in.Time)
	if !domain.IsBookableSlot(date, slot) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	channel := in.Channel
	if channel != ChannelInPerson {
		channel = ChannelOnline
	}

	// --------------------------------------------------
	// 3. Claim da vaga (recheck + insert na mesma transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		Protocol:      uuid.NewString(),
		FullName:      in.FullName,
		TaxID:         in.TaxID,
		BirthDate:     in.BirthDate,
		Phone:         in.Phone,
		Email:         in.Email,
		ScheduledDate: date,
		ScheduledTime: slot,
		Channel:       channel,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.ReserveSlot(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.notifier.Notify(ctx, notify.Message{
				Text:     "Este horário já foi reservado. Por favor, escolha outro horário.",
				Severity: notify.SeverityWarning,
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Auditoria + aviso
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.Notify(ctx, notify.Message{
		Text:     "Agendamento realizado com sucesso!",
		Severity: notify.SeveritySuccess,
	})

	// --------------------------------------------------
	// 5. Grade atualizada da data
	// --------------------------------------------------
	occupied, err := uc.repo.ListActiveTimes(ctx, date)
	if err != nil {
		// o agendamento já existe; sem a grade o cliente apenas refaz a
		// consulta de disponibilidade
		occupied = []string{slot}
	}

	return &BookAppointmentOutput{
		Appointment:    ap,
		RemainingSlots: domain.AvailableSlots(date, occupied),
		Receipt:        receiptMessage(ap),
	}, nil
}

// receiptMessage monta o texto de confirmação que o cidadão recebe e pode
// encaminhar por WhatsApp.
func receiptMessage(ap *models.Appointment) string {
	return fmt.Sprintf(
		"🗓️ *Agendamento RG - São Bento do Una*\n\n"+
			"Olá %s,\n\n"+
			"Seu agendamento foi realizado com sucesso!\n\n"+
			"📅 Data: %s\n"+
			"⏰ Horário: %s\n"+
			"📍 Local: Secretaria de Assistência Social\n"+
			"🔖 Protocolo: %s\n\n"+
			"*Documentos necessários:*\n"+
			"- Certidão de Nascimento ou Casamento (original)\n"+
			"- Comprovante de residência\n"+
			"- CPF\n\n"+
			"⚠️ *Importante:* Chegue com 30 minutos de antecedência, caso ultrapasse o horário perderá a vez.",
		ap.FullName,
		ap.ScheduledDate.Format("02/01/2006"),
		ap.ScheduledTime,
		ap.Protocol,
	)
}
