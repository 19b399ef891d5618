package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/dto"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
)

type ListFilter struct {
	Status string
	// Busca por nome ou CPF
	Search string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
	filter ListFilter,
) ([]dto.AppointmentListDTO, error) {

	var wantStatus domain.Status
	if filter.Status != "" {
		st, ok := domain.NormalizeStatus(filter.Status)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		wantStatus = st
	}

	appointments, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		if wantStatus != "" {
			st, _ := domain.NormalizeStatus(ap.Status)
			if st != wantStatus {
				continue
			}
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(ap.FullName), search) &&
			!strings.Contains(ap.TaxID, search) {
			continue
		}

		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Protocol:      ap.Protocol,
			FullName:      ap.FullName,
			TaxID:         ap.TaxID,
			ScheduledDate: ap.ScheduledDate,
			ScheduledTime: ap.ScheduledTime,
			Channel:       ap.Channel,
			Status:        ap.Status,
		})
	}

	return out, nil
}
