package appointment

import (
	"context"
	"time"

	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	if !domain.IsBusinessDay(date) {
		return []string{}, nil
	}

	occupied, err := uc.repo.ListActiveTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(date, occupied), nil
}
