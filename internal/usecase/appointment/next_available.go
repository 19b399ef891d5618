package appointment

import (
	"context"
	"time"

	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
)

// Limite da varredura "próxima data disponível". Garante término mesmo com
// a agenda inteira lotada.
const nextAvailableScanDays = 60

type NextSlot struct {
	Date time.Time `json:"date"`
	Time string    `json:"time"`
}

type FindNextAvailable struct {
	repo domain.Repository
}

func NewFindNextAvailable(repo domain.Repository) *FindNextAvailable {
	return &FindNextAvailable{repo: repo}
}

// Execute varre dia a dia a partir da data informada, pulando fins de
// semana, e devolve a primeira data com vaga junto com o horário mais cedo.
func (uc *FindNextAvailable) Execute(
	ctx context.Context,
	from time.Time,
) (*NextSlot, error) {

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	for i := 0; i < nextAvailableScanDays; i++ {
		if i > 0 {
			day = day.AddDate(0, 0, 1)
		}

		if !domain.IsBusinessDay(day) {
			continue
		}

		occupied, err := uc.repo.ListActiveTimes(ctx, day)
		if err != nil {
			return nil, err
		}

		free := domain.AvailableSlots(day, occupied)
		if len(free) > 0 {
			return &NextSlot{Date: day, Time: free[0]}, nil
		}
	}

	return nil, httperr.ErrBusiness("no_availability")
}
