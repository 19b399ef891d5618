package appointment

import (
	"fmt"
	"time"
)

// ===============================
// Grade de horários
// ===============================

// Expediente da Secretaria: seg-qui 08:00 às 15:30 com bloqueio de almoço
// às 12:30; sexta expediente reduzido até 12:30, sem bloqueio.
const (
	SlotIntervalMinutes = 30

	dayStartMinutes = 8 * 60

	weekdayLastSlot = 15*60 + 30
	fridayLastSlot  = 12*60 + 30

	lunchSlotMinutes = 12*60 + 30
)

// SlotsForDate devolve a grade completa de horários do dia, em ordem
// crescente, no formato HH:MM. Depende apenas do dia da semana; fins de
// semana não têm atendimento e devolvem uma lista vazia.
func SlotsForDate(date time.Time) []string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return []string{}
	case time.Friday:
		return buildSlots(dayStartMinutes, fridayLastSlot, -1)
	default:
		return buildSlots(dayStartMinutes, weekdayLastSlot, lunchSlotMinutes)
	}
}

// IsBusinessDay indica se a data cai em dia útil (seg-sex).
func IsBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func buildSlots(first, last, skip int) []string {
	slots := make([]string, 0, (last-first)/SlotIntervalMinutes+1)

	for cur := first; cur <= last; cur += SlotIntervalMinutes {
		if cur == skip {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}

	return slots
}
