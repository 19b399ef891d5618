package appointment

import (
	"strconv"
	"strings"
	"time"
)

// ===============================
// Disponibilidade
// ===============================

// NormalizeSlot converte representações frouxas de horário ("8:0", "08:00 ")
// para o formato canônico HH:MM. Entradas que não parseiam voltam apenas
// com os espaços removidos.
func NormalizeSlot(raw string) string {
	s := strings.TrimSpace(raw)

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return s
	}

	hour, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	min, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || min < 0 || min > 59 {
		return s
	}

	var b strings.Builder
	b.Grow(5)
	if hour < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(hour))
	b.WriteByte(':')
	if min < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(min))
	return b.String()
}

// AvailableSlots calcula os horários ainda livres na data: a grade completa
// menos os horários ocupados. A ordem crescente da grade é preservada.
func AvailableSlots(date time.Time, occupied []string) []string {
	full := SlotsForDate(date)
	if len(occupied) == 0 {
		return full
	}

	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[NormalizeSlot(t)] = struct{}{}
	}

	free := make([]string, 0, len(full))
	for _, slot := range full {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return free
}

// IsBookableSlot valida se o horário pertence à grade da data.
func IsBookableSlot(date time.Time, slot string) bool {
	want := NormalizeSlot(slot)
	for _, s := range SlotsForDate(date) {
		if s == want {
			return true
		}
	}
	return false
}
