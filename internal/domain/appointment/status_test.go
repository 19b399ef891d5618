package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
)

func TestNormalizeStatus_Canonical(t *testing.T) {
	for _, s := range []Status{
		StatusScheduled, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled,
	} {
		got, ok := NormalizeStatus(string(s))
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestNormalizeStatus_Legacy(t *testing.T) {
	cases := map[string]Status{
		"Agendado":       StatusScheduled,
		"agendado":       StatusScheduled,
		"AGENDADO":       StatusScheduled,
		"Confirmado":     StatusConfirmed,
		"Concluído":      StatusCompleted,
		"concluido":      StatusCompleted,
		"Não Compareceu": StatusNoShow,
		"nao compareceu": StatusNoShow,
		"Cancelado":      StatusCancelled,
	}

	for raw, want := range cases {
		got, ok := NormalizeStatus(raw)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}

	_, ok := NormalizeStatus("pendente")
	assert.False(t, ok)
}

func TestOccupies(t *testing.T) {
	assert.True(t, Occupies(StatusScheduled))
	assert.True(t, Occupies(StatusConfirmed), "confirmed must block the slot")

	assert.False(t, Occupies(StatusCompleted))
	assert.False(t, Occupies(StatusNoShow))
	assert.False(t, Occupies(StatusCancelled))
}

func TestCanTransition(t *testing.T) {
	// modelo livre: qualquer status vai para qualquer outro
	assert.NoError(t, CanTransition(StatusScheduled, StatusConfirmed))
	assert.NoError(t, CanTransition(StatusCancelled, StatusScheduled))
	assert.NoError(t, CanTransition(StatusCompleted, StatusNoShow))

	assert.True(t, httperr.IsBusiness(
		CanTransition(StatusScheduled, StatusScheduled), "invalid_state",
	))
	assert.True(t, httperr.IsBusiness(
		CanTransition(StatusScheduled, Status("pendente")), "invalid_status",
	))
}

func TestTransition_Timestamps(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: "scheduled"}
	require.NoError(t, Transition(ap, StatusCancelled, now))
	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	ap = &models.Appointment{Status: "confirmed"}
	require.NoError(t, Transition(ap, StatusCompleted, now))
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)
}

func TestTransition_LegacyStoredStatus(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: "Agendado"}
	require.NoError(t, Transition(ap, StatusConfirmed, now))
	assert.Equal(t, "confirmed", ap.Status)
}

func TestReschedule(t *testing.T) {
	newDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: "scheduled", ScheduledTime: "08:00"}
	require.NoError(t, Reschedule(ap, newDate, "9:30"))
	assert.Equal(t, newDate, ap.ScheduledDate)
	assert.Equal(t, "09:30", ap.ScheduledTime)

	done := &models.Appointment{Status: "completed"}
	err := Reschedule(done, newDate, "09:30")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
