package appointment

import (
	"strings"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses são os status que seguram a vaga do horário.
// Concluído, não compareceu e cancelado liberam o horário imediatamente.
var ActiveStatuses = []string{
	string(StatusScheduled),
	string(StatusConfirmed),
}

func InitialStatus() Status {
	return StatusScheduled
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// Occupies indica se o status ainda bloqueia o horário agendado.
func Occupies(s Status) bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// legacyStatuses cobre as grafias gravadas pelo sistema antigo, que misturava
// caixa e acentuação ("Agendado", "agendado", "Concluído", "Não Compareceu").
var legacyStatuses = map[string]Status{
	"agendado":        StatusScheduled,
	"confirmado":      StatusConfirmed,
	"concluido":       StatusCompleted,
	"concluído":       StatusCompleted,
	"nao compareceu":  StatusNoShow,
	"não compareceu":  StatusNoShow,
	"nao_compareceu":  StatusNoShow,
	"cancelado":       StatusCancelled,
}

// NormalizeStatus aceita o valor canônico ou qualquer grafia legada e
// devolve o status da enumeração fechada.
func NormalizeStatus(raw string) (Status, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))

	if IsValid(Status(folded)) {
		return Status(folded), true
	}

	if s, ok := legacyStatuses[folded]; ok {
		return s, true
	}

	return "", false
}

// CanTransition valida a troca de status feita pelo balcão administrativo.
// O modelo não é uma máquina estritamente progressiva: qualquer status pode
// ir para qualquer outro, apenas trocas nulas ou valores fora da enumeração
// são recusados.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
