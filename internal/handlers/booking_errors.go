package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
)

var bookingErrorMessages = map[string]string{
	"missing_fields":        "Preencha todos os campos obrigatórios.",
	"invalid_tax_id":        "CPF inválido.",
	"invalid_birth_date":    "Data de nascimento inválida.",
	"invalid_date":          "Data inválida.",
	"weekend_date":          "Não há atendimento aos sábados e domingos.",
	"invalid_time":          "Horário fora da grade de atendimento.",
	"invalid_status":        "Status inválido.",
	"invalid_state":         "Operação não permitida para o status atual.",
	"appointment_not_found": "Agendamento não encontrado.",
	"no_availability":       "Não há datas disponíveis no momento.",
}

// writeBusinessError traduz os erros de negócio dos use cases para HTTP.
// Conflito de vaga vira 409 para o cliente recarregar a grade.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Ocorreu um erro. Por favor, tente novamente.")
		return
	}

	if be.Code == "slot_unavailable" {
		httperr.Conflict(c, be.Code, "Este horário já foi reservado. Por favor, escolha outro horário.")
		return
	}

	msg, ok := bookingErrorMessages[be.Code]
	if !ok {
		httperr.Internal(c, be.Code, "Ocorreu um erro. Por favor, tente novamente.")
		return
	}

	// agenda esgotada não é requisição malformada
	if be.Code == "appointment_not_found" || be.Code == "no_availability" {
		httperr.NotFound(c, be.Code, msg)
		return
	}

	httperr.BadRequest(c, be.Code, msg)
}
