package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/saobentodouna/rg-agendamento/internal/config"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
)

// SuspensionMiddleware bloqueia o atendimento público quando a chave geral
// de suspensão está ligada. O balcão administrativo continua acessível.
func SuspensionMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SuspensionActive {
			httperr.Unavailable(c, "service_suspended", cfg.SuspensionMessage)
			c.Abort()
			return
		}

		c.Next()
	}
}
