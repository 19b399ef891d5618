package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reconhece a violação da restrição de unicidade do
// Postgres. É assim que o banco denuncia duas admissões correndo pelo mesmo
// horário: a segunda escrita falha e vira conflito de vaga para o chamador.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
