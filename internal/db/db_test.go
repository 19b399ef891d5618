package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestEnsureActiveSlotIndex(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, ensureActiveSlotIndex(gdb))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Duplicatas ativas herdadas do sistema antigo fazem o CREATE UNIQUE INDEX
// falhar; o erro precisa chegar ao chamador em vez de sumir.
func TestEnsureActiveSlotIndex_DuplicateLegacyRows(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	assert.Error(t, ensureActiveSlotIndex(gdb))
	assert.NoError(t, mock.ExpectationsWereMet())
}
