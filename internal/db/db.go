package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/saobentodouna/rg-agendamento/internal/config"
	"github.com/saobentodouna/rg-agendamento/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Appointment{},
		&models.WaitlistEntry{},
		&models.Document{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// O sistema antigo gravava status em português com caixa inconsistente.
	db.Exec(`
        UPDATE appointments SET status = 'scheduled' WHERE LOWER(status) = 'agendado';
    `)
	db.Exec(`
        UPDATE appointments SET status = 'confirmed' WHERE LOWER(status) = 'confirmado';
    `)
	db.Exec(`
        UPDATE appointments SET status = 'completed' WHERE LOWER(status) IN ('concluido', 'concluído');
    `)
	db.Exec(`
        UPDATE appointments SET status = 'no_show' WHERE LOWER(status) IN ('nao compareceu', 'não compareceu');
    `)
	db.Exec(`
        UPDATE appointments SET status = 'cancelled' WHERE LOWER(status) = 'cancelado';
    `)

	// Sem o índice de vaga ativa o serviço não pode subir: é ele que fecha
	// a corrida do verifica-e-insere. Falha aqui normalmente indica reservas
	// ativas duplicadas herdadas do sistema antigo, que precisam de limpeza
	// manual antes do deploy.
	if err := ensureActiveSlotIndex(db); err != nil {
		log.Fatalf("failed to create active slot index: %v", err)
	}

	seedAdmin(db, cfg)

	return db
}

// ensureActiveSlotIndex cria a restrição de uma reserva ativa por par
// (data, horário).
func ensureActiveSlotIndex(db *gorm.DB) error {
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (scheduled_date, scheduled_time)
        WHERE status IN ('scheduled', 'confirmed')
    `).Error
}

func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.AdminUser{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := models.AdminUser{
		Name:         "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
	}
}
