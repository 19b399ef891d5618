package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/saobentodouna/rg-agendamento/internal/domain/appointment"
	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Admissão
// --------------------------------------------------

func (r *AppointmentGormRepository) ReserveSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// FOR UPDATE não aceita agregação, então a recontagem tranca as
		// linhas conflitantes pelos ids em vez de um count
		var ids []uint
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"scheduled_date = ? AND scheduled_time = ? AND status IN ?",
				ap.ScheduledDate, ap.ScheduledTime, domain.ActiveStatuses,
			).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		if err := tx.Create(ap).Error; err != nil {
			// duas admissões passaram pela recontagem ao mesmo tempo:
			// o índice único de vaga ativa barra a segunda
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}

		return nil
	})
}

func (r *AppointmentGormRepository) MoveSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ids []uint
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"scheduled_date = ? AND scheduled_time = ? AND status IN ? AND id <> ?",
				ap.ScheduledDate, ap.ScheduledTime, domain.ActiveStatuses, ap.ID,
			).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		if err := tx.Save(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Agendamento
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveTimes(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"scheduled_date = ? AND status IN ?",
			date, domain.ActiveStatuses,
		).
		Order("scheduled_time ASC").
		Pluck("scheduled_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Where(
			"scheduled_date >= ? AND scheduled_date < ?",
			start, end,
		).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
