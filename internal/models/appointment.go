package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Protocolo entregue ao cidadão no comprovante
	Protocol string `gorm:"size:36;uniqueIndex;not null" json:"protocol"`

	FullName  string `gorm:"size:100;not null" json:"full_name"`
	TaxID     string `gorm:"size:14;not null;index" json:"tax_id"`
	BirthDate string `gorm:"size:10;not null" json:"birth_date"`
	Phone     string `gorm:"size:20;not null" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`

	ScheduledDate time.Time `gorm:"type:date;index" json:"scheduled_date"`
	ScheduledTime string    `gorm:"size:5;not null" json:"scheduled_time"`

	Channel string `gorm:"size:20;default:'online'" json:"channel"`
	Status  string `gorm:"size:20;default:'scheduled';index" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
