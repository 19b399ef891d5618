package models

import "time"

// Lista de espera: cidadãos aguardando vaga, atendidos por ordem de chegada
type WaitlistEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	TaxID    string `gorm:"size:14;not null" json:"tax_id"`
	Phone    string `gorm:"size:20;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
