package models

import "time"

type Document struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FileName    string `gorm:"size:255;not null" json:"file_name"`
	StorageKey  string `gorm:"size:255;uniqueIndex;not null" json:"storage_key"`
	ContentType string `gorm:"size:100" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`

	CreatedAt time.Time `json:"created_at"`
}
