package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Protocol      string    `json:"protocol"`
	FullName      string    `json:"full_name"`
	TaxID         string    `json:"tax_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	Channel       string    `json:"channel"`
	Status        string    `json:"status"`
}
