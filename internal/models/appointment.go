package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment é o registro de um agendamento. Barber/Service são
// desnormalizados no momento da reserva: mudar o preço de um serviço
// depois não altera agendamentos já criados.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID   string `gorm:"size:36;index" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	ServiceID    string  `gorm:"size:36" json:"service_id"`
	ServiceName  string  `gorm:"size:100" json:"service_name"`
	ServicePrice float64 `json:"service_price"`

	// Date é sempre YYYY-MM-DD, Time é um rótulo do catálogo ("2:00 PM").
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:10" json:"time"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	Status string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
