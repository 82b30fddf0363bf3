package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingDay é a configuração de um dia na agenda individual do barbeiro.
type WorkingDay struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "09:00"
	End     string `json:"end"`   // "18:00"
}

// WorkingDays mapeia o nome do dia ("monday".."sunday") para a configuração.
type WorkingDays map[string]WorkingDay

func (w WorkingDays) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

func (w *WorkingDays) Scan(value any) error {
	if value == nil {
		*w = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("working_days: unsupported type %T", value)
	}

	return json.Unmarshal(raw, w)
}

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Role        string `gorm:"size:100" json:"role"`
	Experience  string `gorm:"size:100" json:"experience"`
	Quote       string `gorm:"size:255" json:"quote"`
	Specialties string `gorm:"size:255" json:"specialties"`
	ImageURL    string `gorm:"size:255" json:"image_url"`

	Visible     bool        `json:"visible"`
	WorkingDays WorkingDays `gorm:"type:jsonb" json:"working_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
