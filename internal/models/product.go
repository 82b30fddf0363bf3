package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categorias aceitas para produtos da loja.
const (
	CategorySportsShirts = "camisas_deportivas"
	CategoryHairProducts = "productos_cabello"
	CategorySkinProducts = "productos_piel"
)

type Product struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:50;index" json:"category"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`

	InStock bool `json:"in_stock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
