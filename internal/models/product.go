package models

import "time"

// Product represents a product (table "produtos").
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"type:varchar(255);not null"`
	Preco     float64   `json:"preco" gorm:"type:decimal(10,2);not null"`
	Descricao *string   `json:"descricao" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Usuarios is filled by an explicit join in the repository layer, never by the ORM.
	Usuarios []User `json:"usuarios,omitempty" gorm:"-"`
}

// TableName overrides the GORM default pluralization.
func (Product) TableName() string {
	return "produtos"
}
