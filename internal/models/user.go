package models

import "time"

// User represents a registered user (table "usuarios").
// Senha holds the bcrypt hash; it has no json tag value so it never leaves the API.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"type:varchar(255);not null"`
	CPF       string    `json:"cpf" gorm:"column:cpf;type:varchar(14);uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Senha     string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Produtos is filled by an explicit join in the repository layer, never by the ORM.
	Produtos []Product `json:"produtos,omitempty" gorm:"-"`
}

// TableName overrides the GORM default pluralization.
func (User) TableName() string {
	return "usuarios"
}
