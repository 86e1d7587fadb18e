package models

import "time"

// UserProduct is the pivot row linking a user to a product
// (table "usuario_produto"). The (usuario_id, produto_id) pair is unique.
type UserProduct struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UsuarioID uint      `json:"usuario_id" gorm:"column:usuario_id;not null;uniqueIndex:idx_usuario_produto"`
	ProdutoID uint      `json:"produto_id" gorm:"column:produto_id;not null;uniqueIndex:idx_usuario_produto"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the GORM default pluralization.
func (UserProduct) TableName() string {
	return "usuario_produto"
}

// LinkRow is a link joined with display fields from both endpoints,
// as returned by the relation listing.
type LinkRow struct {
	ID           uint      `json:"id"`
	UsuarioNome  string    `json:"usuario_nome" gorm:"column:usuario_nome"`
	UsuarioEmail string    `json:"usuario_email" gorm:"column:usuario_email"`
	ProdutoNome  string    `json:"produto_nome" gorm:"column:produto_nome"`
	ProdutoPreco float64   `json:"produto_preco" gorm:"column:produto_preco"`
	CreatedAt    time.Time `json:"created_at"`
}

// LinkCreated is the denormalized view returned right after a link is created.
type LinkCreated struct {
	ID          uint   `json:"id"`
	UsuarioNome string `json:"usuario_nome" gorm:"column:usuario_nome"`
	ProdutoNome string `json:"produto_nome" gorm:"column:produto_nome"`
}
