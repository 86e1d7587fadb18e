package models

// UserProductCount is one row of the "usuarios com mais produtos" report.
// Users without products appear with TotalProdutos zero.
type UserProductCount struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	TotalProdutos int64  `json:"total_produtos" gorm:"column:total_produtos"`
}

// UserTopProduct is one row of the "produto mais caro por usuario" report.
// A user with several products tied at the maximum price yields one row per product.
type UserTopProduct struct {
	UsuarioID   uint    `json:"usuario_id" gorm:"column:usuario_id"`
	UsuarioNome string  `json:"usuario_nome" gorm:"column:usuario_nome"`
	ProdutoID   uint    `json:"produto_id" gorm:"column:produto_id"`
	ProdutoNome string  `json:"produto_nome" gorm:"column:produto_nome"`
	Preco       float64 `json:"preco"`
}

// PriceBandCount is one row of the "produtos por faixa de preco" report.
// Bands with no products are not emitted.
type PriceBandCount struct {
	Faixa      string `json:"faixa"`
	Quantidade int64  `json:"quantidade"`
}
