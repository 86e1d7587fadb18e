package repositories

import (
	"fmt"

	"inventario/internal/models"

	"gorm.io/gorm"
)

// GORMReportRepository computes the aggregate reports with raw SQL. The
// queries are portable across the sqlite and postgres drivers.
type GORMReportRepository struct {
	db *gorm.DB
}

// NewGORMReportRepository creates a new instance of GORMReportRepository.
func NewGORMReportRepository(db *gorm.DB) *GORMReportRepository {
	return &GORMReportRepository{
		db: db,
	}
}

// UsersRankedByProductCount counts distinct linked products per user, users
// without products included. The secondary id sort keeps tie order stable
// for a given snapshot.
func (r *GORMReportRepository) UsersRankedByProductCount() ([]models.UserProductCount, error) {
	rows := make([]models.UserProductCount, 0)
	err := r.db.Raw(`
		SELECT
			u.id,
			u.nome,
			u.email,
			COUNT(up.produto_id) AS total_produtos
		FROM usuarios u
		LEFT JOIN usuario_produto up ON u.id = up.usuario_id
		GROUP BY u.id, u.nome, u.email
		ORDER BY total_produtos DESC, u.id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank users by product count: %w", err)
	}
	return rows, nil
}

// MostExpensiveProductPerUser returns, for each user with at least one
// product, the product(s) at that user's maximum price. Ties at the maximum
// all appear.
func (r *GORMReportRepository) MostExpensiveProductPerUser() ([]models.UserTopProduct, error) {
	rows := make([]models.UserTopProduct, 0)
	err := r.db.Raw(`
		SELECT
			u.id AS usuario_id,
			u.nome AS usuario_nome,
			p.id AS produto_id,
			p.nome AS produto_nome,
			p.preco
		FROM usuarios u
		INNER JOIN usuario_produto up ON u.id = up.usuario_id
		INNER JOIN produtos p ON up.produto_id = p.id
		INNER JOIN (
			SELECT
				up2.usuario_id,
				MAX(p2.preco) AS max_preco
			FROM usuario_produto up2
			INNER JOIN produtos p2 ON up2.produto_id = p2.id
			GROUP BY up2.usuario_id
		) max_precos ON u.id = max_precos.usuario_id AND p.preco = max_precos.max_preco
		ORDER BY p.preco DESC, u.id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find most expensive product per user: %w", err)
	}
	return rows, nil
}

// ProductCountByPriceBand buckets products into five half-open price bands
// and counts per band. Bands without products produce no row.
func (r *GORMReportRepository) ProductCountByPriceBand() ([]models.PriceBandCount, error) {
	rows := make([]models.PriceBandCount, 0)
	err := r.db.Raw(`
		SELECT
			faixa,
			COUNT(*) AS quantidade
		FROM (
			SELECT
				CASE
					WHEN preco >= 0 AND preco < 50 THEN 'R$ 0,00 - R$ 50,00'
					WHEN preco >= 50 AND preco < 100 THEN 'R$ 50,00 - R$ 100,00'
					WHEN preco >= 100 AND preco < 200 THEN 'R$ 100,00 - R$ 200,00'
					WHEN preco >= 200 AND preco < 500 THEN 'R$ 200,00 - R$ 500,00'
					WHEN preco >= 500 THEN 'R$ 500,00+'
				END AS faixa,
				CASE
					WHEN preco >= 0 AND preco < 50 THEN 1
					WHEN preco >= 50 AND preco < 100 THEN 2
					WHEN preco >= 100 AND preco < 200 THEN 3
					WHEN preco >= 200 AND preco < 500 THEN 4
					WHEN preco >= 500 THEN 5
				END AS ordem
			FROM produtos
		) AS faixas
		GROUP BY faixa, ordem
		ORDER BY ordem
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count products by price band: %w", err)
	}
	return rows, nil
}
