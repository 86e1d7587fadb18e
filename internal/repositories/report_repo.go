package repositories

import "inventario/internal/models"

// ReportRepository defines the interface for the read-only aggregate reports.
// Every method is a pure function of the current store contents.
type ReportRepository interface {
	UsersRankedByProductCount() ([]models.UserProductCount, error)
	MostExpensiveProductPerUser() ([]models.UserTopProduct, error)
	ProductCountByPriceBand() ([]models.PriceBandCount, error)
}
