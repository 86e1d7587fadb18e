package services

import (
	"inventario/internal/models"
	"inventario/internal/repositories"
)

// ReportService exposes the three read-only aggregate reports. Each call is a
// pure function of the current store contents; nothing is cached here.
type ReportService struct {
	repo repositories.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(repo repositories.ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// UsersRankedByProductCount lists every user with its product count,
// descending by count.
func (s *ReportService) UsersRankedByProductCount() ([]models.UserProductCount, error) {
	return s.repo.UsersRankedByProductCount()
}

// MostExpensiveProductPerUser lists each user's highest-priced product(s),
// descending by price.
func (s *ReportService) MostExpensiveProductPerUser() ([]models.UserTopProduct, error) {
	return s.repo.MostExpensiveProductPerUser()
}

// ProductCountByPriceBand counts products per price band, ascending by band.
func (s *ReportService) ProductCountByPriceBand() ([]models.PriceBandCount, error) {
	return s.repo.ProductCountByPriceBand()
}
