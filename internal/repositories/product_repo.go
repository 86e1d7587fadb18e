package repositories

import "inventario/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete removes the product and every link referencing it in one
	// transaction.
	Delete(id uint) error
}
