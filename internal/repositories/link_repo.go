package repositories

import "inventario/internal/models"

// LinkRepository defines the interface for user-product link data access.
type LinkRepository interface {
	GetAllRows() ([]models.LinkRow, error)
	GetByID(id uint) (*models.UserProduct, error)
	GetCreatedRow(id uint) (*models.LinkCreated, error)
	Exists(userID, productID uint) (bool, error)
	Create(link *models.UserProduct) error
	Delete(id uint) error
	ProductsByUser(userID uint) ([]models.Product, error)
	UsersByProduct(productID uint) ([]models.User, error)
	CountByUser(userID uint) (int64, error)
}
