package repositories

import "inventario/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAllWithProducts() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByIDWithProducts(id uint) (*models.User, error)
	FindByCPF(cpf string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
}
