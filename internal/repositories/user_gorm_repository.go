package repositories

import (
	"errors"
	"fmt"

	"inventario/internal/apperrors"
	"inventario/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// productWithOwner carries a product row plus the owning user id from the pivot.
type productWithOwner struct {
	models.Product
	UsuarioID uint `gorm:"column:usuario_id"`
}

// GetAllWithProducts retrieves every user with their linked products loaded
// through an explicit join on the pivot table.
func (r *GORMUserRepository) GetAllWithProducts() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}

	var rows []productWithOwner
	err := r.db.Table("usuario_produto").
		Select("produtos.*, usuario_produto.usuario_id").
		Joins("INNER JOIN produtos ON usuario_produto.produto_id = produtos.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products for users: %w", err)
	}

	byUser := make(map[uint][]models.Product, len(users))
	for _, row := range rows {
		byUser[row.UsuarioID] = append(byUser[row.UsuarioID], row.Product)
	}
	for i := range users {
		users[i].Produtos = byUser[users[i].ID]
	}
	return users, nil
}

// GetByID retrieves a user by id without loading its products.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByIDWithProducts retrieves a user by id with its linked products loaded.
func (r *GORMUserRepository) GetByIDWithProducts(id uint) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	err = r.db.Table("usuario_produto").
		Select("produtos.*").
		Joins("INNER JOIN produtos ON usuario_produto.produto_id = produtos.id").
		Where("usuario_produto.usuario_id = ?", id).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products for user %d: %w", id, err)
	}
	user.Produtos = products
	return user, nil
}

// FindByCPF retrieves a user by CPF. Returns apperrors.ErrNotFound when no
// user has that CPF.
func (r *GORMUserRepository) FindByCPF(cpf string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "cpf = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with CPF %s: %w", cpf, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by CPF: %w", err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email. Returns apperrors.ErrNotFound when no
// user has that email.
func (r *GORMUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Create inserts a new user.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update persists every field of an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %d for update: %w", user.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a user by id.
func (r *GORMUserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %d for deletion: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
