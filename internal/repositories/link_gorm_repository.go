package repositories

import (
	"errors"
	"fmt"

	"inventario/internal/apperrors"
	"inventario/internal/models"

	"gorm.io/gorm"
)

// GORMLinkRepository is a GORM implementation of LinkRepository.
type GORMLinkRepository struct {
	db *gorm.DB
}

// NewGORMLinkRepository creates a new instance of GORMLinkRepository.
func NewGORMLinkRepository(db *gorm.DB) *GORMLinkRepository {
	return &GORMLinkRepository{
		db: db,
	}
}

// GetAllRows retrieves every link joined with display fields from both sides,
// in insertion order.
func (r *GORMLinkRepository) GetAllRows() ([]models.LinkRow, error) {
	rows := make([]models.LinkRow, 0)
	err := r.db.Table("usuario_produto").
		Select(`usuario_produto.id,
			usuarios.nome AS usuario_nome,
			usuarios.email AS usuario_email,
			produtos.nome AS produto_nome,
			produtos.preco AS produto_preco,
			usuario_produto.created_at`).
		Joins("INNER JOIN usuarios ON usuario_produto.usuario_id = usuarios.id").
		Joins("INNER JOIN produtos ON usuario_produto.produto_id = produtos.id").
		Order("usuario_produto.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return rows, nil
}

// GetByID retrieves a link by its id.
func (r *GORMLinkRepository) GetByID(id uint) (*models.UserProduct, error) {
	var link models.UserProduct
	if err := r.db.First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("link with ID %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get link by ID %d: %w", id, err)
	}
	return &link, nil
}

// GetCreatedRow retrieves the denormalized view of a freshly created link.
func (r *GORMLinkRepository) GetCreatedRow(id uint) (*models.LinkCreated, error) {
	var row models.LinkCreated
	err := r.db.Table("usuario_produto").
		Select("usuario_produto.id, usuarios.nome AS usuario_nome, produtos.nome AS produto_nome").
		Joins("INNER JOIN usuarios ON usuario_produto.usuario_id = usuarios.id").
		Joins("INNER JOIN produtos ON usuario_produto.produto_id = produtos.id").
		Where("usuario_produto.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load created link %d: %w", id, err)
	}
	if row.ID == 0 {
		return nil, fmt.Errorf("link with ID %d: %w", id, apperrors.ErrNotFound)
	}
	return &row, nil
}

// Exists reports whether a link for the (user, product) pair already exists.
func (r *GORMLinkRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserProduct{}).
		Where("usuario_id = ? AND produto_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check link existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new link.
func (r *GORMLinkRepository) Create(link *models.UserProduct) error {
	if err := r.db.Create(link).Error; err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// Delete removes a link by id.
func (r *GORMLinkRepository) Delete(id uint) error {
	res := r.db.Delete(&models.UserProduct{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("link with ID %d for deletion: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// ProductsByUser retrieves the products linked to a user.
func (r *GORMLinkRepository) ProductsByUser(userID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.Table("usuario_produto").
		Select("produtos.*").
		Joins("INNER JOIN produtos ON usuario_produto.produto_id = produtos.id").
		Where("usuario_produto.usuario_id = ?", userID).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for user %d: %w", userID, err)
	}
	return products, nil
}

// UsersByProduct retrieves the users linked to a product.
func (r *GORMLinkRepository) UsersByProduct(productID uint) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.Table("usuario_produto").
		Select("usuarios.*").
		Joins("INNER JOIN usuarios ON usuario_produto.usuario_id = usuarios.id").
		Where("usuario_produto.produto_id = ?", productID).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users for product %d: %w", productID, err)
	}
	return users, nil
}

// CountByUser counts the links anchored on a user. The user deletion guard
// relies on it.
func (r *GORMLinkRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserProduct{}).
		Where("usuario_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count links for user %d: %w", userID, err)
	}
	return count, nil
}
