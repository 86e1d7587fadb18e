package services

import (
	"inventario/internal/models"
	"inventario/internal/repositories"
)

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Nome      *string
	Preco     *float64
	Descricao *string
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	publishEvent(s.events, "produto.criado", map[string]interface{}{
		"id":    product.ID,
		"nome":  product.Nome,
		"preco": product.Preco,
	})
	return nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(id uint, upd ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Nome != nil {
		product.Nome = *upd.Nome
	}
	if upd.Preco != nil {
		product.Preco = *upd.Preco
	}
	if upd.Descricao != nil {
		product.Descricao = upd.Descricao
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	publishEvent(s.events, "produto.atualizado", map[string]interface{}{
		"id":    product.ID,
		"nome":  product.Nome,
		"preco": product.Preco,
	})
	return product, nil
}

// DeleteProduct removes a product; its links go with it in the same
// transaction.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.events, "produto.removido", map[string]interface{}{
		"id": id,
	})
	return nil
}
