package services

import (
	"fmt"

	"inventario/internal/apperrors"
	"inventario/internal/models"
	"inventario/internal/repositories"
)

// RelationService owns the user-product link invariants: both endpoints must
// exist and a (user, product) pair may only be linked once.
type RelationService struct {
	links    repositories.LinkRepository
	users    repositories.UserRepository
	products repositories.ProductRepository
	events   EventPublisher
}

// NewRelationService creates a new RelationService.
func NewRelationService(links repositories.LinkRepository, users repositories.UserRepository, products repositories.ProductRepository, events EventPublisher) *RelationService {
	return &RelationService{
		links:    links,
		users:    users,
		products: products,
		events:   events,
	}
}

// ListLinks returns every link with display fields from both sides.
func (s *RelationService) ListLinks() ([]models.LinkRow, error) {
	return s.links.GetAllRows()
}

// Link associates a user with a product and returns the denormalized view of
// the new link.
func (s *RelationService) Link(userID, productID uint) (*models.LinkCreated, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}

	exists, err := s.links.Exists(userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("user %d is already linked to product %d: %w", userID, productID, apperrors.ErrConflict)
	}

	link := &models.UserProduct{UsuarioID: userID, ProdutoID: productID}
	if err := s.links.Create(link); err != nil {
		return nil, err
	}

	row, err := s.links.GetCreatedRow(link.ID)
	if err != nil {
		return nil, err
	}

	publishEvent(s.events, "relacionamento.criado", map[string]interface{}{
		"id":         link.ID,
		"usuario_id": userID,
		"produto_id": productID,
	})
	return row, nil
}

// Unlink deletes a link by id. A repeated call for the same id reports not
// found, not success.
func (s *RelationService) Unlink(id uint) error {
	if _, err := s.links.GetByID(id); err != nil {
		return err
	}
	if err := s.links.Delete(id); err != nil {
		return err
	}
	publishEvent(s.events, "relacionamento.removido", map[string]interface{}{
		"id": id,
	})
	return nil
}

// ProductsForUser returns a user and its linked products.
func (s *RelationService) ProductsForUser(userID uint) (*models.User, []models.Product, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.links.ProductsByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, products, nil
}

// UsersForProduct returns a product and its linked users.
func (s *RelationService) UsersForProduct(productID uint) (*models.Product, []models.User, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	users, err := s.links.UsersByProduct(productID)
	if err != nil {
		return nil, nil, err
	}
	return product, users, nil
}
