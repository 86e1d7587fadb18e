package services_test

import (
	"errors"
	"testing"

	"inventario/internal/apperrors"
	"inventario/internal/models"
	"inventario/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRelationService(links *MockLinkRepository, users *MockUserRepository, products *MockProductRepository) *services.RelationService {
	return services.NewRelationService(links, users, products, nil)
}

func TestRelationService_Link(t *testing.T) {
	links := new(MockLinkRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	service := newRelationService(links, users, products)

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1, Nome: "João"}, nil).Once()
	products.On("GetByID", uint(2)).Return(&models.Product{ID: 2, Nome: "Teclado"}, nil).Once()
	links.On("Exists", uint(1), uint(2)).Return(false, nil).Once()
	links.On("Create", mock.AnythingOfType("*models.UserProduct")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.UserProduct).ID = 10
	}).Once()
	links.On("GetCreatedRow", uint(10)).Return(&models.LinkCreated{ID: 10, UsuarioNome: "João", ProdutoNome: "Teclado"}, nil).Once()

	row, err := service.Link(1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(10), row.ID)
	assert.Equal(t, "João", row.UsuarioNome)
	assert.Equal(t, "Teclado", row.ProdutoNome)
	links.AssertExpectations(t)
	users.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestRelationService_Link_UserNotFound(t *testing.T) {
	links := new(MockLinkRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	service := newRelationService(links, users, products)

	users.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := service.Link(99, 2)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	links.AssertNotCalled(t, "Create", mock.Anything)
	users.AssertExpectations(t)
}

func TestRelationService_Link_ProductNotFound(t *testing.T) {
	links := new(MockLinkRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	service := newRelationService(links, users, products)

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil).Once()
	products.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := service.Link(1, 99)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	links.AssertNotCalled(t, "Create", mock.Anything)
	products.AssertExpectations(t)
}

func TestRelationService_Link_Duplicate(t *testing.T) {
	links := new(MockLinkRepository)
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	service := newRelationService(links, users, products)

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil).Once()
	products.On("GetByID", uint(2)).Return(&models.Product{ID: 2}, nil).Once()
	links.On("Exists", uint(1), uint(2)).Return(true, nil).Once()

	_, err := service.Link(1, 2)

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	links.AssertNotCalled(t, "Create", mock.Anything)
	links.AssertExpectations(t)
}

func TestRelationService_Unlink(t *testing.T) {
	links := new(MockLinkRepository)
	service := newRelationService(links, new(MockUserRepository), new(MockProductRepository))

	links.On("GetByID", uint(10)).Return(&models.UserProduct{ID: 10}, nil).Once()
	links.On("Delete", uint(10)).Return(nil).Once()

	assert.NoError(t, service.Unlink(10))
	links.AssertExpectations(t)
}

func TestRelationService_Unlink_NotFound(t *testing.T) {
	links := new(MockLinkRepository)
	service := newRelationService(links, new(MockUserRepository), new(MockProductRepository))

	links.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := service.Unlink(99)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	links.AssertNotCalled(t, "Delete", mock.Anything)
	links.AssertExpectations(t)
}

func TestRelationService_ProductsForUser(t *testing.T) {
	links := new(MockLinkRepository)
	users := new(MockUserRepository)
	service := newRelationService(links, users, new(MockProductRepository))

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1, Nome: "João"}, nil).Once()
	links.On("ProductsByUser", uint(1)).Return([]models.Product{{ID: 2, Nome: "Teclado"}}, nil).Once()

	user, products, err := service.ProductsForUser(1)

	assert.NoError(t, err)
	assert.Equal(t, "João", user.Nome)
	assert.Len(t, products, 1)
	links.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestRelationService_UsersForProduct_NotFound(t *testing.T) {
	links := new(MockLinkRepository)
	products := new(MockProductRepository)
	service := newRelationService(links, new(MockUserRepository), products)

	products.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := service.UsersForProduct(99)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	links.AssertNotCalled(t, "UsersByProduct", mock.Anything)
	products.AssertExpectations(t)
}
