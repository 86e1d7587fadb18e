package repositories_test

import (
	"errors"
	"testing"

	"inventario/internal/apperrors"
	"inventario/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkRepository_ExistsAndCount(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMLinkRepository(db)

	user := mustCreateUser(t, db, "João", "1", "j@example.com")
	p1 := mustCreateProduct(t, db, "Mouse", 89.90)
	p2 := mustCreateProduct(t, db, "Teclado", 299.99)
	mustLink(t, db, user.ID, p1.ID)

	exists, err := repo.Exists(user.ID, p1.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(user.ID, p2.ID)
	assert.NoError(t, err)
	assert.False(t, exists)

	count, err := repo.CountByUser(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLinkRepository_GetAllRows(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMLinkRepository(db)

	user := mustCreateUser(t, db, "João", "1", "j@example.com")
	product := mustCreateProduct(t, db, "Mouse", 89.90)
	mustLink(t, db, user.ID, product.ID)

	rows, err := repo.GetAllRows()
	assert.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "João", rows[0].UsuarioNome)
	assert.Equal(t, "j@example.com", rows[0].UsuarioEmail)
	assert.Equal(t, "Mouse", rows[0].ProdutoNome)
	assert.Equal(t, 89.90, rows[0].ProdutoPreco)
}

func TestLinkRepository_Delete_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMLinkRepository(db)

	err := repo.Delete(99)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestProductRepository_DeleteCascadesLinks(t *testing.T) {
	db := setupDB(t)
	linkRepo := repositories.NewGORMLinkRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	u1 := mustCreateUser(t, db, "João", "1", "j@example.com")
	u2 := mustCreateUser(t, db, "Maria", "2", "m@example.com")
	product := mustCreateProduct(t, db, "Mouse", 89.90)
	mustLink(t, db, u1.ID, product.ID)
	mustLink(t, db, u2.ID, product.ID)

	require.NoError(t, productRepo.Delete(product.ID))

	users, err := linkRepo.UsersByProduct(product.ID)
	assert.NoError(t, err)
	assert.Empty(t, users)

	count, err := linkRepo.CountByUser(u1.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
