package services

import (
	"errors"
	"fmt"
	"time"

	"inventario/internal/apperrors"
	"inventario/internal/cache"
	"inventario/internal/models"
	"inventario/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserListCacheKey is the cache key for the full user list with nested
// products. Every user mutation invalidates it before the response returns.
const UserListCacheKey = "usuarios_lista_completa"

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Nome  *string
	CPF   *string
	Email *string
	Senha *string
}

// UserService handles business logic related to users: CPF/email uniqueness,
// senha hashing at the write boundary, the deletion guard and list caching.
type UserService struct {
	repo    repositories.UserRepository
	links   repositories.LinkRepository
	cache   *cache.Cache
	listTTL time.Duration
	events  EventPublisher
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, links repositories.LinkRepository, c *cache.Cache, listTTL time.Duration, events EventPublisher) *UserService {
	return &UserService{
		repo:    repo,
		links:   links,
		cache:   c,
		listTTL: listTTL,
		events:  events,
	}
}

// ListTTL returns the configured lifetime of the cached user list.
func (s *UserService) ListTTL() time.Duration {
	return s.listTTL
}

// ListUsers returns every user with nested products, served from the cache
// when a live entry exists. The boolean reports whether the cache answered.
func (s *UserService) ListUsers() ([]models.User, bool, error) {
	value, hit, err := s.cache.GetOrCompute(UserListCacheKey, s.listTTL, func() (interface{}, error) {
		return s.repo.GetAllWithProducts()
	})
	if err != nil {
		return nil, false, err
	}
	return value.([]models.User), hit, nil
}

// GetUser returns a single user with its linked products.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.repo.GetByIDWithProducts(id)
}

// CreateUser validates uniqueness, hashes the senha and persists the user.
// The cached user list is invalidated before returning.
func (s *UserService) CreateUser(user *models.User) error {
	if err := s.checkUniqueness(user.CPF, user.Email, 0); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Senha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash senha: %w", err)
	}
	user.Senha = string(hashed)

	if err := s.repo.Create(user); err != nil {
		return err
	}

	s.cache.Invalidate(UserListCacheKey)
	publishEvent(s.events, "usuario.criado", map[string]interface{}{
		"id":    user.ID,
		"nome":  user.Nome,
		"email": user.Email,
	})
	return nil
}

// UpdateUser applies a partial update. Uniqueness checks exclude the user's
// own row, so resubmitting the current CPF or email is not a conflict.
func (s *UserService) UpdateUser(id uint, upd UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	var cpf, email string
	if upd.CPF != nil {
		cpf = *upd.CPF
	}
	if upd.Email != nil {
		email = *upd.Email
	}
	if err := s.checkUniqueness(cpf, email, id); err != nil {
		return nil, err
	}

	if upd.Nome != nil {
		user.Nome = *upd.Nome
	}
	if upd.CPF != nil {
		user.CPF = *upd.CPF
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Senha != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash senha: %w", err)
		}
		user.Senha = string(hashed)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	s.cache.Invalidate(UserListCacheKey)
	publishEvent(s.events, "usuario.atualizado", map[string]interface{}{
		"id":    user.ID,
		"nome":  user.Nome,
		"email": user.Email,
	})
	return user, nil
}

// DeleteUser removes a user. A user with linked products cannot be deleted.
func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	count, err := s.links.CountByUser(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("user %d has %d linked products: %w", id, count, apperrors.ErrConflict)
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.cache.Invalidate(UserListCacheKey)
	publishEvent(s.events, "usuario.removido", map[string]interface{}{
		"id": id,
	})
	return nil
}

// checkUniqueness verifies that cpf and email (when non-empty) are not taken
// by another user. excludeID skips the row being updated.
func (s *UserService) checkUniqueness(cpf, email string, excludeID uint) error {
	verr := &apperrors.ValidationError{}

	if cpf != "" {
		existing, err := s.repo.FindByCPF(cpf)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			verr.Add("cpf", "Este CPF já está cadastrado no sistema.")
		}
	}

	if email != "" {
		existing, err := s.repo.FindByEmail(email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			verr.Add("email", "Este e-mail já está cadastrado no sistema.")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
