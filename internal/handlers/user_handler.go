package handlers

import (
	"errors"
	"fmt"
	"log"

	"inventario/internal/apperrors"
	"inventario/internal/models"
	"inventario/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Nome  string `json:"nome" validate:"required,max=255"`
	CPF   string `json:"cpf" validate:"required,max=14"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// UpdateUserRequest is the payload for a partial user update. Absent fields
// are left untouched; present-but-empty fields are rejected.
type UpdateUserRequest struct {
	Nome  *string `json:"nome" validate:"omitempty,min=1,max=255"`
	CPF   *string `json:"cpf" validate:"omitempty,min=1,max=14"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha *string `json:"senha" validate:"omitempty,min=6"`
}

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/usuarios")
	users.Get("/", h.HandleList)
	users.Get("/:id", h.HandleGet)
	users.Post("/", h.HandleCreate)
	users.Put("/:id", h.HandleUpdate)
	users.Delete("/:id", h.HandleDelete)
}

// HandleList returns every user with nested products. The list is served
// from the process-local cache while the TTL holds.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, cached, err := h.service.ListUsers()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return respondInternal(c, "Erro ao listar usuários")
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"data":             users,
		"cached":           cached,
		"cache_expires_in": fmt.Sprintf("%d segundos", int(h.service.ListTTL().Seconds())),
	})
}

// HandleGet returns a single user with its products.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado", "")
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Usuário não encontrado", "")
		}
		log.Printf("Error getting user %d: %v", id, err)
		return respondInternal(c, "Erro ao buscar usuário")
	}
	return respondData(c, user)
}

// HandleCreate creates a new user.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, validationMessages(err))
	}

	user := &models.User{
		Nome:  req.Nome,
		CPF:   req.CPF,
		Email: req.Email,
		Senha: req.Senha,
	}
	if err := h.service.CreateUser(user); err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			return respondValidation(c, verr.Errors)
		}
		log.Printf("Error creating user: %v", err)
		return respondInternal(c, "Erro ao criar usuário")
	}

	return respondMessage(c, fiber.StatusCreated, "Usuário criado com sucesso",
		"O usuário foi criado e está disponível no sistema", user)
}

// HandleUpdate applies a partial update to a user.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado", "")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, validationMessages(err))
	}

	user, err := h.service.UpdateUser(id, services.UserUpdate{
		Nome:  req.Nome,
		CPF:   req.CPF,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			return respondValidation(c, verr.Errors)
		case errors.Is(err, apperrors.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Usuário não encontrado",
				fmt.Sprintf("O usuário com ID %d não foi encontrado no sistema", id))
		default:
			log.Printf("Error updating user %d: %v", id, err)
			return respondInternal(c, "Erro ao atualizar usuário")
		}
	}

	return respondMessage(c, fiber.StatusOK, "Usuário atualizado com sucesso",
		"As informações do usuário foram atualizadas no sistema", user)
}

// HandleDelete removes a user. Users with linked products are protected.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado", "")
	}

	if err := h.service.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Usuário não encontrado",
				fmt.Sprintf("O usuário com ID %d não foi encontrado no sistema", id))
		case errors.Is(err, apperrors.ErrConflict):
			return respondError(c, fiber.StatusConflict, "Não é possível excluir o usuário",
				"Este usuário possui produtos associados. Remova os produtos primeiro.")
		default:
			log.Printf("Error deleting user %d: %v", id, err)
			return respondInternal(c, "Erro ao excluir usuário")
		}
	}

	return respondMessage(c, fiber.StatusOK, "Usuário excluído com sucesso",
		"O usuário foi removido permanentemente do sistema", nil)
}
