package handlers

import (
	"errors"
	"fmt"
	"log"

	"inventario/internal/apperrors"
	"inventario/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateLinkRequest is the payload for linking a user to a product.
type CreateLinkRequest struct {
	UsuarioID uint `json:"usuario_id" validate:"required"`
	ProdutoID uint `json:"produto_id" validate:"required"`
}

// RelationHandler handles HTTP requests for user-product links.
type RelationHandler struct {
	service  *services.RelationService
	validate *validator.Validate
}

// NewRelationHandler creates a new RelationHandler.
func NewRelationHandler(service *services.RelationService) *RelationHandler {
	return &RelationHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the relation routes with the Fiber app.
func (h *RelationHandler) RegisterRoutes(router fiber.Router) {
	links := router.Group("/relacionamentos")
	links.Get("/", h.HandleList)
	links.Post("/", h.HandleCreate)
	links.Delete("/:id", h.HandleDelete)
	links.Get("/usuario/:id/produtos", h.HandleProductsForUser)
	links.Get("/produto/:id/usuarios", h.HandleUsersForProduct)
}

// HandleList returns every link with display fields from both sides.
func (h *RelationHandler) HandleList(c *fiber.Ctx) error {
	rows, err := h.service.ListLinks()
	if err != nil {
		log.Printf("Error listing links: %v", err)
		return respondInternal(c, "Erro ao listar relacionamentos")
	}
	return respondData(c, rows)
}

// HandleCreate links a user to a product.
func (h *RelationHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create link request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, validationMessages(err))
	}

	row, err := h.service.Link(req.UsuarioID, req.ProdutoID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Registro não encontrado",
				"O usuário ou produto informado não existe no sistema.")
		case errors.Is(err, apperrors.ErrConflict):
			return respondError(c, fiber.StatusConflict, "Relacionamento já existe",
				"Este usuário já está vinculado a este produto.")
		default:
			log.Printf("Error linking user %d to product %d: %v", req.UsuarioID, req.ProdutoID, err)
			return respondInternal(c, "Erro ao vincular usuário ao produto")
		}
	}

	return respondMessage(c, fiber.StatusCreated, "Usuário vinculado ao produto com sucesso",
		"O relacionamento foi criado no sistema", row)
}

// HandleDelete removes a link by id.
func (h *RelationHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Relacionamento não encontrado", "")
	}

	if err := h.service.Unlink(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Relacionamento não encontrado",
				fmt.Sprintf("O relacionamento com ID %d não foi encontrado no sistema", id))
		}
		log.Printf("Error removing link %d: %v", id, err)
		return respondInternal(c, "Erro ao remover relacionamento")
	}

	return respondMessage(c, fiber.StatusOK, "Relacionamento removido com sucesso",
		"O usuário foi desvinculado do produto", nil)
}

// HandleProductsForUser returns one user and its linked products.
func (h *RelationHandler) HandleProductsForUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado", "")
	}

	user, products, err := h.service.ProductsForUser(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Usuário não encontrado",
				fmt.Sprintf("O usuário com ID %d não foi encontrado no sistema", id))
		}
		log.Printf("Error listing products for user %d: %v", id, err)
		return respondInternal(c, "Erro ao listar produtos do usuário")
	}

	return respondData(c, fiber.Map{
		"usuario":  user,
		"produtos": products,
	})
}

// HandleUsersForProduct returns one product and its linked users.
func (h *RelationHandler) HandleUsersForProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado", "")
	}

	product, users, err := h.service.UsersForProduct(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Produto não encontrado",
				fmt.Sprintf("O produto com ID %d não foi encontrado no sistema", id))
		}
		log.Printf("Error listing users for product %d: %v", id, err)
		return respondInternal(c, "Erro ao listar usuários do produto")
	}

	return respondData(c, fiber.Map{
		"produto":  product,
		"usuarios": users,
	})
}
