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

// CreateProductRequest is the payload for creating a product. Preco is a
// pointer so an explicit zero passes the required check.
type CreateProductRequest struct {
	Nome      string   `json:"nome" validate:"required,max=255"`
	Preco     *float64 `json:"preco" validate:"required,gte=0"`
	Descricao *string  `json:"descricao"`
}

// UpdateProductRequest is the payload for a partial product update.
type UpdateProductRequest struct {
	Nome      *string  `json:"nome" validate:"omitempty,min=1,max=255"`
	Preco     *float64 `json:"preco" validate:"omitempty,gte=0"`
	Descricao *string  `json:"descricao"`
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/produtos")
	products.Get("/", h.HandleList)
	products.Get("/:id", h.HandleGet)
	products.Post("/", h.HandleCreate)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleDelete)
}

// HandleList returns every product.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondInternal(c, "Erro ao listar produtos")
	}
	return respondData(c, products)
}

// HandleGet returns a single product.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado", "")
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Produto não encontrado", "")
		}
		log.Printf("Error getting product %d: %v", id, err)
		return respondInternal(c, "Erro ao buscar produto")
	}
	return respondData(c, product)
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, validationMessages(err))
	}

	product := &models.Product{
		Nome:      req.Nome,
		Preco:     *req.Preco,
		Descricao: req.Descricao,
	}
	if err := h.service.CreateProduct(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondInternal(c, "Erro ao criar produto")
	}

	return respondMessage(c, fiber.StatusCreated, "Produto criado com sucesso",
		"O produto foi criado no sistema", product)
}

// HandleUpdate applies a partial update to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado", "")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, validationMessages(err))
	}

	product, err := h.service.UpdateProduct(id, services.ProductUpdate{
		Nome:      req.Nome,
		Preco:     req.Preco,
		Descricao: req.Descricao,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Produto não encontrado",
				fmt.Sprintf("O produto com ID %d não foi encontrado no sistema", id))
		}
		log.Printf("Error updating product %d: %v", id, err)
		return respondInternal(c, "Erro ao atualizar produto")
	}

	return respondMessage(c, fiber.StatusOK, "Produto atualizado com sucesso",
		"As informações do produto foram atualizadas no sistema", product)
}

// HandleDelete removes a product and, in the same transaction, every link
// referencing it.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado", "")
	}

	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Produto não encontrado",
				fmt.Sprintf("O produto com ID %d não foi encontrado no sistema", id))
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return respondInternal(c, "Erro ao excluir produto")
	}

	return respondMessage(c, fiber.StatusOK, "Produto excluído com sucesso",
		"O produto foi removido permanentemente do sistema", nil)
}
