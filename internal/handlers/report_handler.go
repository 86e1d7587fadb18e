package handlers

import (
	"log"

	"inventario/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for the aggregate reports. Report
// failures are logged with context and surfaced as masked internal errors;
// query details never reach the client.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reports := router.Group("/relatorios")
	reports.Get("/usuarios-mais-produtos", h.HandleUsersRanked)
	reports.Get("/produto-mais-caro-por-usuario", h.HandleTopProductPerUser)
	reports.Get("/produtos-por-faixa-preco", h.HandlePriceBands)
}

// HandleUsersRanked lists users by linked product count, descending.
func (h *ReportHandler) HandleUsersRanked(c *fiber.Ctx) error {
	rows, err := h.service.UsersRankedByProductCount()
	if err != nil {
		log.Printf("Error running users-by-product-count report: %v", err)
		return respondInternal(c, "Erro ao executar consulta")
	}
	return respondData(c, rows)
}

// HandleTopProductPerUser lists each user's most expensive product(s).
func (h *ReportHandler) HandleTopProductPerUser(c *fiber.Ctx) error {
	rows, err := h.service.MostExpensiveProductPerUser()
	if err != nil {
		log.Printf("Error running most-expensive-product report: %v", err)
		return respondInternal(c, "Erro ao executar consulta")
	}
	return respondData(c, rows)
}

// HandlePriceBands lists the product count per price band.
func (h *ReportHandler) HandlePriceBands(c *fiber.Ctx) error {
	rows, err := h.service.ProductCountByPriceBand()
	if err != nil {
		log.Printf("Error running price-band report: %v", err)
		return respondInternal(c, "Erro ao executar consulta")
	}
	return respondData(c, rows)
}
