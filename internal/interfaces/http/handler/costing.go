package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcosting "github.com/RizalSwikey/web-akuntansi/internal/application/costing"
)

// CostingHandler handles HPP computation endpoints
type CostingHandler struct {
	BaseHandler
	tradingService       *appcosting.TradingCostService
	manufacturingService *appcosting.ManufacturingCostService
}

// NewCostingHandler creates a new CostingHandler
func NewCostingHandler(
	tradingService *appcosting.TradingCostService,
	manufacturingService *appcosting.ManufacturingCostService,
) *CostingHandler {
	return &CostingHandler{
		tradingService:       tradingService,
		manufacturingService: manufacturingService,
	}
}

// GetTradingCost recomputes the trading cost breakdown for a report
func (h *CostingHandler) GetTradingCost(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID format")
		return
	}

	breakdown, err := h.tradingService.ComputeReport(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, breakdown)
}

// GetManufacturingCost recomputes the manufacturing cost breakdown for a report
func (h *CostingHandler) GetManufacturingCost(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID format")
		return
	}

	breakdown, err := h.manufacturingService.ComputeReport(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, breakdown)
}

// UpdateProduction upserts the units-produced override for a product
func (h *CostingHandler) UpdateProduction(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID format")
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req appcosting.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.manufacturingService.UpdateProduction(c.Request.Context(), reportID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// RegisterRoutes registers HPP computation routes
func (h *CostingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/:id/hpp/trading", h.GetTradingCost)
		reports.GET("/:id/hpp/manufacturing", h.GetManufacturingCost)
		reports.PUT("/:id/products/:productID/production", h.UpdateProduction)
	}
}
