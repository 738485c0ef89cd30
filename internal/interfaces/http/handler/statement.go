package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appreport "github.com/RizalSwikey/web-akuntansi/internal/application/report"
)

// StatementHandler handles income statement endpoints
type StatementHandler struct {
	BaseHandler
	statementService *appreport.StatementService
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(statementService *appreport.StatementService) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

// GetStatement assembles the income statement for a report
func (h *StatementHandler) GetStatement(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID format")
		return
	}

	statement, err := h.statementService.GetStatement(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, statement)
}

// RegisterRoutes registers statement routes
func (h *StatementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/:id/statement", h.GetStatement)
}
