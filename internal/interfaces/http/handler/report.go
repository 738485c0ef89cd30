package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appreport "github.com/RizalSwikey/web-akuntansi/internal/application/report"
)

// ReportHandler handles financial report lifecycle endpoints
type ReportHandler struct {
	BaseHandler
	reportService *appreport.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *appreport.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Create opens a new monthly report
func (h *ReportHandler) Create(c *gin.Context) {
	var req appreport.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rpt, err := h.reportService.CreateReport(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, rpt)
}

// GetByID returns a report with its registered products
func (h *ReportHandler) GetByID(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID format")
		return
	}

	detail, err := h.reportService.GetReport(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// UpdateProfile replaces the company profile step of a report
func (h *ReportHandler) UpdateProfile(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID format")
		return
	}

	var req appreport.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rpt, err := h.reportService.UpdateProfile(c.Request.Context(), reportID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rpt)
}

// RegisterRoutes registers report lifecycle routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.POST("", h.Create)
		reports.GET("/:id", h.GetByID)
		reports.PUT("/:id/profile", h.UpdateProfile)
	}
}
