package report

import (
	"context"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReportRequest opens a new reporting period
type CreateReportRequest struct {
	OwnerID      uuid.UUID `json:"owner_id" binding:"required"`
	CompanyName  string    `json:"company_name" binding:"required"`
	Month        int       `json:"month" binding:"required,min=1,max=12"`
	Year         int       `json:"year" binding:"required,min=2000,max=2100"`
	BusinessType string    `json:"business_type" binding:"required,oneof=dagang manufaktur"`
}

// UpdateProfileRequest replaces a report's company profile
type UpdateProfileRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	Month          int    `json:"month" binding:"required,min=1,max=12"`
	Year           int    `json:"year" binding:"required,min=2000,max=2100"`
	BusinessType   string `json:"business_type" binding:"required,oneof=dagang manufaktur"`
	BusinessStatus string `json:"business_status"`
	UMKMIncentive  bool   `json:"umkm_incentive"`
	OmzetAbove500M bool   `json:"omzet_above_500m"`
	PTKPStatus     string `json:"ptkp_status" binding:"omitempty,ptkp"`
}

// ReportDetail is a report with its tracked products
type ReportDetail struct {
	Report   *report.FinancialReport `json:"report"`
	Products []*report.Product       `json:"products"`
}

// ReportService provides report lifecycle operations
type ReportService struct {
	reportRepo  report.FinancialReportRepository
	productRepo report.ProductRepository
	logger      *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo report.FinancialReportRepository,
	productRepo report.ProductRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateReport opens a reporting period for one company month
func (s *ReportService) CreateReport(ctx context.Context, req CreateReportRequest) (*report.FinancialReport, error) {
	rpt, err := report.NewFinancialReport(req.OwnerID, req.CompanyName, req.Month, req.Year, report.BusinessType(req.BusinessType))
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, rpt); err != nil {
		return nil, err
	}
	s.logger.Info("Financial report created",
		zap.String("report_id", rpt.ID.String()),
		zap.String("company", rpt.CompanyName),
		zap.Int("month", rpt.Month),
		zap.Int("year", rpt.Year))
	return rpt, nil
}

// GetReport returns a report with its products
func (s *ReportService) GetReport(ctx context.Context, reportID uuid.UUID) (*ReportDetail, error) {
	rpt, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return &ReportDetail{Report: rpt, Products: products}, nil
}

// UpdateProfile replaces the company profile block of a report
func (s *ReportService) UpdateProfile(ctx context.Context, reportID uuid.UUID, req UpdateProfileRequest) (*report.FinancialReport, error) {
	rpt, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	err = rpt.UpdateProfile(report.Profile{
		CompanyName:    req.CompanyName,
		Month:          req.Month,
		Year:           req.Year,
		BusinessType:   report.BusinessType(req.BusinessType),
		BusinessStatus: req.BusinessStatus,
		UMKMIncentive:  req.UMKMIncentive,
		OmzetAbove500M: req.OmzetAbove500M,
		PTKPStatus:     req.PTKPStatus,
	})
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, rpt); err != nil {
		return nil, err
	}
	return rpt, nil
}
