package report

import (
	"fmt"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/google/uuid"
)

// BusinessType selects which costing pipeline a report runs.
type BusinessType string

const (
	BusinessTrading       BusinessType = "dagang"
	BusinessManufacturing BusinessType = "manufaktur"
)

// IsValid checks if the business type is known
func (b BusinessType) IsValid() bool {
	return b == BusinessTrading || b == BusinessManufacturing
}

// FinancialReport is one company's monthly reporting period. It owns the
// company profile captured up front and anchors every line item, product
// and costing row through its ID.
type FinancialReport struct {
	shared.BaseEntity
	OwnerID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"owner_id"`
	CompanyName    string       `gorm:"size:255;not null" json:"company_name"`
	Month          int          `gorm:"not null" json:"month"`
	Year           int          `gorm:"not null" json:"year"`
	BusinessType   BusinessType `gorm:"size:20;not null" json:"business_type"`
	BusinessStatus string       `gorm:"size:100" json:"business_status"`
	UMKMIncentive  bool         `gorm:"column:umkm_incentive;not null;default:false" json:"umkm_incentive"`
	OmzetAbove500M bool         `gorm:"column:omzet_above_500m;not null;default:false" json:"omzet_above_500m"`
	PTKPStatus     string       `gorm:"column:ptkp_status;size:20" json:"ptkp_status"`
}

// TableName returns the table name for FinancialReport
func (FinancialReport) TableName() string {
	return "financial_reports"
}

// NewFinancialReport creates a report for one company month
func NewFinancialReport(ownerID uuid.UUID, companyName string, month, year int, businessType BusinessType) (*FinancialReport, error) {
	if companyName == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name is required")
	}
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", fmt.Sprintf("Month must be between 1 and 12, got %d", month))
	}
	if year < 2000 || year > 2100 {
		return nil, shared.NewDomainError("INVALID_YEAR", fmt.Sprintf("Year %d is out of range", year))
	}
	if !businessType.IsValid() {
		return nil, shared.NewDomainError("INVALID_BUSINESS_TYPE", "Business type must be dagang or manufaktur")
	}
	return &FinancialReport{
		BaseEntity:   shared.NewBaseEntity(),
		OwnerID:      ownerID,
		CompanyName:  companyName,
		Month:        month,
		Year:         year,
		BusinessType: businessType,
	}, nil
}

// Profile is the editable company profile block of a report.
type Profile struct {
	CompanyName    string
	Month          int
	Year           int
	BusinessType   BusinessType
	BusinessStatus string
	UMKMIncentive  bool
	OmzetAbove500M bool
	PTKPStatus     string
}

// UpdateProfile replaces the profile block after validation
func (r *FinancialReport) UpdateProfile(p Profile) error {
	if p.CompanyName == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name is required")
	}
	if p.Month < 1 || p.Month > 12 {
		return shared.NewDomainError("INVALID_MONTH", fmt.Sprintf("Month must be between 1 and 12, got %d", p.Month))
	}
	if p.Year < 2000 || p.Year > 2100 {
		return shared.NewDomainError("INVALID_YEAR", fmt.Sprintf("Year %d is out of range", p.Year))
	}
	if !p.BusinessType.IsValid() {
		return shared.NewDomainError("INVALID_BUSINESS_TYPE", "Business type must be dagang or manufaktur")
	}
	r.CompanyName = p.CompanyName
	r.Month = p.Month
	r.Year = p.Year
	r.BusinessType = p.BusinessType
	r.BusinessStatus = p.BusinessStatus
	r.UMKMIncentive = p.UMKMIncentive
	r.OmzetAbove500M = p.OmzetAbove500M
	r.PTKPStatus = p.PTKPStatus
	r.Touch()
	return nil
}

// Product is one sellable item tracked by a report. Names are unique per
// report.
type Product struct {
	shared.BaseEntity
	ReportID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_report_name,priority:1" json:"report_id"`
	Name     string    `gorm:"size:255;not null;uniqueIndex:idx_product_report_name,priority:2" json:"name"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product under a report
func NewProduct(reportID uuid.UUID, name string) (*Product, error) {
	if reportID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Report ID is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name is required")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		ReportID:   reportID,
		Name:       name,
	}, nil
}
