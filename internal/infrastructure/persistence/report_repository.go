package persistence

import (
	"context"
	"errors"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFinancialReportRepository implements FinancialReportRepository using GORM
type GormFinancialReportRepository struct {
	db *gorm.DB
}

// NewGormFinancialReportRepository creates a new GormFinancialReportRepository
func NewGormFinancialReportRepository(db *gorm.DB) *GormFinancialReportRepository {
	return &GormFinancialReportRepository{db: db}
}

// Save persists a financial report
func (r *GormFinancialReportRepository) Save(ctx context.Context, rpt *report.FinancialReport) error {
	return r.db.WithContext(ctx).Save(rpt).Error
}

// FindByID finds a financial report by its ID
func (r *GormFinancialReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.FinancialReport, error) {
	var rpt report.FinancialReport
	if err := r.db.WithContext(ctx).First(&rpt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rpt, nil
}

// FindByOwner lists an owner's reports, newest period first
func (r *GormFinancialReportRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*report.FinancialReport, error) {
	var reports []*report.FinancialReport
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("year DESC, month DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Delete removes a financial report
func (r *GormFinancialReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&report.FinancialReport{}, "id = ?", id).Error
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Save persists a product
func (r *GormProductRepository) Save(ctx context.Context, product *report.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.Product, error) {
	var product report.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByReport lists a report's products ordered by name
func (r *GormProductRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*report.Product, error) {
	var products []*report.Product
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&report.Product{}, "id = ?", id).Error
}
