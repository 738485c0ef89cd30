package persistence

import (
	"context"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRevenueItemRepository implements RevenueItemRepository using GORM
type GormRevenueItemRepository struct {
	db *gorm.DB
}

// NewGormRevenueItemRepository creates a new GormRevenueItemRepository
func NewGormRevenueItemRepository(db *gorm.DB) *GormRevenueItemRepository {
	return &GormRevenueItemRepository{db: db}
}

// Save persists a revenue row
func (r *GormRevenueItemRepository) Save(ctx context.Context, item *report.RevenueItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByReport lists a report's revenue rows
func (r *GormRevenueItemRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*report.RevenueItem, error) {
	var items []*report.RevenueItem
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a revenue row
func (r *GormRevenueItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&report.RevenueItem{}, "id = ?", id).Error
}

// GormExpenseItemRepository implements ExpenseItemRepository using GORM
type GormExpenseItemRepository struct {
	db *gorm.DB
}

// NewGormExpenseItemRepository creates a new GormExpenseItemRepository
func NewGormExpenseItemRepository(db *gorm.DB) *GormExpenseItemRepository {
	return &GormExpenseItemRepository{db: db}
}

// Save persists an expense row
func (r *GormExpenseItemRepository) Save(ctx context.Context, item *report.ExpenseItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByReport lists a report's expense rows
func (r *GormExpenseItemRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*report.ExpenseItem, error) {
	var items []*report.ExpenseItem
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an expense row
func (r *GormExpenseItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&report.ExpenseItem{}, "id = ?", id).Error
}
