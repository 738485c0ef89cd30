package report

import (
	"context"

	"github.com/google/uuid"
)

// FinancialReportRepository provides access to reports
type FinancialReportRepository interface {
	Save(ctx context.Context, report *FinancialReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*FinancialReport, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FinancialReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository provides access to a report's products
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByReport(ctx context.Context, reportID uuid.UUID) ([]*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RevenueItemRepository provides access to a report's revenue rows
type RevenueItemRepository interface {
	Save(ctx context.Context, item *RevenueItem) error
	FindByReport(ctx context.Context, reportID uuid.UUID) ([]*RevenueItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseItemRepository provides access to a report's expense rows
type ExpenseItemRepository interface {
	Save(ctx context.Context, item *ExpenseItem) error
	FindByReport(ctx context.Context, reportID uuid.UUID) ([]*ExpenseItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
