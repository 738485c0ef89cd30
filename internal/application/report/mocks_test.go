package report

import (
	"context"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFinancialReportRepository struct {
	mock.Mock
}

func (m *MockFinancialReportRepository) Save(ctx context.Context, rpt *report.FinancialReport) error {
	args := m.Called(ctx, rpt)
	return args.Error(0)
}

func (m *MockFinancialReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.FinancialReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.FinancialReport), args.Error(1)
}

func (m *MockFinancialReportRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*report.FinancialReport, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.FinancialReport), args.Error(1)
}

func (m *MockFinancialReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product *report.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Product), args.Error(1)
}

func (m *MockProductRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*report.Product, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRevenueItemRepository struct {
	mock.Mock
}

func (m *MockRevenueItemRepository) Save(ctx context.Context, item *report.RevenueItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRevenueItemRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*report.RevenueItem, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.RevenueItem), args.Error(1)
}

func (m *MockRevenueItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExpenseItemRepository struct {
	mock.Mock
}

func (m *MockExpenseItemRepository) Save(ctx context.Context, item *report.ExpenseItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockExpenseItemRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*report.ExpenseItem, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.ExpenseItem), args.Error(1)
}

func (m *MockExpenseItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
