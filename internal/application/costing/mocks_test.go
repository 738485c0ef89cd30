package costing

import (
	"context"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/costing"
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

type MockHppEntryRepository struct {
	mock.Mock
}

func (m *MockHppEntryRepository) Save(ctx context.Context, entry *costing.HppEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHppEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*costing.HppEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*costing.HppEntry), args.Error(1)
}

func (m *MockHppEntryRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.HppEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.HppEntry), args.Error(1)
}

func (m *MockHppEntryRepository) FindByReportAndProduct(ctx context.Context, reportID, productID uuid.UUID) ([]*costing.HppEntry, error) {
	args := m.Called(ctx, reportID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.HppEntry), args.Error(1)
}

func (m *MockHppEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockManufactureEntryRepository struct {
	mock.Mock
}

func (m *MockManufactureEntryRepository) SaveMaterial(ctx context.Context, entry *costing.MaterialEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockManufactureEntryRepository) SaveWIP(ctx context.Context, entry *costing.WIPEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockManufactureEntryRepository) SaveLabor(ctx context.Context, entry *costing.LaborEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockManufactureEntryRepository) SaveOverhead(ctx context.Context, entry *costing.OverheadEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockManufactureEntryRepository) SaveFinishedGoods(ctx context.Context, entry *costing.FinishedGoodsEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockManufactureEntryRepository) FindMaterialsByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.MaterialEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.MaterialEntry), args.Error(1)
}

func (m *MockManufactureEntryRepository) FindWIPByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.WIPEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.WIPEntry), args.Error(1)
}

func (m *MockManufactureEntryRepository) FindLaborByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.LaborEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.LaborEntry), args.Error(1)
}

func (m *MockManufactureEntryRepository) FindOverheadByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.OverheadEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.OverheadEntry), args.Error(1)
}

func (m *MockManufactureEntryRepository) FindFinishedGoodsByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.FinishedGoodsEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.FinishedGoodsEntry), args.Error(1)
}

type MockProductionRecordRepository struct {
	mock.Mock
}

func (m *MockProductionRecordRepository) Save(ctx context.Context, record *costing.ProductionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockProductionRecordRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.ProductionRecord, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*costing.ProductionRecord), args.Error(1)
}

func (m *MockProductionRecordRepository) FindByReportAndProduct(ctx context.Context, reportID, productID uuid.UUID) (*costing.ProductionRecord, error) {
	args := m.Called(ctx, reportID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*costing.ProductionRecord), args.Error(1)
}
