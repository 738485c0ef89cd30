package report

import (
	"context"
	"testing"

	appcosting "github.com/RizalSwikey/web-akuntansi/internal/application/costing"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/costing"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func money(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

type MockTradingCostSource struct {
	mock.Mock
}

func (m *MockTradingCostSource) ComputeReport(ctx context.Context, reportID uuid.UUID) (*appcosting.TradingBreakdown, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcosting.TradingBreakdown), args.Error(1)
}

type MockManufacturingCostSource struct {
	mock.Mock
}

func (m *MockManufacturingCostSource) ComputeReport(ctx context.Context, reportID uuid.UUID) (*appcosting.ManufacturingBreakdown, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcosting.ManufacturingBreakdown), args.Error(1)
}

func statementMocks(t *testing.T, rpt *report.FinancialReport, revenues []*report.RevenueItem, expenses []*report.ExpenseItem) (*MockFinancialReportRepository, *MockRevenueItemRepository, *MockExpenseItemRepository) {
	t.Helper()
	reportRepo := new(MockFinancialReportRepository)
	revenueRepo := new(MockRevenueItemRepository)
	expenseRepo := new(MockExpenseItemRepository)
	reportRepo.On("FindByID", mock.Anything, rpt.ID).Return(rpt, nil)
	revenueRepo.On("FindByReport", mock.Anything, rpt.ID).Return(revenues, nil)
	expenseRepo.On("FindByReport", mock.Anything, rpt.ID).Return(expenses, nil)
	return reportRepo, revenueRepo, expenseRepo
}

func TestStatementService_TradingReport(t *testing.T) {
	rpt, err := report.NewFinancialReport(uuid.New(), "Toko Sumber Rejeki", 5, 2026, report.BusinessTrading)
	require.NoError(t, err)

	sale, err := report.NewOperatingRevenue(rpt.ID, uuid.New(), 100, money(t, "120000"))
	require.NoError(t, err)
	interest, err := report.NewOtherRevenue(rpt.ID, "bunga bank", money(t, "500000"))
	require.NoError(t, err)

	rent, err := report.NewExpenseItem(rpt.ID, report.ExpenseOperating, report.BusinessTrading, "sewa toko", money(t, "2300000"))
	require.NoError(t, err)
	adminFee, err := report.NewExpenseItem(rpt.ID, report.ExpenseOther, report.BusinessTrading, "biaya admin", money(t, "150000"))
	require.NoError(t, err)
	foreignScope, err := report.NewExpenseItem(rpt.ID, report.ExpenseOperating, report.BusinessManufacturing, "listrik pabrik", money(t, "9999999"))
	require.NoError(t, err)

	reportRepo, revenueRepo, expenseRepo := statementMocks(t, rpt,
		[]*report.RevenueItem{sale, interest},
		[]*report.ExpenseItem{rent, adminFee, foreignScope})

	trading := new(MockTradingCostSource)
	trading.On("ComputeReport", mock.Anything, rpt.ID).Return(&appcosting.TradingBreakdown{
		ReportID: rpt.ID,
		Totals:   costing.TradingTotals{COGS: money(t, "4550000")},
	}, nil)
	manufacturing := new(MockManufacturingCostSource)

	svc := NewStatementService(reportRepo, revenueRepo, expenseRepo, trading, manufacturing, zap.NewNop())
	resp, err := svc.GetStatement(context.Background(), rpt.ID)
	require.NoError(t, err)

	assert.Equal(t, "Toko Sumber Rejeki", resp.CompanyName)
	assert.Equal(t, "12000000", resp.Statement.OperatingRevenue.String())
	assert.Equal(t, "500000", resp.Statement.OtherRevenue.String())
	assert.Equal(t, "12500000", resp.Statement.TotalRevenue.String())
	assert.Equal(t, "4550000", resp.Statement.COGS.String())
	// Rows entered under the manufacturing scope stay out.
	assert.Equal(t, "2300000", resp.Statement.OperatingExpenses.String())
	assert.Equal(t, "150000", resp.Statement.OtherExpenses.String())
	assert.Equal(t, "7000000", resp.Statement.TotalExpenses.String())
	assert.Equal(t, "5500000", resp.Statement.ProfitBeforeTax.String())
	assert.Equal(t, "5500000", resp.Statement.ProfitAfterTax.String())

	manufacturing.AssertNotCalled(t, "ComputeReport", mock.Anything, mock.Anything)
}

func TestStatementService_ManufacturingReport(t *testing.T) {
	rpt, err := report.NewFinancialReport(uuid.New(), "CV Konveksi Makmur", 5, 2026, report.BusinessManufacturing)
	require.NoError(t, err)

	reportRepo, revenueRepo, expenseRepo := statementMocks(t, rpt, nil, nil)

	trading := new(MockTradingCostSource)
	manufacturing := new(MockManufacturingCostSource)
	manufacturing.On("ComputeReport", mock.Anything, rpt.ID).Return(&appcosting.ManufacturingBreakdown{
		ReportID: rpt.ID,
		Totals:   costing.ManufacturingTotals{COGS: money(t, "4000000")},
	}, nil)

	svc := NewStatementService(reportRepo, revenueRepo, expenseRepo, trading, manufacturing, zap.NewNop())
	resp, err := svc.GetStatement(context.Background(), rpt.ID)
	require.NoError(t, err)

	assert.Equal(t, "4000000", resp.Statement.COGS.String())
	assert.Equal(t, "-4000000", resp.Statement.ProfitBeforeTax.String())
	trading.AssertNotCalled(t, "ComputeReport", mock.Anything, mock.Anything)
}

func TestStatementService_ReportNotFound(t *testing.T) {
	reportID := uuid.New()
	reportRepo := new(MockFinancialReportRepository)
	reportRepo.On("FindByID", mock.Anything, reportID).Return(nil, shared.ErrNotFound)

	svc := NewStatementService(reportRepo, new(MockRevenueItemRepository), new(MockExpenseItemRepository),
		new(MockTradingCostSource), new(MockManufacturingCostSource), zap.NewNop())
	_, err := svc.GetStatement(context.Background(), reportID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStatementService_CostingFailurePropagates(t *testing.T) {
	rpt, err := report.NewFinancialReport(uuid.New(), "Toko Sumber Rejeki", 5, 2026, report.BusinessTrading)
	require.NoError(t, err)

	reportRepo := new(MockFinancialReportRepository)
	reportRepo.On("FindByID", mock.Anything, rpt.ID).Return(rpt, nil)
	trading := new(MockTradingCostSource)
	trading.On("ComputeReport", mock.Anything, rpt.ID).Return(nil, shared.ErrDataIntegrity)

	svc := NewStatementService(reportRepo, new(MockRevenueItemRepository), new(MockExpenseItemRepository),
		trading, new(MockManufacturingCostSource), zap.NewNop())
	_, err = svc.GetStatement(context.Background(), rpt.ID)
	assert.ErrorIs(t, err, shared.ErrDataIntegrity)
}
