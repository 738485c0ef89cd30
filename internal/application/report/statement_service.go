package report

import (
	"context"

	appcosting "github.com/RizalSwikey/web-akuntansi/internal/application/costing"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatementResponse is the assembled monthly statement with its report
// header. The one shape every downstream renderer consumes.
type StatementResponse struct {
	ReportID     uuid.UUID              `json:"report_id"`
	CompanyName  string                 `json:"company_name"`
	Month        int                    `json:"month"`
	Year         int                    `json:"year"`
	BusinessType report.BusinessType    `json:"business_type"`
	Statement    report.IncomeStatement `json:"statement"`
}

// TradingCostSource recomputes a report's trading cost breakdown
type TradingCostSource interface {
	ComputeReport(ctx context.Context, reportID uuid.UUID) (*appcosting.TradingBreakdown, error)
}

// ManufacturingCostSource recomputes a report's manufacturing cost
// breakdown
type ManufacturingCostSource interface {
	ComputeReport(ctx context.Context, reportID uuid.UUID) (*appcosting.ManufacturingBreakdown, error)
}

// StatementService assembles the income statement for a report,
// delegating COGS to the costing pipeline the report's business type
// selects
type StatementService struct {
	reportRepo       report.FinancialReportRepository
	revenueRepo      report.RevenueItemRepository
	expenseRepo      report.ExpenseItemRepository
	tradingSvc       TradingCostSource
	manufacturingSvc ManufacturingCostSource
	logger           *zap.Logger
}

// NewStatementService creates a new StatementService
func NewStatementService(
	reportRepo report.FinancialReportRepository,
	revenueRepo report.RevenueItemRepository,
	expenseRepo report.ExpenseItemRepository,
	tradingSvc TradingCostSource,
	manufacturingSvc ManufacturingCostSource,
	logger *zap.Logger,
) *StatementService {
	return &StatementService{
		reportRepo:       reportRepo,
		revenueRepo:      revenueRepo,
		expenseRepo:      expenseRepo,
		tradingSvc:       tradingSvc,
		manufacturingSvc: manufacturingSvc,
		logger:           logger,
	}
}

// GetStatement recomputes the report's income statement from its rows
func (s *StatementService) GetStatement(ctx context.Context, reportID uuid.UUID) (*StatementResponse, error) {
	rpt, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	cogs, err := s.cogsFor(ctx, rpt)
	if err != nil {
		return nil, err
	}

	revenues, err := s.revenueRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	operatingRevenue := valueobject.ZeroMoney()
	otherRevenue := valueobject.ZeroMoney()
	for _, r := range revenues {
		switch r.Type {
		case report.RevenueOperating:
			operatingRevenue = operatingRevenue.Add(r.Amount)
		case report.RevenueOther:
			otherRevenue = otherRevenue.Add(r.Amount)
		}
	}

	expenses, err := s.expenseRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	operatingExpenses := valueobject.ZeroMoney()
	otherExpenses := valueobject.ZeroMoney()
	for _, e := range expenses {
		// Rows entered under the other business type stay out of the
		// statement.
		if e.Scope != rpt.BusinessType {
			continue
		}
		switch e.Category {
		case report.ExpenseOperating:
			operatingExpenses = operatingExpenses.Add(e.Amount)
		case report.ExpenseOther:
			otherExpenses = otherExpenses.Add(e.Amount)
		}
	}

	statement := report.AssembleStatement(report.StatementInputs{
		OperatingRevenue:  operatingRevenue.WholeRupiah(),
		OtherRevenue:      otherRevenue.WholeRupiah(),
		COGS:              cogs,
		OperatingExpenses: operatingExpenses.WholeRupiah(),
		OtherExpenses:     otherExpenses.WholeRupiah(),
	})

	s.logger.Info("Income statement assembled",
		zap.String("report_id", reportID.String()),
		zap.String("business_type", string(rpt.BusinessType)),
		zap.String("profit_after_tax", statement.ProfitAfterTax.String()))

	return &StatementResponse{
		ReportID:     rpt.ID,
		CompanyName:  rpt.CompanyName,
		Month:        rpt.Month,
		Year:         rpt.Year,
		BusinessType: rpt.BusinessType,
		Statement:    statement,
	}, nil
}

func (s *StatementService) cogsFor(ctx context.Context, rpt *report.FinancialReport) (valueobject.Money, error) {
	if rpt.BusinessType == report.BusinessManufacturing {
		breakdown, err := s.manufacturingSvc.ComputeReport(ctx, rpt.ID)
		if err != nil {
			return valueobject.ZeroMoney(), err
		}
		return breakdown.Totals.COGS, nil
	}
	breakdown, err := s.tradingSvc.ComputeReport(ctx, rpt.ID)
	if err != nil {
		return valueobject.ZeroMoney(), err
	}
	return breakdown.Totals.COGS, nil
}
