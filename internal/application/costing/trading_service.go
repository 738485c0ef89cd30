package costing

import (
	"context"
	"sort"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/costing"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TradingBreakdown is the trading cost report for one period: one row per
// product plus report totals. Recomputed from the raw rows on every call.
type TradingBreakdown struct {
	ReportID uuid.UUID                   `json:"report_id"`
	Products []costing.ProductCostResult `json:"products"`
	Totals   costing.TradingTotals       `json:"totals"`
}

// TradingCostService recomputes per-product trading COGS from the
// persisted inventory rows
type TradingCostService struct {
	reportRepo  report.FinancialReportRepository
	productRepo report.ProductRepository
	entryRepo   costing.HppEntryRepository
	engine      *costing.TradingCostEngine
	logger      *zap.Logger
}

// NewTradingCostService creates a new TradingCostService
func NewTradingCostService(
	reportRepo report.FinancialReportRepository,
	productRepo report.ProductRepository,
	entryRepo costing.HppEntryRepository,
	logger *zap.Logger,
) *TradingCostService {
	return &TradingCostService{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		entryRepo:   entryRepo,
		engine:      costing.NewTradingCostEngine(),
		logger:      logger,
	}
}

// ComputeReport builds each product's cost inputs from its rows and runs
// the engine. Rows referencing a product the report does not track are
// skipped and logged, never fatal.
func (s *TradingCostService) ComputeReport(ctx context.Context, reportID uuid.UUID) (*TradingBreakdown, error) {
	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[uuid.UUID]*costing.ProductCostInputs, len(products))
	for _, p := range products {
		byProduct[p.ID] = &costing.ProductCostInputs{
			ProductID:   p.ID,
			ProductName: p.Name,
		}
	}

	for _, e := range entries {
		in, ok := byProduct[e.ProductID]
		if !ok {
			s.logger.Warn("Skipping HPP row for unknown product",
				zap.String("report_id", reportID.String()),
				zap.String("product_id", e.ProductID.String()),
				zap.String("category", string(e.Category)))
			continue
		}
		switch e.Category {
		case costing.CategoryBeginning:
			in.Beginning = &costing.InventoryLot{Quantity: e.Quantity, UnitCost: e.UnitPrice}
		case costing.CategoryPurchase:
			in.Purchases = append(in.Purchases, costing.PurchaseEntry{
				InventoryLot: costing.InventoryLot{Quantity: e.Quantity, UnitCost: e.UnitPrice},
				Discount:     e.Discount,
				ReturnQty:    e.ReturnQty,
				Freight:      e.Freight,
			})
		case costing.CategoryEnding:
			in.EndingQuantity = e.Quantity
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	results := make([]costing.ProductCostResult, 0, len(products))
	for _, p := range products {
		results = append(results, s.engine.Compute(*byProduct[p.ID]))
	}

	return &TradingBreakdown{
		ReportID: reportID,
		Products: results,
		Totals:   costing.SumTradingResults(results),
	}, nil
}
