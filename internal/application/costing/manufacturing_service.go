package costing

import (
	"context"
	"errors"
	"sort"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/costing"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/report"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ManufacturingBreakdown is the manufacturing cost report for one period.
type ManufacturingBreakdown struct {
	ReportID uuid.UUID                   `json:"report_id"`
	Products []costing.ProductionSummary `json:"products"`
	Totals   costing.ManufacturingTotals `json:"totals"`
}

// UpdateProductionRequest carries a user override of the produced count
type UpdateProductionRequest struct {
	UnitsProduced int64  `json:"units_produced" binding:"min=0"`
	Note          string `json:"note"`
}

// ManufacturingCostService recomputes the COGM chain from the persisted
// cost pool rows and maintains the per-product production records
type ManufacturingCostService struct {
	reportRepo     report.FinancialReportRepository
	productRepo    report.ProductRepository
	entryRepo      costing.ManufactureEntryRepository
	productionRepo costing.ProductionRecordRepository
	engine         *costing.ManufacturingCostEngine
	logger         *zap.Logger
}

// NewManufacturingCostService creates a new ManufacturingCostService
func NewManufacturingCostService(
	reportRepo report.FinancialReportRepository,
	productRepo report.ProductRepository,
	entryRepo costing.ManufactureEntryRepository,
	productionRepo costing.ProductionRecordRepository,
	logger *zap.Logger,
) *ManufacturingCostService {
	return &ManufacturingCostService{
		reportRepo:     reportRepo,
		productRepo:    productRepo,
		entryRepo:      entryRepo,
		productionRepo: productionRepo,
		engine:         costing.NewManufacturingCostEngine(),
		logger:         logger,
	}
}

// ComputeReport builds each product's cost pools, resolves its produced
// count, and runs the COGM chain. The first pass for a product persists
// a production record seeded from the WIP movement; later passes reuse
// the stored figure so user overrides survive recomputation.
func (s *ManufacturingCostService) ComputeReport(ctx context.Context, reportID uuid.UUID) (*ManufacturingBreakdown, error) {
	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	pools := make(map[uuid.UUID]*costing.ManufacturingCostPools, len(products))
	for _, p := range products {
		pools[p.ID] = &costing.ManufacturingCostPools{
			RawMaterialBeginning: valueobject.ZeroMoney(),
			RawMaterialPurchases: valueobject.ZeroMoney(),
			RawMaterialEnding:    valueobject.ZeroMoney(),
			DirectLabor:          valueobject.ZeroMoney(),
			Overhead:             valueobject.ZeroMoney(),
			WIPBeginning:         valueobject.ZeroMoney(),
			WIPEnding:            valueobject.ZeroMoney(),
		}
	}

	if err := s.fillPools(ctx, reportID, products, pools); err != nil {
		return nil, err
	}

	records, err := s.productionRecords(ctx, reportID, products, pools)
	if err != nil {
		return nil, err
	}

	summaries := make([]costing.ProductionSummary, 0, len(products))
	for _, p := range products {
		record := records[p.ID]
		summary := s.engine.Compute(*pools[p.ID], record.UnitsProduced)
		summary.ProductID = p.ID
		summary.ProductName = p.Name

		record.RecordCostPerUnit(summary.CostPerUnit)
		if err := s.productionRepo.Save(ctx, record); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return &ManufacturingBreakdown{
		ReportID: reportID,
		Products: summaries,
		Totals:   costing.SumProductionSummaries(summaries),
	}, nil
}

// UpdateProduction upserts the user's produced-count override for one
// product of a report
func (s *ManufacturingCostService) UpdateProduction(ctx context.Context, reportID, productID uuid.UUID, req UpdateProductionRequest) (*costing.ProductionRecord, error) {
	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ReportID != reportID {
		return nil, shared.NewDomainError("PRODUCT_NOT_IN_REPORT", "Product does not belong to this report")
	}

	record, err := s.productionRepo.FindByReportAndProduct(ctx, reportID, productID)
	switch {
	case err == nil:
		if err := record.OverrideUnitsProduced(req.UnitsProduced, req.Note); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		record, err = costing.NewProductionRecord(reportID, productID, req.UnitsProduced)
		if err != nil {
			return nil, err
		}
		record.Note = req.Note
	default:
		return nil, err
	}

	if err := s.productionRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// fillPools sums the persisted rows into per-product pools. Rows for
// unknown products are skipped and logged. Overhead rows without a
// product reference are report-wide and get split evenly across the
// products, remainder on the first, so the report total stays exact.
func (s *ManufacturingCostService) fillPools(ctx context.Context, reportID uuid.UUID, products []*report.Product, pools map[uuid.UUID]*costing.ManufacturingCostPools) error {
	skip := func(kind string, productID uuid.UUID) {
		s.logger.Warn("Skipping manufacturing row for unknown product",
			zap.String("report_id", reportID.String()),
			zap.String("product_id", productID.String()),
			zap.String("kind", kind))
	}

	materials, err := s.entryRepo.FindMaterialsByReport(ctx, reportID)
	if err != nil {
		return err
	}
	for _, m := range materials {
		pool, ok := pools[m.ProductID]
		if !ok {
			skip("material", m.ProductID)
			continue
		}
		switch m.Type {
		case costing.MaterialBeginning:
			pool.RawMaterialBeginning = pool.RawMaterialBeginning.Add(m.NetValue())
		case costing.MaterialPurchase:
			pool.RawMaterialPurchases = pool.RawMaterialPurchases.Add(m.NetValue())
		case costing.MaterialEnding:
			pool.RawMaterialEnding = pool.RawMaterialEnding.Add(m.NetValue())
		}
	}

	wipRows, err := s.entryRepo.FindWIPByReport(ctx, reportID)
	if err != nil {
		return err
	}
	for _, w := range wipRows {
		pool, ok := pools[w.ProductID]
		if !ok {
			skip("wip", w.ProductID)
			continue
		}
		switch w.Type {
		case costing.WIPBeginning:
			pool.WIPBeginning = pool.WIPBeginning.Add(w.Value())
			pool.WIPBeginningQty += w.Quantity
		case costing.WIPEnding:
			pool.WIPEnding = pool.WIPEnding.Add(w.Value())
			pool.WIPEndingQty += w.Quantity
		}
	}

	laborRows, err := s.entryRepo.FindLaborByReport(ctx, reportID)
	if err != nil {
		return err
	}
	for _, l := range laborRows {
		pool, ok := pools[l.ProductID]
		if !ok {
			skip("labor", l.ProductID)
			continue
		}
		pool.DirectLabor = pool.DirectLabor.Add(l.Value())
	}

	overheadRows, err := s.entryRepo.FindOverheadByReport(ctx, reportID)
	if err != nil {
		return err
	}
	reportWide := valueobject.ZeroMoney()
	for _, o := range overheadRows {
		if o.ProductID == nil {
			reportWide = reportWide.Add(o.Value())
			continue
		}
		pool, ok := pools[*o.ProductID]
		if !ok {
			skip("overhead", *o.ProductID)
			continue
		}
		pool.Overhead = pool.Overhead.Add(o.Value())
	}
	if !reportWide.IsZero() && len(products) > 0 {
		share, _ := reportWide.DivideByInt(int64(len(products)))
		share = share.WholeRupiah()
		first := reportWide.Subtract(share.MultiplyByInt(int64(len(products) - 1)))
		for i, p := range products {
			if i == 0 {
				pools[p.ID].Overhead = pools[p.ID].Overhead.Add(first)
			} else {
				pools[p.ID].Overhead = pools[p.ID].Overhead.Add(share)
			}
		}
	}

	fgRows, err := s.entryRepo.FindFinishedGoodsByReport(ctx, reportID)
	if err != nil {
		return err
	}
	for _, f := range fgRows {
		pool, ok := pools[f.ProductID]
		if !ok {
			skip("finished_goods", f.ProductID)
			continue
		}
		switch f.Type {
		case costing.FinishedGoodsBeginning:
			pool.FinishedBeginning = costing.InventoryLot{Quantity: f.Quantity, UnitCost: f.UnitPrice}
		case costing.FinishedGoodsEnding:
			pool.FinishedEndingQty = f.Quantity
		}
	}

	return nil
}

// productionRecords loads the stored produced counts, creating missing
// records with the WIP-derived default
func (s *ManufacturingCostService) productionRecords(ctx context.Context, reportID uuid.UUID, products []*report.Product, pools map[uuid.UUID]*costing.ManufacturingCostPools) (map[uuid.UUID]*costing.ProductionRecord, error) {
	existing, err := s.productionRepo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	records := make(map[uuid.UUID]*costing.ProductionRecord, len(products))
	for _, r := range existing {
		records[r.ProductID] = r
	}
	for _, p := range products {
		if _, ok := records[p.ID]; ok {
			continue
		}
		pool := pools[p.ID]
		record, err := costing.NewProductionRecord(reportID, p.ID, costing.DefaultUnitsProduced(pool.WIPEndingQty, pool.WIPBeginningQty))
		if err != nil {
			return nil, err
		}
		records[p.ID] = record
	}
	return records, nil
}
