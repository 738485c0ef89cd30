package costing

import (
	"context"

	"github.com/google/uuid"
)

// HppEntryRepository provides access to trading inventory rows
type HppEntryRepository interface {
	Save(ctx context.Context, entry *HppEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*HppEntry, error)
	FindByReport(ctx context.Context, reportID uuid.UUID) ([]*HppEntry, error)
	FindByReportAndProduct(ctx context.Context, reportID, productID uuid.UUID) ([]*HppEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ManufactureEntryRepository provides access to the manufacturing cost
// pool rows, one finder per pool
type ManufactureEntryRepository interface {
	SaveMaterial(ctx context.Context, entry *MaterialEntry) error
	SaveWIP(ctx context.Context, entry *WIPEntry) error
	SaveLabor(ctx context.Context, entry *LaborEntry) error
	SaveOverhead(ctx context.Context, entry *OverheadEntry) error
	SaveFinishedGoods(ctx context.Context, entry *FinishedGoodsEntry) error

	FindMaterialsByReport(ctx context.Context, reportID uuid.UUID) ([]*MaterialEntry, error)
	FindWIPByReport(ctx context.Context, reportID uuid.UUID) ([]*WIPEntry, error)
	FindLaborByReport(ctx context.Context, reportID uuid.UUID) ([]*LaborEntry, error)
	FindOverheadByReport(ctx context.Context, reportID uuid.UUID) ([]*OverheadEntry, error)
	FindFinishedGoodsByReport(ctx context.Context, reportID uuid.UUID) ([]*FinishedGoodsEntry, error)
}

// ProductionRecordRepository provides access to persisted units-produced
// figures
type ProductionRecordRepository interface {
	Save(ctx context.Context, record *ProductionRecord) error
	FindByReport(ctx context.Context, reportID uuid.UUID) ([]*ProductionRecord, error)
	FindByReportAndProduct(ctx context.Context, reportID, productID uuid.UUID) (*ProductionRecord, error)
}
