package persistence

import (
	"context"
	"errors"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/costing"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHppEntryRepository implements HppEntryRepository using GORM
type GormHppEntryRepository struct {
	db *gorm.DB
}

// NewGormHppEntryRepository creates a new GormHppEntryRepository
func NewGormHppEntryRepository(db *gorm.DB) *GormHppEntryRepository {
	return &GormHppEntryRepository{db: db}
}

// Save persists a trading inventory row
func (r *GormHppEntryRepository) Save(ctx context.Context, entry *costing.HppEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// FindByID finds a trading inventory row by its ID
func (r *GormHppEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*costing.HppEntry, error) {
	var entry costing.HppEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByReport lists all trading inventory rows of a report
func (r *GormHppEntryRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.HppEntry, error) {
	var entries []*costing.HppEntry
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByReportAndProduct lists one product's trading inventory rows
func (r *GormHppEntryRepository) FindByReportAndProduct(ctx context.Context, reportID, productID uuid.UUID) ([]*costing.HppEntry, error) {
	var entries []*costing.HppEntry
	err := r.db.WithContext(ctx).
		Where("report_id = ? AND product_id = ?", reportID, productID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes a trading inventory row
func (r *GormHppEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&costing.HppEntry{}, "id = ?", id).Error
}

// GormManufactureEntryRepository implements ManufactureEntryRepository using GORM
type GormManufactureEntryRepository struct {
	db *gorm.DB
}

// NewGormManufactureEntryRepository creates a new GormManufactureEntryRepository
func NewGormManufactureEntryRepository(db *gorm.DB) *GormManufactureEntryRepository {
	return &GormManufactureEntryRepository{db: db}
}

// SaveMaterial persists a raw-material row
func (r *GormManufactureEntryRepository) SaveMaterial(ctx context.Context, entry *costing.MaterialEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// SaveWIP persists a work-in-process row
func (r *GormManufactureEntryRepository) SaveWIP(ctx context.Context, entry *costing.WIPEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// SaveLabor persists a direct-labor row
func (r *GormManufactureEntryRepository) SaveLabor(ctx context.Context, entry *costing.LaborEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// SaveOverhead persists an overhead row
func (r *GormManufactureEntryRepository) SaveOverhead(ctx context.Context, entry *costing.OverheadEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// SaveFinishedGoods persists a finished-goods row
func (r *GormManufactureEntryRepository) SaveFinishedGoods(ctx context.Context, entry *costing.FinishedGoodsEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// FindMaterialsByReport lists a report's raw-material rows
func (r *GormManufactureEntryRepository) FindMaterialsByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.MaterialEntry, error) {
	var entries []*costing.MaterialEntry
	if err := r.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindWIPByReport lists a report's work-in-process rows
func (r *GormManufactureEntryRepository) FindWIPByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.WIPEntry, error) {
	var entries []*costing.WIPEntry
	if err := r.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindLaborByReport lists a report's direct-labor rows
func (r *GormManufactureEntryRepository) FindLaborByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.LaborEntry, error) {
	var entries []*costing.LaborEntry
	if err := r.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindOverheadByReport lists a report's overhead rows
func (r *GormManufactureEntryRepository) FindOverheadByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.OverheadEntry, error) {
	var entries []*costing.OverheadEntry
	if err := r.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindFinishedGoodsByReport lists a report's finished-goods rows
func (r *GormManufactureEntryRepository) FindFinishedGoodsByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.FinishedGoodsEntry, error) {
	var entries []*costing.FinishedGoodsEntry
	if err := r.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GormProductionRecordRepository implements ProductionRecordRepository using GORM
type GormProductionRecordRepository struct {
	db *gorm.DB
}

// NewGormProductionRecordRepository creates a new GormProductionRecordRepository
func NewGormProductionRecordRepository(db *gorm.DB) *GormProductionRecordRepository {
	return &GormProductionRecordRepository{db: db}
}

// Save upserts a production record on its (report, product) key so
// concurrent first-create passes cannot produce duplicate rows
func (r *GormProductionRecordRepository) Save(ctx context.Context, record *costing.ProductionRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "report_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"units_produced", "cost_per_unit", "note", "updated_at",
			}),
		}).
		Create(record).Error
}

// FindByReport lists a report's production records
func (r *GormProductionRecordRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]*costing.ProductionRecord, error) {
	var records []*costing.ProductionRecord
	if err := r.db.WithContext(ctx).Where("report_id = ?", reportID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByReportAndProduct finds one product's production record
func (r *GormProductionRecordRepository) FindByReportAndProduct(ctx context.Context, reportID, productID uuid.UUID) (*costing.ProductionRecord, error) {
	var record costing.ProductionRecord
	err := r.db.WithContext(ctx).
		Where("report_id = ? AND product_id = ?", reportID, productID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}
