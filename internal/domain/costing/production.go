package costing

import (
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductionRecord persists the units-produced figure for one product in
// one report period. The row is created with the WIP-derived default the
// first time the manufacturing breakdown runs and holds any user
// override afterwards. One row per (report, product).
type ProductionRecord struct {
	shared.BaseEntity
	ReportID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_production_report_product,priority:1" json:"report_id"`
	ProductID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_production_report_product,priority:2" json:"product_id"`
	UnitsProduced int64             `gorm:"not null;default:0" json:"units_produced"`
	CostPerUnit   valueobject.Money `gorm:"type:decimal(20,2);not null" json:"cost_per_unit"`
	Note          string            `gorm:"size:255" json:"note"`
}

// TableName returns the table name for ProductionRecord
func (ProductionRecord) TableName() string {
	return "hpp_manufacture_productions"
}

// NewProductionRecord creates a production record seeded with the
// WIP-derived default
func NewProductionRecord(reportID, productID uuid.UUID, unitsProduced int64) (*ProductionRecord, error) {
	if unitsProduced < 0 {
		return nil, shared.NewDomainError("INVALID_UNITS_PRODUCED", "units produced cannot be negative")
	}
	return &ProductionRecord{
		BaseEntity:    shared.NewBaseEntity(),
		ReportID:      reportID,
		ProductID:     productID,
		UnitsProduced: unitsProduced,
		CostPerUnit:   valueobject.ZeroMoney(),
	}, nil
}

// OverrideUnitsProduced replaces the produced count with a user figure
func (p *ProductionRecord) OverrideUnitsProduced(units int64, note string) error {
	if units < 0 {
		return shared.NewDomainError("INVALID_UNITS_PRODUCED", "units produced cannot be negative")
	}
	p.UnitsProduced = units
	p.Note = note
	p.Touch()
	return nil
}

// RecordCostPerUnit stores the rate computed by the last costing pass
func (p *ProductionRecord) RecordCostPerUnit(rate valueobject.Money) {
	p.CostPerUnit = rate
	p.Touch()
}
