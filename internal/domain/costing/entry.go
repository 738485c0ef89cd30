package costing

import (
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// EntryCategory classifies a trading HPP row. Category values keep the
// Indonesian terms the reports are written in: persediaan awal, pembelian,
// persediaan akhir.
type EntryCategory string

const (
	CategoryBeginning EntryCategory = "AWAL"
	CategoryPurchase  EntryCategory = "PEMBELIAN"
	CategoryEnding    EntryCategory = "AKHIR"
)

// IsValid checks if the category is a valid EntryCategory
func (c EntryCategory) IsValid() bool {
	switch c {
	case CategoryBeginning, CategoryPurchase, CategoryEnding:
		return true
	}
	return false
}

// HppEntry is one persisted trading inventory row: a product's beginning
// stock, one purchase, or its ending count for the reporting month.
// Beginning and ending rows are unique per (report, product, category);
// a product may carry any number of purchase rows.
type HppEntry struct {
	shared.BaseEntity
	ReportID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_hpp_entry_report_product,priority:1"`
	ProductID uuid.UUID         `gorm:"type:uuid;not null;index:idx_hpp_entry_report_product,priority:2"`
	Category  EntryCategory     `gorm:"size:10;not null"`
	Quantity  int64             `gorm:"not null;default:0"`
	UnitPrice valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Discount  valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	ReturnQty int64             `gorm:"not null;default:0"`
	Freight   valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Note      string            `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (HppEntry) TableName() string {
	return "hpp_entries"
}

// NewHppEntry creates a trading inventory row
func NewHppEntry(reportID, productID uuid.UUID, category EntryCategory, quantity int64, unitPrice valueobject.Money) (*HppEntry, error) {
	if reportID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Report and product IDs are required")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown HPP entry category")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	return &HppEntry{
		BaseEntity: shared.NewBaseEntity(),
		ReportID:   reportID,
		ProductID:  productID,
		Category:   category,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// MaterialType classifies a raw-material row (bahan baku awal, pembelian,
// akhir).
type MaterialType string

const (
	MaterialBeginning MaterialType = "BB_AWAL"
	MaterialPurchase  MaterialType = "BB_PEMBELIAN"
	MaterialEnding    MaterialType = "BB_AKHIR"
)

// MaterialEntry is one raw-material row of a manufacturing report.
type MaterialEntry struct {
	shared.BaseEntity
	ReportID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type         MaterialType      `gorm:"size:20;not null"`
	MaterialName string            `gorm:"size:255"`
	Quantity     int64             `gorm:"not null;default:0"`
	UnitPrice    valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Discount     valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	ReturnQty    int64             `gorm:"not null;default:0"`
	ReturnAmount valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Freight      valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Note         string            `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (MaterialEntry) TableName() string {
	return "hpp_manufacture_materials"
}

// NetValue returns the row's contribution to its material pool.
// Purchases are netted against discount, returns, and freight; beginning
// and ending rows are plain quantity times price. An explicit rupiah
// return amount wins over a quantity-based return when both are present.
func (m *MaterialEntry) NetValue() valueobject.Money {
	gross := m.UnitPrice.MultiplyByInt(m.Quantity)
	if m.Type != MaterialPurchase {
		return gross
	}
	returns := m.ReturnAmount
	if returns.IsZero() && m.ReturnQty > 0 {
		returns = m.UnitPrice.MultiplyByInt(m.ReturnQty)
	}
	return gross.Subtract(m.Discount).Subtract(returns).Add(m.Freight)
}

// WIPType classifies a work-in-process (barang dalam proses) row.
type WIPType string

const (
	WIPBeginning WIPType = "WIP_AWAL"
	WIPEnding    WIPType = "WIP_AKHIR"
)

// WIPEntry is one work-in-process row of a manufacturing report.
type WIPEntry struct {
	shared.BaseEntity
	ReportID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type      WIPType           `gorm:"size:20;not null"`
	Quantity  int64             `gorm:"not null;default:0"`
	UnitPrice valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Note      string            `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (WIPEntry) TableName() string {
	return "hpp_manufacture_wip"
}

// Value returns quantity times unit price
func (w *WIPEntry) Value() valueobject.Money {
	return w.UnitPrice.MultiplyByInt(w.Quantity)
}

// LaborEntry is one direct-labor (BTKL) row of a manufacturing report.
type LaborEntry struct {
	shared.BaseEntity
	ReportID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID         `gorm:"type:uuid;not null;index"`
	LaborKind string            `gorm:"size:255"`
	Quantity  int64             `gorm:"not null;default:0"`
	UnitPrice valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Note      string            `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (LaborEntry) TableName() string {
	return "hpp_manufacture_labor"
}

// Value returns quantity times unit price
func (l *LaborEntry) Value() valueobject.Money {
	return l.UnitPrice.MultiplyByInt(l.Quantity)
}

// OverheadEntry is one manufacturing-overhead (BOP) row. Overhead rows
// may be report-wide, so the product reference is optional.
type OverheadEntry struct {
	shared.BaseEntity
	ReportID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID        `gorm:"type:uuid;index"`
	CostName  string            `gorm:"size:255"`
	Quantity  int64             `gorm:"not null;default:0"`
	UnitPrice valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Note      string            `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (OverheadEntry) TableName() string {
	return "hpp_manufacture_overhead"
}

// Value returns quantity times unit price
func (o *OverheadEntry) Value() valueobject.Money {
	return o.UnitPrice.MultiplyByInt(o.Quantity)
}

// FinishedGoodsType classifies a finished-goods (barang jadi) row.
type FinishedGoodsType string

const (
	FinishedGoodsBeginning FinishedGoodsType = "FG_AWAL"
	FinishedGoodsEnding    FinishedGoodsType = "FG_AKHIR"
)

// FinishedGoodsEntry is one finished-goods row of a manufacturing report.
type FinishedGoodsEntry struct {
	shared.BaseEntity
	ReportID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type      FinishedGoodsType `gorm:"size:20;not null"`
	Quantity  int64             `gorm:"not null;default:0"`
	UnitPrice valueobject.Money `gorm:"type:decimal(20,2);not null;default:0"`
	Status    string            `gorm:"size:255"`
	Note      string            `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (FinishedGoodsEntry) TableName() string {
	return "hpp_manufacture_finished_goods"
}

// Value returns quantity times unit price
func (f *FinishedGoodsEntry) Value() valueobject.Money {
	return f.UnitPrice.MultiplyByInt(f.Quantity)
}
