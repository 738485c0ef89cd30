package report

import (
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared"
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// RevenueType classifies a revenue row: pendapatan usaha is earned by
// selling a product, pendapatan lain is a free amount.
type RevenueType string

const (
	RevenueOperating RevenueType = "usaha"
	RevenueOther     RevenueType = "lain"
)

// RevenueItem is one revenue row of a report. Operating rows carry a
// product reference with quantity and selling price; other rows carry
// only the amount.
type RevenueItem struct {
	shared.BaseEntity
	ReportID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"report_id"`
	ProductID    *uuid.UUID        `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Type         RevenueType       `gorm:"size:10;not null" json:"type"`
	Description  string            `gorm:"size:255" json:"description"`
	Quantity     int64             `gorm:"not null;default:0" json:"quantity"`
	SellingPrice valueobject.Money `gorm:"type:decimal(20,2);not null;default:0" json:"selling_price"`
	Amount       valueobject.Money `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`
}

// TableName returns the table name for RevenueItem
func (RevenueItem) TableName() string {
	return "revenue_items"
}

// NewOperatingRevenue creates a product-sale revenue row with its amount
// computed from quantity and selling price
func NewOperatingRevenue(reportID, productID uuid.UUID, quantity int64, sellingPrice valueobject.Money) (*RevenueItem, error) {
	if reportID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Report and product IDs are required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	pid := productID
	return &RevenueItem{
		BaseEntity:   shared.NewBaseEntity(),
		ReportID:     reportID,
		ProductID:    &pid,
		Type:         RevenueOperating,
		Quantity:     quantity,
		SellingPrice: sellingPrice,
		Amount:       sellingPrice.MultiplyByInt(quantity),
	}, nil
}

// NewOtherRevenue creates a non-operating revenue row
func NewOtherRevenue(reportID uuid.UUID, description string, amount valueobject.Money) (*RevenueItem, error) {
	if reportID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Report ID is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	return &RevenueItem{
		BaseEntity:  shared.NewBaseEntity(),
		ReportID:    reportID,
		Type:        RevenueOther,
		Description: description,
		Amount:      amount,
	}, nil
}

// ExpenseCategory classifies an expense row: beban usaha or beban
// lain-lain.
type ExpenseCategory string

const (
	ExpenseOperating ExpenseCategory = "usaha"
	ExpenseOther     ExpenseCategory = "lain"
)

// ExpenseItem is one expense row of a report. Scope records which
// business type the row was entered under so a report that switches type
// keeps its rows apart.
type ExpenseItem struct {
	shared.BaseEntity
	ReportID uuid.UUID         `gorm:"type:uuid;not null;index" json:"report_id"`
	Category ExpenseCategory   `gorm:"size:10;not null" json:"category"`
	Scope    BusinessType      `gorm:"size:20;not null" json:"scope"`
	Name     string            `gorm:"size:255;not null" json:"name"`
	Amount   valueobject.Money `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`
}

// TableName returns the table name for ExpenseItem
func (ExpenseItem) TableName() string {
	return "expense_items"
}

// NewExpenseItem creates an expense row
func NewExpenseItem(reportID uuid.UUID, category ExpenseCategory, scope BusinessType, name string, amount valueobject.Money) (*ExpenseItem, error) {
	if reportID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Report ID is required")
	}
	if category != ExpenseOperating && category != ExpenseOther {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category must be usaha or lain")
	}
	if !scope.IsValid() {
		return nil, shared.NewDomainError("INVALID_SCOPE", "Expense scope must be dagang or manufaktur")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_EXPENSE_NAME", "Expense name is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	return &ExpenseItem{
		BaseEntity: shared.NewBaseEntity(),
		ReportID:   reportID,
		Category:   category,
		Scope:      scope,
		Name:       name,
		Amount:     amount,
	}, nil
}
