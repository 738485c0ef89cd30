package costing

import (
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Validation statuses carried on per-product results. They are data, not
// errors: a violation flags the product row but never stops the report
// from producing numbers.
const (
	ValidationEndingExceedsAvailable = "ending quantity exceeds available quantity"
	ValidationFGEndingExceedsStock   = "finished goods ending exceeds available units"
)

// InventoryLot is a homogeneous batch: a quantity carried at one unit cost.
type InventoryLot struct {
	Quantity int64
	UnitCost valueobject.Money
}

// Value returns quantity times unit cost
func (l InventoryLot) Value() valueobject.Money {
	return l.UnitCost.MultiplyByInt(l.Quantity)
}

// PurchaseEntry is an inventory lot bought during the period, with the
// adjustments that turn the gross purchase into its net cost.
type PurchaseEntry struct {
	InventoryLot
	Discount  valueobject.Money
	ReturnQty int64
	Freight   valueobject.Money
}

// NetValue returns quantity*unit_cost - discount - return_qty*unit_cost + freight
func (p PurchaseEntry) NetValue() valueobject.Money {
	gross := p.UnitCost.MultiplyByInt(p.Quantity)
	returns := p.UnitCost.MultiplyByInt(p.ReturnQty)
	return gross.Subtract(p.Discount).Subtract(returns).Add(p.Freight)
}

// ProductCostInputs collects one product's raw rows for a costing pass.
// Built fresh from persisted rows on every computation; never stored.
type ProductCostInputs struct {
	ProductID      uuid.UUID
	ProductName    string
	Beginning      *InventoryLot
	Purchases      []PurchaseEntry
	EndingQuantity int64
}

// ProductCostResult is the per-product cost breakdown. It is pure output,
// recomputed whole on every request. All money totals are whole rupiah;
// only the per-unit rate keeps fractions.
type ProductCostResult struct {
	ProductID           uuid.UUID         `json:"product_id"`
	ProductName         string            `json:"product_name"`
	BeginningQuantity   int64             `json:"beginning_quantity"`
	PurchasedQuantity   int64             `json:"purchased_quantity"`
	AvailableQuantity   int64             `json:"available_quantity"`
	EndingQuantity      int64             `json:"ending_quantity"`
	UnitsSold           int64             `json:"units_sold"`
	BeginningValue      valueobject.Money `json:"beginning_value"`
	NetPurchasesValue   valueobject.Money `json:"net_purchases_value"`
	GoodsAvailableValue valueobject.Money `json:"goods_available_value"`
	EndingValue         valueobject.Money `json:"ending_value"`
	COGS                valueobject.Money `json:"cogs"`
	COGSPerUnit         valueobject.Money `json:"cogs_per_unit"`
	ValidationError     string            `json:"validation_error,omitempty"`
}

// TradingCostEngine computes per-product cost of goods sold for a trading
// (dagang) business. Stateless; Compute is a pure function and never
// fails: invalid input shapes surface as a ValidationError on the result.
type TradingCostEngine struct{}

// NewTradingCostEngine creates a TradingCostEngine
func NewTradingCostEngine() *TradingCostEngine {
	return &TradingCostEngine{}
}

// Compute values one product's ending inventory and derives its COGS.
//
// Ending inventory keeps the beginning layer first: when the ending count
// exceeds the beginning count, the excess is valued at the average net
// purchase cost; when it does not, the ending units are valued at the
// beginning unit cost. COGS is the complement against goods available,
// which keeps cogs + ending_value == goods_available_value exact.
//
// The purchase average divides the net purchase value by the gross
// purchased quantity; purchase returns reduce the value, not the count.
// This matches the Excel worksheet the business reconciles against.
func (e *TradingCostEngine) Compute(in ProductCostInputs) ProductCostResult {
	result := ProductCostResult{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
	}

	beginning := InventoryLot{UnitCost: valueobject.ZeroMoney()}
	if in.Beginning != nil {
		beginning = *in.Beginning
	}
	result.BeginningQuantity = beginning.Quantity
	beginningValue := beginning.Value()

	netPurchases := valueobject.ZeroMoney()
	var purchasedQty int64
	for _, p := range in.Purchases {
		netPurchases = netPurchases.Add(p.NetValue())
		purchasedQty += p.Quantity
	}
	result.PurchasedQuantity = purchasedQty

	availableQty := beginning.Quantity + purchasedQty
	result.AvailableQuantity = availableQty

	endingQty := in.EndingQuantity
	if endingQty > availableQty {
		// Flag the row but keep computing so the report still totals.
		result.ValidationError = ValidationEndingExceedsAvailable
		endingQty = availableQty
	}
	result.EndingQuantity = endingQty
	result.UnitsSold = availableQty - endingQty

	var endingValue valueobject.Money
	if endingQty > beginning.Quantity {
		// Excess over the beginning layer carries the average net
		// purchase cost. Multiply before dividing so an exact share of
		// the purchase pool survives a repeating per-unit rate.
		excess := endingQty - beginning.Quantity
		endingValue = beginningValue
		if purchasedQty > 0 {
			share, _ := netPurchases.MultiplyByInt(excess).DivideByInt(purchasedQty)
			endingValue = endingValue.Add(share)
		}
	} else {
		endingValue = beginning.UnitCost.MultiplyByInt(endingQty)
	}

	result.BeginningValue = beginningValue.WholeRupiah()
	result.NetPurchasesValue = netPurchases.WholeRupiah()
	result.GoodsAvailableValue = result.BeginningValue.Add(result.NetPurchasesValue)
	result.EndingValue = endingValue.WholeRupiah()
	result.COGS = result.GoodsAvailableValue.Subtract(result.EndingValue)

	result.COGSPerUnit = valueobject.ZeroMoney()
	if result.UnitsSold > 0 {
		perUnit, _ := result.COGS.DivideByInt(result.UnitsSold)
		result.COGSPerUnit = perUnit.Round(2)
	}

	return result
}

// TradingTotals aggregates per-product results across a report.
type TradingTotals struct {
	BeginningValue      valueobject.Money `json:"beginning_value"`
	NetPurchasesValue   valueobject.Money `json:"net_purchases_value"`
	GoodsAvailableValue valueobject.Money `json:"goods_available_value"`
	EndingValue         valueobject.Money `json:"ending_value"`
	COGS                valueobject.Money `json:"cogs"`
}

// SumTradingResults totals the per-product breakdowns of a report
func SumTradingResults(results []ProductCostResult) TradingTotals {
	totals := TradingTotals{
		BeginningValue:      valueobject.ZeroMoney(),
		NetPurchasesValue:   valueobject.ZeroMoney(),
		GoodsAvailableValue: valueobject.ZeroMoney(),
		EndingValue:         valueobject.ZeroMoney(),
		COGS:                valueobject.ZeroMoney(),
	}
	for _, r := range results {
		totals.BeginningValue = totals.BeginningValue.Add(r.BeginningValue)
		totals.NetPurchasesValue = totals.NetPurchasesValue.Add(r.NetPurchasesValue)
		totals.GoodsAvailableValue = totals.GoodsAvailableValue.Add(r.GoodsAvailableValue)
		totals.EndingValue = totals.EndingValue.Add(r.EndingValue)
		totals.COGS = totals.COGS.Add(r.COGS)
	}
	return totals
}
