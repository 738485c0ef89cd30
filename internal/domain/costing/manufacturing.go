package costing

import (
	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ManufacturingCostPools carries one product's period totals, already
// summed from the persisted rows. Quantities ride along for the raw
// material consumption line and the finished goods layers.
type ManufacturingCostPools struct {
	RawMaterialBeginning valueobject.Money
	RawMaterialPurchases valueobject.Money
	RawMaterialEnding    valueobject.Money
	DirectLabor          valueobject.Money
	Overhead             valueobject.Money
	WIPBeginning         valueobject.Money
	WIPEnding            valueobject.Money
	WIPBeginningQty      int64
	WIPEndingQty         int64
	FinishedBeginning    InventoryLot
	FinishedEndingQty    int64
}

// ProductionSummary is the per-product manufacturing breakdown, the
// COGM chain from raw materials down to the product's COGS contribution.
type ProductionSummary struct {
	ProductID           uuid.UUID         `json:"product_id"`
	ProductName         string            `json:"product_name"`
	RawMaterialUsed     valueobject.Money `json:"raw_material_used"`
	DirectLabor         valueobject.Money `json:"direct_labor"`
	Overhead            valueobject.Money `json:"overhead"`
	ProductionCost      valueobject.Money `json:"production_cost"`
	WIPBeginning        valueobject.Money `json:"wip_beginning"`
	WIPEnding           valueobject.Money `json:"wip_ending"`
	COGM                valueobject.Money `json:"cogm"`
	UnitsProduced       int64             `json:"units_produced"`
	CostPerUnit         valueobject.Money `json:"cost_per_unit"`
	FinishedBeginning   valueobject.Money `json:"finished_goods_beginning"`
	FinishedEnding      valueobject.Money `json:"finished_goods_ending"`
	FinishedEndingQty   int64             `json:"finished_goods_ending_quantity"`
	COGS                valueobject.Money `json:"cogs"`
	ValidationError     string            `json:"validation_error,omitempty"`
}

// DefaultUnitsProduced derives the first-pass production count from the
// work in process movement. Never negative; the user overrides it when
// the WIP counts do not reflect actual output.
func DefaultUnitsProduced(wipEndingQty, wipBeginningQty int64) int64 {
	if n := wipEndingQty - wipBeginningQty; n > 0 {
		return n
	}
	return 0
}

// ManufacturingCostEngine computes cost of goods manufactured and the
// resulting COGS for a manufacturing (manufaktur) business. Stateless
// and pure, like TradingCostEngine.
type ManufacturingCostEngine struct{}

// NewManufacturingCostEngine creates a ManufacturingCostEngine
func NewManufacturingCostEngine() *ManufacturingCostEngine {
	return &ManufacturingCostEngine{}
}

// Compute runs the COGM chain for one product:
//
//	raw material used = beginning + purchases - ending
//	production cost   = raw material used + direct labor + overhead
//	COGM              = production cost + WIP beginning - WIP ending
//	COGS              = COGM + FG beginning - FG ending
//
// Finished goods ending keeps the beginning layer at its carried cost
// and values units above it at this period's cost per unit. An ending
// count above the units on hand zeroes the FG ending and flags the row.
func (e *ManufacturingCostEngine) Compute(pools ManufacturingCostPools, unitsProduced int64) ProductionSummary {
	s := ProductionSummary{UnitsProduced: unitsProduced}

	s.RawMaterialUsed = pools.RawMaterialBeginning.
		Add(pools.RawMaterialPurchases).
		Subtract(pools.RawMaterialEnding).
		WholeRupiah()
	s.DirectLabor = pools.DirectLabor.WholeRupiah()
	s.Overhead = pools.Overhead.WholeRupiah()
	s.ProductionCost = s.RawMaterialUsed.Add(s.DirectLabor).Add(s.Overhead)

	s.WIPBeginning = pools.WIPBeginning.WholeRupiah()
	s.WIPEnding = pools.WIPEnding.WholeRupiah()
	s.COGM = s.ProductionCost.Add(s.WIPBeginning).Subtract(s.WIPEnding)

	s.CostPerUnit = valueobject.ZeroMoney()
	if unitsProduced > 0 {
		perUnit, _ := s.COGM.DivideByInt(unitsProduced)
		s.CostPerUnit = perUnit.Round(2)
	}

	s.FinishedBeginning = pools.FinishedBeginning.Value().WholeRupiah()
	s.FinishedEndingQty = pools.FinishedEndingQty

	unitsOnHand := pools.FinishedBeginning.Quantity + unitsProduced
	if pools.FinishedEndingQty > unitsOnHand {
		s.ValidationError = ValidationFGEndingExceedsStock
		s.FinishedEnding = valueobject.ZeroMoney()
	} else {
		ending := valueobject.ZeroMoney()
		if pools.FinishedEndingQty > pools.FinishedBeginning.Quantity {
			excess := pools.FinishedEndingQty - pools.FinishedBeginning.Quantity
			ending = s.FinishedBeginning.Add(s.CostPerUnit.MultiplyByInt(excess))
		} else {
			ending = pools.FinishedBeginning.UnitCost.MultiplyByInt(pools.FinishedEndingQty)
		}
		s.FinishedEnding = ending.WholeRupiah()
	}

	s.COGS = s.COGM.Add(s.FinishedBeginning).Subtract(s.FinishedEnding)
	return s
}

// ManufacturingTotals aggregates production summaries across a report.
type ManufacturingTotals struct {
	RawMaterialUsed valueobject.Money `json:"raw_material_used"`
	DirectLabor     valueobject.Money `json:"direct_labor"`
	Overhead        valueobject.Money `json:"overhead"`
	ProductionCost  valueobject.Money `json:"production_cost"`
	COGM            valueobject.Money `json:"cogm"`
	COGS            valueobject.Money `json:"cogs"`
}

// SumProductionSummaries totals the per-product COGM chains of a report
func SumProductionSummaries(summaries []ProductionSummary) ManufacturingTotals {
	totals := ManufacturingTotals{
		RawMaterialUsed: valueobject.ZeroMoney(),
		DirectLabor:     valueobject.ZeroMoney(),
		Overhead:        valueobject.ZeroMoney(),
		ProductionCost:  valueobject.ZeroMoney(),
		COGM:            valueobject.ZeroMoney(),
		COGS:            valueobject.ZeroMoney(),
	}
	for _, s := range summaries {
		totals.RawMaterialUsed = totals.RawMaterialUsed.Add(s.RawMaterialUsed)
		totals.DirectLabor = totals.DirectLabor.Add(s.DirectLabor)
		totals.Overhead = totals.Overhead.Add(s.Overhead)
		totals.ProductionCost = totals.ProductionCost.Add(s.ProductionCost)
		totals.COGM = totals.COGM.Add(s.COGM)
		totals.COGS = totals.COGS.Add(s.COGS)
	}
	return totals
}
