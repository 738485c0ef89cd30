package report

import "github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"

// StatementInputs are the aggregated figures an income statement is
// assembled from. All amounts are report-level totals, already summed.
type StatementInputs struct {
	OperatingRevenue  valueobject.Money
	OtherRevenue      valueobject.Money
	COGS              valueobject.Money
	OperatingExpenses valueobject.Money
	OtherExpenses     valueobject.Money
}

// IncomeStatement is the assembled monthly laporan laba rugi. Pure
// output, recomputed whole on every request.
type IncomeStatement struct {
	OperatingRevenue  valueobject.Money `json:"operating_revenue"`
	OtherRevenue      valueobject.Money `json:"other_revenue"`
	TotalRevenue      valueobject.Money `json:"total_revenue"`
	COGS              valueobject.Money `json:"cogs"`
	GrossProfit       valueobject.Money `json:"gross_profit"`
	OperatingExpenses valueobject.Money `json:"operating_expenses"`
	OtherExpenses     valueobject.Money `json:"other_expenses"`
	TotalExpenses     valueobject.Money `json:"total_expenses"`
	ProfitBeforeTax   valueobject.Money `json:"profit_before_tax"`
	IncomeTax         valueobject.Money `json:"income_tax"`
	ProfitAfterTax    valueobject.Money `json:"profit_after_tax"`
}

// AssembleStatement folds the aggregated figures into the statement.
// Straight arithmetic over already-validated totals, so no error path.
// Income tax is a zero placeholder until the PPh final rules land.
func AssembleStatement(in StatementInputs) IncomeStatement {
	s := IncomeStatement{
		OperatingRevenue:  in.OperatingRevenue,
		OtherRevenue:      in.OtherRevenue,
		COGS:              in.COGS,
		OperatingExpenses: in.OperatingExpenses,
		OtherExpenses:     in.OtherExpenses,
		IncomeTax:         valueobject.ZeroMoney(),
	}
	s.TotalRevenue = in.OperatingRevenue.Add(in.OtherRevenue)
	s.GrossProfit = in.OperatingRevenue.Subtract(in.COGS)
	s.TotalExpenses = in.COGS.Add(in.OperatingExpenses).Add(in.OtherExpenses)
	s.ProfitBeforeTax = s.TotalRevenue.Subtract(s.TotalExpenses)
	s.ProfitAfterTax = s.ProfitBeforeTax.Subtract(s.IncomeTax)
	return s
}
