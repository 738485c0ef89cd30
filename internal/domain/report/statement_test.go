package report

import (
	"testing"

	"github.com/RizalSwikey/web-akuntansi/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestAssembleStatement(t *testing.T) {
	s := AssembleStatement(StatementInputs{
		OperatingRevenue:  money(t, "12000000"),
		OtherRevenue:      money(t, "500000"),
		COGS:              money(t, "4550000"),
		OperatingExpenses: money(t, "2300000"),
		OtherExpenses:     money(t, "150000"),
	})

	assert.Equal(t, "12500000", s.TotalRevenue.String())
	assert.Equal(t, "7450000", s.GrossProfit.String())
	assert.Equal(t, "7000000", s.TotalExpenses.String())
	assert.Equal(t, "5500000", s.ProfitBeforeTax.String())
	assert.Equal(t, "0", s.IncomeTax.String())
	assert.Equal(t, "5500000", s.ProfitAfterTax.String())
}

func TestAssembleStatement_LossPeriod(t *testing.T) {
	s := AssembleStatement(StatementInputs{
		OperatingRevenue:  money(t, "1000000"),
		COGS:              money(t, "1500000"),
		OperatingExpenses: money(t, "400000"),
	})

	assert.Equal(t, "-500000", s.GrossProfit.String())
	assert.Equal(t, "-900000", s.ProfitBeforeTax.String())
	assert.Equal(t, "-900000", s.ProfitAfterTax.String())
}

func TestAssembleStatement_ZeroInputs(t *testing.T) {
	s := AssembleStatement(StatementInputs{
		OperatingRevenue:  valueobject.ZeroMoney(),
		OtherRevenue:      valueobject.ZeroMoney(),
		COGS:              valueobject.ZeroMoney(),
		OperatingExpenses: valueobject.ZeroMoney(),
		OtherExpenses:     valueobject.ZeroMoney(),
	})

	assert.Equal(t, "0", s.TotalRevenue.String())
	assert.Equal(t, "0", s.ProfitAfterTax.String())
}

func TestAssembleStatement_TaxPassthrough(t *testing.T) {
	s := AssembleStatement(StatementInputs{
		OperatingRevenue: money(t, "8000000"),
		COGS:             money(t, "3000000"),
	})

	// Tax is a placeholder; after-tax must mirror before-tax exactly.
	assert.True(t, s.ProfitAfterTax.Equals(s.ProfitBeforeTax))
}
