package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinancialReport(t *testing.T) {
	owner := uuid.New()

	r, err := NewFinancialReport(owner, "CV Maju Jaya", 3, 2026, BusinessTrading)
	require.NoError(t, err)
	assert.Equal(t, "CV Maju Jaya", r.CompanyName)
	assert.Equal(t, BusinessTrading, r.BusinessType)
	assert.NotEqual(t, uuid.Nil, r.ID)

	_, err = NewFinancialReport(owner, "", 3, 2026, BusinessTrading)
	assert.Error(t, err)

	_, err = NewFinancialReport(owner, "CV Maju Jaya", 13, 2026, BusinessTrading)
	assert.Error(t, err)

	_, err = NewFinancialReport(owner, "CV Maju Jaya", 0, 2026, BusinessTrading)
	assert.Error(t, err)

	_, err = NewFinancialReport(owner, "CV Maju Jaya", 3, 1999, BusinessTrading)
	assert.Error(t, err)

	_, err = NewFinancialReport(owner, "CV Maju Jaya", 3, 2026, BusinessType("jasa"))
	assert.Error(t, err)
}

func TestFinancialReport_UpdateProfile(t *testing.T) {
	r, err := NewFinancialReport(uuid.New(), "CV Maju Jaya", 3, 2026, BusinessTrading)
	require.NoError(t, err)

	err = r.UpdateProfile(Profile{
		CompanyName:    "PT Karya Sentosa",
		Month:          4,
		Year:           2026,
		BusinessType:   BusinessManufacturing,
		BusinessStatus: "PT",
		UMKMIncentive:  true,
		OmzetAbove500M: false,
		PTKPStatus:     "K/1",
	})
	require.NoError(t, err)
	assert.Equal(t, "PT Karya Sentosa", r.CompanyName)
	assert.Equal(t, BusinessManufacturing, r.BusinessType)
	assert.True(t, r.UMKMIncentive)
	assert.Equal(t, "K/1", r.PTKPStatus)

	err = r.UpdateProfile(Profile{CompanyName: "", Month: 4, Year: 2026, BusinessType: BusinessTrading})
	assert.Error(t, err)
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(uuid.New(), "Produk A")
	require.NoError(t, err)
	assert.Equal(t, "Produk A", p.Name)

	_, err = NewProduct(uuid.Nil, "Produk A")
	assert.Error(t, err)

	_, err = NewProduct(uuid.New(), "")
	assert.Error(t, err)
}

func TestNewOperatingRevenue(t *testing.T) {
	item, err := NewOperatingRevenue(uuid.New(), uuid.New(), 40, money(t, "25000"))
	require.NoError(t, err)
	assert.Equal(t, RevenueOperating, item.Type)
	assert.Equal(t, "1000000", item.Amount.String())

	_, err = NewOperatingRevenue(uuid.New(), uuid.Nil, 40, money(t, "25000"))
	assert.Error(t, err)

	_, err = NewOperatingRevenue(uuid.New(), uuid.New(), -1, money(t, "25000"))
	assert.Error(t, err)
}

func TestNewOtherRevenue(t *testing.T) {
	item, err := NewOtherRevenue(uuid.New(), "bunga bank", money(t, "75000"))
	require.NoError(t, err)
	assert.Equal(t, RevenueOther, item.Type)
	assert.Nil(t, item.ProductID)
	assert.Equal(t, "75000", item.Amount.String())

	_, err = NewOtherRevenue(uuid.New(), "koreksi", money(t, "-1"))
	assert.Error(t, err)
}

func TestNewExpenseItem(t *testing.T) {
	item, err := NewExpenseItem(uuid.New(), ExpenseOperating, BusinessTrading, "sewa toko", money(t, "1500000"))
	require.NoError(t, err)
	assert.Equal(t, ExpenseOperating, item.Category)
	assert.Equal(t, BusinessTrading, item.Scope)

	_, err = NewExpenseItem(uuid.New(), ExpenseCategory("modal"), BusinessTrading, "x", money(t, "1"))
	assert.Error(t, err)

	_, err = NewExpenseItem(uuid.New(), ExpenseOperating, BusinessType("jasa"), "x", money(t, "1"))
	assert.Error(t, err)

	_, err = NewExpenseItem(uuid.New(), ExpenseOperating, BusinessTrading, "", money(t, "1"))
	assert.Error(t, err)
}
