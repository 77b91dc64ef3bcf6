package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/projection"
)

func TestIncomeBuckets(t *testing.T) {
	got := IncomeBuckets(domain.Profile{
		MonthlyIncome:  100000,
		AnnualIncome:   1200000,
		MonthlySurplus: 40000,
	})

	assert.Equal(t, []domain.ChartPoint{
		{Name: "Monthly Income", Value: 100000},
		{Name: "Annual Income", Value: 100000},
		{Name: "Monthly Surplus", Value: 40000},
	}, got)
}

func TestExpenseBuckets_DividesYearlyAmounts(t *testing.T) {
	got := ExpenseBuckets(domain.Profile{
		MonthlyExpenses: 60000,
		Loan:            200000,
		Insurance:       50000,
	})

	require.Len(t, got, 3)
	assert.Equal(t, "Loan Payments", got[1].Name)
	assert.Equal(t, 16666.67, got[1].Value)
	assert.Equal(t, "Insurance", got[2].Name)
	assert.Equal(t, 4166.67, got[2].Value)
}

func TestExpenseBuckets_AllZeroIsEmpty(t *testing.T) {
	got := ExpenseBuckets(domain.Profile{MonthlyIncome: 90000})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssetBuckets_FiltersZeroAndNegative(t *testing.T) {
	got := AssetBuckets(domain.Profile{
		CurrentNetWorth:   -5000,
		InvestedAsset:     300000,
		StartingPrincipal: 0,
	})

	assert.Equal(t, []domain.ChartPoint{{Name: "Invested Assets", Value: 300000}}, got)
}

func TestBuckets_TinyYearlyAmountRoundsAway(t *testing.T) {
	// 1/12 rounds to 0.08 and is still drawn.
	got := ExpenseBuckets(domain.Profile{Loan: 1})
	assert.Equal(t, []domain.ChartPoint{{Name: "Loan Payments", Value: 0.08}}, got)
}

func TestAllocationSlices(t *testing.T) {
	inv := projection.Investment(domain.Profile{RiskTakingAbility: domain.RiskLow})

	got := AllocationSlices(inv)
	assert.Equal(t, []domain.ChartPoint{
		{Name: "Equity", Value: 30},
		{Name: "Debt", Value: 60},
		{Name: "Gold", Value: 10},
	}, got)
}

func TestSummaryCardsAndPreferences(t *testing.T) {
	p := domain.Profile{AnnualIncome: 1200000, Loan: 200000, RiskTakingAbility: domain.RiskHigh}

	cards := SummaryCards(p)
	require.Len(t, cards, 5)
	assert.Equal(t, Card{Title: "Annual Income", Amount: 1200000}, cards[0])
	assert.Equal(t, Card{Title: "Invested Assets", Amount: 0}, cards[2])

	prefs := Preferences(p)
	assert.Equal(t, "High", prefs[0].Value)
	assert.Equal(t, "Not specified", prefs[1].Value)
}
