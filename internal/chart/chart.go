// Package chart reshapes a profile and its projections into the series the
// dashboard charts and summary cards render.
package chart

import (
	"github.com/shopspring/decimal"

	"github.com/vanshika/finsight/backend/internal/domain"
)

const valuePlaces = 2

var twelve = decimal.NewFromInt(12)

type bucket struct {
	name  string
	value decimal.Decimal
}

// IncomeBuckets splits income into monthly income, monthly share of annual
// income and monthly surplus.
func IncomeBuckets(p domain.Profile) []domain.ChartPoint {
	return points(
		bucket{"Monthly Income", decimal.NewFromInt(p.MonthlyIncome)},
		bucket{"Annual Income", monthly(p.AnnualIncome)},
		bucket{"Monthly Surplus", decimal.NewFromInt(p.MonthlySurplus)},
	)
}

// ExpenseBuckets splits monthly outgoings into expenses, loan payments and
// insurance premiums.
func ExpenseBuckets(p domain.Profile) []domain.ChartPoint {
	return points(
		bucket{"Monthly Expenses", decimal.NewFromInt(p.MonthlyExpenses)},
		bucket{"Loan Payments", monthly(p.Loan)},
		bucket{"Insurance", monthly(p.Insurance)},
	)
}

// AssetBuckets splits holdings into net worth, invested assets and starting
// principal.
func AssetBuckets(p domain.Profile) []domain.ChartPoint {
	return points(
		bucket{"Net Worth", decimal.NewFromInt(p.CurrentNetWorth)},
		bucket{"Invested Assets", decimal.NewFromInt(p.InvestedAsset)},
		bucket{"Starting Principal", decimal.NewFromInt(p.StartingPrincipal)},
	)
}

// AllocationSlices turns a recommended allocation into a percentage pie.
func AllocationSlices(inv domain.InvestmentProjection) []domain.ChartPoint {
	a := inv.RecommendedAllocation
	return points(
		bucket{"Equity", decimal.NewFromInt(int64(a.Equity))},
		bucket{"Debt", decimal.NewFromInt(int64(a.Debt))},
		bucket{"Gold", decimal.NewFromInt(int64(a.Gold))},
	)
}

// points keeps only strictly positive buckets, in the order given. An empty
// result means there is nothing to draw.
func points(buckets ...bucket) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		v := b.value.Round(valuePlaces)
		if !v.IsPositive() {
			continue
		}
		out = append(out, domain.ChartPoint{Name: b.name, Value: v.InexactFloat64()})
	}
	return out
}

func monthly(yearly int64) decimal.Decimal {
	return decimal.NewFromInt(yearly).Div(twelve)
}
