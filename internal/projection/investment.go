package projection

import (
	"fmt"

	"github.com/vanshika/finsight/backend/internal/domain"
)

var allocations = map[domain.RiskLevel]domain.Allocation{
	domain.RiskLow:      {Equity: 30, Debt: 60, Gold: 10},
	domain.RiskModerate: {Equity: 60, Debt: 30, Gold: 10},
	domain.RiskHigh:     {Equity: 80, Debt: 15, Gold: 5},
}

const (
	conservativeReturn = 1.08
	moderateReturn     = 1.12
	aggressiveReturn   = 1.15
)

// AllocationFor returns the fixed allocation row for a risk tier. Unknown or
// empty tiers resolve to the Moderate row; the returned level names the row used.
func AllocationFor(level domain.RiskLevel) (domain.RiskLevel, domain.Allocation) {
	if alloc, ok := allocations[level]; ok {
		return level, alloc
	}
	return domain.RiskModerate, allocations[domain.RiskModerate]
}

// Investment recommends how to split the monthly surplus between equity, debt
// and gold for the profile's risk tier.
func Investment(p domain.Profile) domain.InvestmentProjection {
	level, alloc := AllocationFor(p.RiskTakingAbility)
	surplus := int64Or(p.MonthlySurplus, defaultMonthlySurplus)
	yearly := float64(surplus) * 12

	return domain.InvestmentProjection{
		RiskProfile:           level,
		RecommendedAllocation: alloc,
		MonthlyInvestment:     surplus,
		ExpectedReturns: domain.ExpectedReturns{
			Conservative: yearly * conservativeReturn,
			Moderate:     yearly * moderateReturn,
			Aggressive:   yearly * aggressiveReturn,
		},
		Recommendations: []string{
			fmt.Sprintf("Invest %d%% in equity mutual funds", alloc.Equity),
			fmt.Sprintf("Allocate %d%% to debt instruments", alloc.Debt),
			fmt.Sprintf("Keep %d%% in gold/commodities", alloc.Gold),
			"Review portfolio quarterly and rebalance",
		},
	}
}
