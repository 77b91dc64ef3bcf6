package projection

import (
	"math"

	"github.com/vanshika/finsight/backend/internal/domain"
)

const (
	// RetirementAge is the fixed age every retirement projection targets.
	RetirementAge = 60

	defaultAge            = 30
	defaultMonthlyIncome  = 50000
	defaultMonthlySurplus = 20000

	annualGrowthRate    = 0.06
	postRetirementYears = 25
	onTrackRatio        = 0.8
)

var retirementRecommendations = []string{
	"Consider increasing your monthly SIP by 15%",
	"Diversify your portfolio with equity mutual funds",
	"Review and optimize your insurance coverage",
	"Consider tax-saving investment options",
}

// Retirement projects the corpus the current monthly surplus grows into by
// age 60 and compares it with 25 years of current income.
func Retirement(p domain.Profile) domain.RetirementProjection {
	age := intOr(p.Age, defaultAge)
	income := float64(int64Or(p.MonthlyIncome, defaultMonthlyIncome))
	surplus := float64(int64Or(p.MonthlySurplus, defaultMonthlySurplus))

	years := RetirementAge - age
	if years < 0 {
		years = 0
	}

	totalSavings := surplus * 12 * float64(years)
	projected := totalSavings * math.Pow(1+annualGrowthRate, float64(years))
	required := income * 12 * postRetirementYears

	needed := 0.0
	if years > 0 {
		needed = math.Max(0, (required-totalSavings)/(12*float64(years)))
	}

	return domain.RetirementProjection{
		CurrentAge:              age,
		RetirementAge:           RetirementAge,
		YearsToRetirement:       years,
		ProjectedCorpus:         projected,
		RequiredCorpus:          required,
		MonthlyInvestmentNeeded: needed,
		IsOnTrack:               projected >= required*onTrackRatio,
		Recommendations:         append([]string(nil), retirementRecommendations...),
	}
}

func intOr(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func int64Or(v, fallback int64) int64 {
	if v == 0 {
		return fallback
	}
	return v
}
