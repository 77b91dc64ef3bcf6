package chart

import "github.com/vanshika/finsight/backend/internal/domain"

// Card is a headline figure on the dashboard.
type Card struct {
	Title  string
	Amount int64
}

// SummaryCards returns the dashboard header figures in display order. Absent
// amounts are shown as zero.
func SummaryCards(p domain.Profile) []Card {
	return []Card{
		{Title: "Annual Income", Amount: p.AnnualIncome},
		{Title: "Monthly Income", Amount: p.MonthlyIncome},
		{Title: "Invested Assets", Amount: p.InvestedAsset},
		{Title: "Loan", Amount: p.Loan},
		{Title: "Insurance", Amount: p.Insurance},
	}
}

// Preference is a labelled profile preference.
type Preference struct {
	Label string
	Value string
}

// Preferences lists the investment preferences, using "Not specified" for
// absent values.
func Preferences(p domain.Profile) []Preference {
	return []Preference{
		{Label: "Risk Taking Ability", Value: orNotSpecified(string(p.RiskTakingAbility))},
		{Label: "Investment Horizon", Value: orNotSpecified(string(p.PreferredInvestmentHorizon))},
		{Label: "Primary Goal", Value: orNotSpecified(string(p.PrimaryFinancialGoal))},
		{Label: "Liquidity Preference", Value: orNotSpecified(string(p.LiquidityPreference))},
	}
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
