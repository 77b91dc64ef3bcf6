package projection

import (
	"math"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// Risk scoring follows the dashboard's rule set. The older server-side
// predictor scored upward from 0 with different thresholds and is not used.
const (
	baseRiskScore = 50
	minRiskScore  = 0
	maxRiskScore  = 100

	// Dependents beyond this bound cannot change the clamped score.
	maxCountedDependents = 1000
)

// Risk scores the profile's capacity to take on investment risk and maps the
// score to a tier.
func Risk(p domain.Profile) domain.RiskAssessment {
	age := intOr(p.Age, defaultAge)
	dependents := p.NumberOfDependents
	loan := p.Loan
	insurance := p.Insurance
	income := int64Or(p.MonthlyIncome, defaultMonthlyIncome)

	score := RiskScore(age, dependents, loan, insurance, income)

	return domain.RiskAssessment{
		RiskScore:    score,
		RiskCategory: RiskCategory(score),
		Factors: domain.RiskFactors{
			Age:        pick(age < 35, "Favorable", "Moderate"),
			Dependents: pick(dependents == 0, "Low Risk", "Higher Risk"),
			Debt:       pick(loan < mulSat(income, 12), "Manageable", "High"),
			Insurance:  pick(insurance >= mulSat(income, 10), "Adequate", "Insufficient"),
		},
		Recommendations: []string{
			pick(score < 40, "Focus on capital preservation", "Consider growth investments"),
			pick(dependents > 0, "Increase life insurance coverage", "Optimize insurance costs"),
			pick(loan > mulSat(income, 12), "Prioritize debt reduction", "Maintain current debt levels"),
			"Build emergency fund of 6-12 months expenses",
		},
	}
}

// RiskScore applies the additive adjustments to the base score and clamps the
// result to [0, 100]. Inputs are used as given, without defaults.
func RiskScore(age, dependents int, loan, insurance, monthlyIncome int64) int {
	score := int64(baseRiskScore)

	switch {
	case age < 30:
		score += 20
	case age < 40:
		score += 10
	case age > 50:
		score -= 15
	}

	if dependents > maxCountedDependents {
		dependents = maxCountedDependents
	} else if dependents < -maxCountedDependents {
		dependents = -maxCountedDependents
	}
	score -= int64(dependents) * 5

	if loan > mulSat(monthlyIncome, 24) {
		score -= 20
	}
	if insurance < mulSat(monthlyIncome, 12) {
		score -= 10
	}

	if score < minRiskScore {
		score = minRiskScore
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}
	return int(score)
}

// RiskCategory maps a score to its tier: above 60 is High, above 40 Moderate.
func RiskCategory(score int) domain.RiskLevel {
	switch {
	case score > 60:
		return domain.RiskHigh
	case score > 40:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}

// mulSat multiplies by a positive factor, saturating at the int64 bounds.
func mulSat(v, factor int64) int64 {
	if v > math.MaxInt64/factor {
		return math.MaxInt64
	}
	if v < math.MinInt64/factor {
		return math.MinInt64
	}
	return v * factor
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
