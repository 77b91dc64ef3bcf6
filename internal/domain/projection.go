package domain

// RetirementProjection estimates the retirement corpus from current savings.
type RetirementProjection struct {
	CurrentAge              int
	RetirementAge           int
	YearsToRetirement       int
	ProjectedCorpus         float64
	RequiredCorpus          float64
	MonthlyInvestmentNeeded float64
	IsOnTrack               bool
	Recommendations         []string
}

// Allocation splits a contribution across asset classes, in whole percent.
type Allocation struct {
	Equity int
	Debt   int
	Gold   int
}

// Total returns the sum of the three percentages.
func (a Allocation) Total() int {
	return a.Equity + a.Debt + a.Gold
}

// ExpectedReturns is the one-year value of twelve contributions under three
// return assumptions.
type ExpectedReturns struct {
	Conservative float64
	Moderate     float64
	Aggressive   float64
}

// InvestmentProjection recommends an allocation for the monthly surplus.
type InvestmentProjection struct {
	RiskProfile           RiskLevel
	RecommendedAllocation Allocation
	MonthlyInvestment     int64
	ExpectedReturns       ExpectedReturns
	Recommendations       []string
}

// RiskFactors holds the qualitative label for each scoring input.
type RiskFactors struct {
	Age        string
	Dependents string
	Debt       string
	Insurance  string
}

// RiskAssessment scores how much risk the user can take on, 0 to 100.
type RiskAssessment struct {
	RiskScore       int
	RiskCategory    RiskLevel
	Factors         RiskFactors
	Recommendations []string
}

// Projections bundles the three projections computed from one profile snapshot.
type Projections struct {
	Retirement RetirementProjection
	Investment InvestmentProjection
	Risk       RiskAssessment
}

// ChartPoint is a single named slice of a proportional chart.
type ChartPoint struct {
	Name  string
	Value float64
}
