package server

import (
	"github.com/shopspring/decimal"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/service"
)

// --- Request & Response DTOs ---

// profileRequest accepts a profile body. Identity and timestamps echoed back
// from a previous response are tolerated and ignored.
type profileRequest struct {
	service.ProfileInput
	UserID    string `json:"userId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type profileResponse struct {
	UserID                     string `json:"userId"`
	Name                       string `json:"name"`
	Age                        int    `json:"age"`
	Gender                     string `json:"gender"`
	Occupation                 string `json:"occupation"`
	MaritalStatus              string `json:"maritalStatus"`
	NumberOfDependents         int    `json:"numberOfDependents"`
	AnnualIncome               int64  `json:"annualIncome"`
	MonthlyIncome              int64  `json:"monthlyIncome"`
	MonthlyExpenses            int64  `json:"monthlyExpenses"`
	CurrentNetWorth            int64  `json:"currentNetWorth"`
	InvestedAsset              int64  `json:"investedAsset"`
	MonthlySurplus             int64  `json:"monthlySurplus"`
	StartingPrincipal          int64  `json:"startingPrincipal"`
	Loan                       int64  `json:"loan"`
	Insurance                  int64  `json:"insurance"`
	RiskTakingAbility          string `json:"riskTakingAbility"`
	PreferredInvestmentHorizon string `json:"preferredInvestmentHorizon"`
	PrimaryFinancialGoal       string `json:"primaryFinancialGoal"`
	GoalTimelineYears          int    `json:"goalTimelineYears"`
	LiquidityPreference        string `json:"liquidityPreference"`
	CreatedAt                  string `json:"createdAt"`
	UpdatedAt                  string `json:"updatedAt"`
}

func newProfileResponse(p domain.Profile) profileResponse {
	in := service.InputFromProfile(p)
	return profileResponse{
		UserID:                     p.UserID,
		Name:                       in.Name,
		Age:                        in.Age,
		Gender:                     in.Gender,
		Occupation:                 in.Occupation,
		MaritalStatus:              in.MaritalStatus,
		NumberOfDependents:         in.NumberOfDependents,
		AnnualIncome:               in.AnnualIncome,
		MonthlyIncome:              in.MonthlyIncome,
		MonthlyExpenses:            in.MonthlyExpenses,
		CurrentNetWorth:            in.CurrentNetWorth,
		InvestedAsset:              in.InvestedAsset,
		MonthlySurplus:             in.MonthlySurplus,
		StartingPrincipal:          in.StartingPrincipal,
		Loan:                       in.Loan,
		Insurance:                  in.Insurance,
		RiskTakingAbility:          in.RiskTakingAbility,
		PreferredInvestmentHorizon: in.PreferredInvestmentHorizon,
		PrimaryFinancialGoal:       in.PrimaryFinancialGoal,
		GoalTimelineYears:          in.GoalTimelineYears,
		LiquidityPreference:        in.LiquidityPreference,
		CreatedAt:                  formatTime(p.CreatedAt),
		UpdatedAt:                  formatTime(p.UpdatedAt),
	}
}

type notFoundResponse struct {
	Error  string `json:"error"`
	Action string `json:"action"`
}

type retirementResponse struct {
	CurrentAge              int      `json:"currentAge"`
	RetirementAge           int      `json:"retirementAge"`
	YearsToRetirement       int      `json:"yearsToRetirement"`
	ProjectedCorpus         float64  `json:"projectedCorpus"`
	RequiredCorpus          float64  `json:"requiredCorpus"`
	MonthlyInvestmentNeeded float64  `json:"monthlyInvestmentNeeded"`
	IsOnTrack               bool     `json:"isOnTrack"`
	Recommendations         []string `json:"recommendations"`
}

type allocationResponse struct {
	Equity int `json:"equity"`
	Debt   int `json:"debt"`
	Gold   int `json:"gold"`
}

type expectedReturnsResponse struct {
	Conservative float64 `json:"conservative"`
	Moderate     float64 `json:"moderate"`
	Aggressive   float64 `json:"aggressive"`
}

type investmentResponse struct {
	RiskProfile           string                  `json:"riskProfile"`
	RecommendedAllocation allocationResponse      `json:"recommendedAllocation"`
	MonthlyInvestment     int64                   `json:"monthlyInvestment"`
	ExpectedReturns       expectedReturnsResponse `json:"expectedReturns"`
	Recommendations       []string                `json:"recommendations"`
}

type riskFactorsResponse struct {
	Age        string `json:"age"`
	Dependents string `json:"dependents"`
	Debt       string `json:"debt"`
	Insurance  string `json:"insurance"`
}

type riskResponse struct {
	RiskScore       int                 `json:"riskScore"`
	RiskCategory    string              `json:"riskCategory"`
	Factors         riskFactorsResponse `json:"factors"`
	Recommendations []string            `json:"recommendations"`
}

type projectionsResponse struct {
	Retirement retirementResponse `json:"retirementProjection"`
	Investment investmentResponse `json:"investmentProjection"`
	Risk       riskResponse       `json:"riskAssessment"`
}

func newProjectionsResponse(p domain.Projections) projectionsResponse {
	ret, inv, risk := p.Retirement, p.Investment, p.Risk
	return projectionsResponse{
		Retirement: retirementResponse{
			CurrentAge:              ret.CurrentAge,
			RetirementAge:           ret.RetirementAge,
			YearsToRetirement:       ret.YearsToRetirement,
			ProjectedCorpus:         ret.ProjectedCorpus,
			RequiredCorpus:          ret.RequiredCorpus,
			MonthlyInvestmentNeeded: ret.MonthlyInvestmentNeeded,
			IsOnTrack:               ret.IsOnTrack,
			Recommendations:         nonNil(ret.Recommendations),
		},
		Investment: investmentResponse{
			RiskProfile: string(inv.RiskProfile),
			RecommendedAllocation: allocationResponse{
				Equity: inv.RecommendedAllocation.Equity,
				Debt:   inv.RecommendedAllocation.Debt,
				Gold:   inv.RecommendedAllocation.Gold,
			},
			MonthlyInvestment: inv.MonthlyInvestment,
			ExpectedReturns: expectedReturnsResponse{
				Conservative: inv.ExpectedReturns.Conservative,
				Moderate:     inv.ExpectedReturns.Moderate,
				Aggressive:   inv.ExpectedReturns.Aggressive,
			},
			Recommendations: nonNil(inv.Recommendations),
		},
		Risk: riskResponse{
			RiskScore:    risk.RiskScore,
			RiskCategory: string(risk.RiskCategory),
			Factors: riskFactorsResponse{
				Age:        risk.Factors.Age,
				Dependents: risk.Factors.Dependents,
				Debt:       risk.Factors.Debt,
				Insurance:  risk.Factors.Insurance,
			},
			Recommendations: nonNil(risk.Recommendations),
		},
	}
}

type chartPointResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type cardResponse struct {
	Title   string `json:"title"`
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
}

type preferenceResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type formattedMoneyResponse struct {
	Currency                string `json:"currency"`
	ProjectedCorpus         string `json:"projectedCorpus"`
	RequiredCorpus          string `json:"requiredCorpus"`
	MonthlyInvestmentNeeded string `json:"monthlyInvestmentNeeded"`
	MonthlyInvestment       string `json:"monthlyInvestment"`
}

// chartSeriesResponse flags an empty series so the client can show a
// placeholder instead of an empty chart.
type chartSeriesResponse struct {
	Points []chartPointResponse `json:"points"`
	Empty  bool                 `json:"empty"`
}

type chartsResponse struct {
	Income     chartSeriesResponse `json:"income"`
	Expenses   chartSeriesResponse `json:"expenses"`
	Assets     chartSeriesResponse `json:"assets"`
	Allocation chartSeriesResponse `json:"allocation"`
}

type dashboardResponse struct {
	Profile     profileResponse        `json:"profile"`
	Projections projectionsResponse    `json:"projections"`
	Charts      chartsResponse         `json:"charts"`
	Cards       []cardResponse         `json:"cards"`
	Preferences []preferenceResponse   `json:"preferences"`
	Formatted   formattedMoneyResponse `json:"formatted"`
}

func newDashboardResponse(d service.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Profile:     newProfileResponse(d.Profile),
		Projections: newProjectionsResponse(d.Projections),
		Charts: chartsResponse{
			Income:     chartSeries(d.Income),
			Expenses:   chartSeries(d.Expenses),
			Assets:     chartSeries(d.Assets),
			Allocation: chartSeries(d.Allocation),
		},
		Cards:       make([]cardResponse, 0, len(d.Cards)),
		Preferences: make([]preferenceResponse, 0, len(d.Preferences)),
		Formatted: formattedMoneyResponse{
			Currency:                d.Money.Currency,
			ProjectedCorpus:         d.Money.ProjectedCorpus,
			RequiredCorpus:          d.Money.RequiredCorpus,
			MonthlyInvestmentNeeded: d.Money.MonthlyInvestmentNeeded,
			MonthlyInvestment:       d.Money.MonthlyInvestment,
		},
	}
	for _, c := range d.Cards {
		resp.Cards = append(resp.Cards, cardResponse{Title: c.Title, Amount: c.Amount, Display: c.Display})
	}
	for _, p := range d.Preferences {
		resp.Preferences = append(resp.Preferences, preferenceResponse{Label: p.Label, Value: p.Value})
	}
	return resp
}

func chartSeries(points []domain.ChartPoint) chartSeriesResponse {
	out := make([]chartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, chartPointResponse{Name: p.Name, Value: p.Value})
	}
	return chartSeriesResponse{Points: out, Empty: len(out) == 0}
}

type recordRequest struct {
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Date            string          `json:"date"`
}

type recordResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	Date            string          `json:"date"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type listRecordsResponse struct {
	Items []recordResponse `json:"items"`
}

func newRecordResponse(r domain.FinanceRecord) recordResponse {
	return recordResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		TransactionType: string(r.TransactionType),
		Amount:          r.Amount,
		Category:        r.Category,
		Description:     r.Description,
		Date:            r.Date.UTC().Format("2006-01-02"),
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
