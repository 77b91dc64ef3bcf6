package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfileInput is the inbound profile payload accepted from the API, the
// CLIs and profile files. Enum fields are matched case-insensitively.
type ProfileInput struct {
	Name                       string `json:"name"                       yaml:"name"`
	Age                        int    `json:"age"                        yaml:"age"`
	Gender                     string `json:"gender"                     yaml:"gender"`
	Occupation                 string `json:"occupation"                 yaml:"occupation"`
	MaritalStatus              string `json:"maritalStatus"              yaml:"maritalStatus"`
	NumberOfDependents         int    `json:"numberOfDependents"         yaml:"numberOfDependents"`
	AnnualIncome               int64  `json:"annualIncome"               yaml:"annualIncome"`
	MonthlyIncome              int64  `json:"monthlyIncome"              yaml:"monthlyIncome"`
	MonthlyExpenses            int64  `json:"monthlyExpenses"            yaml:"monthlyExpenses"`
	CurrentNetWorth            int64  `json:"currentNetWorth"            yaml:"currentNetWorth"`
	InvestedAsset              int64  `json:"investedAsset"              yaml:"investedAsset"`
	MonthlySurplus             int64  `json:"monthlySurplus"             yaml:"monthlySurplus"`
	StartingPrincipal          int64  `json:"startingPrincipal"          yaml:"startingPrincipal"`
	Loan                       int64  `json:"loan"                       yaml:"loan"`
	Insurance                  int64  `json:"insurance"                  yaml:"insurance"`
	RiskTakingAbility          string `json:"riskTakingAbility"          yaml:"riskTakingAbility"`
	PreferredInvestmentHorizon string `json:"preferredInvestmentHorizon" yaml:"preferredInvestmentHorizon"`
	PrimaryFinancialGoal       string `json:"primaryFinancialGoal"       yaml:"primaryFinancialGoal"`
	GoalTimelineYears          int    `json:"goalTimelineYears"          yaml:"goalTimelineYears"`
	LiquidityPreference        string `json:"liquidityPreference"        yaml:"liquidityPreference"`
}

// OwnedProfileInput pairs a profile payload with the user it belongs to. Bulk
// ingestion files are lists of these.
type OwnedProfileInput struct {
	UserID       string `json:"userId" yaml:"userId"`
	ProfileInput `yaml:",inline"`
}

// FinanceRecordInput is the inbound payload for creating or replacing a
// finance record. A zero Date means today.
type FinanceRecordInput struct {
	TransactionType string
	Amount          decimal.Decimal
	Category        string
	Description     string
	Date            time.Time
}
