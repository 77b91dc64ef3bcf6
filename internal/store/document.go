package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// profileDocument is the stored shape of a profile, shared by the key-value
// JSON encoding and the graph node properties.
type profileDocument struct {
	UserID                     string    `json:"userId"`
	Name                       string    `json:"name"`
	Age                        int       `json:"age"`
	Gender                     string    `json:"gender"`
	Occupation                 string    `json:"occupation"`
	MaritalStatus              string    `json:"maritalStatus"`
	NumberOfDependents         int       `json:"numberOfDependents"`
	AnnualIncome               int64     `json:"annualIncome"`
	MonthlyIncome              int64     `json:"monthlyIncome"`
	MonthlyExpenses            int64     `json:"monthlyExpenses"`
	CurrentNetWorth            int64     `json:"currentNetWorth"`
	InvestedAsset              int64     `json:"investedAsset"`
	MonthlySurplus             int64     `json:"monthlySurplus"`
	StartingPrincipal          int64     `json:"startingPrincipal"`
	Loan                       int64     `json:"loan"`
	Insurance                  int64     `json:"insurance"`
	RiskTakingAbility          string    `json:"riskTakingAbility"`
	PreferredInvestmentHorizon string    `json:"preferredInvestmentHorizon"`
	PrimaryFinancialGoal       string    `json:"primaryFinancialGoal"`
	GoalTimelineYears          int       `json:"goalTimelineYears"`
	LiquidityPreference        string    `json:"liquidityPreference"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

func newProfileDocument(userID string, p domain.Profile) profileDocument {
	return profileDocument{
		UserID:                     userID,
		Name:                       p.Name,
		Age:                        p.Age,
		Gender:                     string(p.Gender),
		Occupation:                 string(p.Occupation),
		MaritalStatus:              string(p.MaritalStatus),
		NumberOfDependents:         p.NumberOfDependents,
		AnnualIncome:               p.AnnualIncome,
		MonthlyIncome:              p.MonthlyIncome,
		MonthlyExpenses:            p.MonthlyExpenses,
		CurrentNetWorth:            p.CurrentNetWorth,
		InvestedAsset:              p.InvestedAsset,
		MonthlySurplus:             p.MonthlySurplus,
		StartingPrincipal:          p.StartingPrincipal,
		Loan:                       p.Loan,
		Insurance:                  p.Insurance,
		RiskTakingAbility:          string(p.RiskTakingAbility),
		PreferredInvestmentHorizon: string(p.PreferredInvestmentHorizon),
		PrimaryFinancialGoal:       string(p.PrimaryFinancialGoal),
		GoalTimelineYears:          p.GoalTimelineYears,
		LiquidityPreference:        string(p.LiquidityPreference),
		CreatedAt:                  p.CreatedAt.UTC(),
		UpdatedAt:                  p.UpdatedAt.UTC(),
	}
}

func (d profileDocument) toDomain() domain.Profile {
	return domain.Profile{
		UserID:                     d.UserID,
		Name:                       d.Name,
		Age:                        d.Age,
		Gender:                     domain.Gender(d.Gender),
		Occupation:                 domain.Occupation(d.Occupation),
		MaritalStatus:              domain.MaritalStatus(d.MaritalStatus),
		NumberOfDependents:         d.NumberOfDependents,
		AnnualIncome:               d.AnnualIncome,
		MonthlyIncome:              d.MonthlyIncome,
		MonthlyExpenses:            d.MonthlyExpenses,
		CurrentNetWorth:            d.CurrentNetWorth,
		InvestedAsset:              d.InvestedAsset,
		MonthlySurplus:             d.MonthlySurplus,
		StartingPrincipal:          d.StartingPrincipal,
		Loan:                       d.Loan,
		Insurance:                  d.Insurance,
		RiskTakingAbility:          domain.RiskLevel(d.RiskTakingAbility),
		PreferredInvestmentHorizon: domain.Horizon(d.PreferredInvestmentHorizon),
		PrimaryFinancialGoal:       domain.Goal(d.PrimaryFinancialGoal),
		GoalTimelineYears:          d.GoalTimelineYears,
		LiquidityPreference:        domain.Liquidity(d.LiquidityPreference),
		CreatedAt:                  d.CreatedAt,
		UpdatedAt:                  d.UpdatedAt,
	}
}

// properties flattens the document into graph node properties. createdAt is
// left out; the write query sets it only when the node is first created.
func (d profileDocument) properties() map[string]any {
	return map[string]any{
		"userId":                     d.UserID,
		"name":                       d.Name,
		"age":                        int64(d.Age),
		"gender":                     d.Gender,
		"occupation":                 d.Occupation,
		"maritalStatus":              d.MaritalStatus,
		"numberOfDependents":         int64(d.NumberOfDependents),
		"annualIncome":               d.AnnualIncome,
		"monthlyIncome":              d.MonthlyIncome,
		"monthlyExpenses":            d.MonthlyExpenses,
		"currentNetWorth":            d.CurrentNetWorth,
		"investedAsset":              d.InvestedAsset,
		"monthlySurplus":             d.MonthlySurplus,
		"startingPrincipal":          d.StartingPrincipal,
		"loan":                       d.Loan,
		"insurance":                  d.Insurance,
		"riskTakingAbility":          d.RiskTakingAbility,
		"preferredInvestmentHorizon": d.PreferredInvestmentHorizon,
		"primaryFinancialGoal":       d.PrimaryFinancialGoal,
		"goalTimelineYears":          int64(d.GoalTimelineYears),
		"liquidityPreference":        d.LiquidityPreference,
		"updatedAt":                  formatTime(d.UpdatedAt),
	}
}

func profileFromProperties(props map[string]any) domain.Profile {
	d := profileDocument{
		UserID:                     toString(props["userId"]),
		Name:                       toString(props["name"]),
		Age:                        int(toInt64(props["age"])),
		Gender:                     toString(props["gender"]),
		Occupation:                 toString(props["occupation"]),
		MaritalStatus:              toString(props["maritalStatus"]),
		NumberOfDependents:         int(toInt64(props["numberOfDependents"])),
		AnnualIncome:               toInt64(props["annualIncome"]),
		MonthlyIncome:              toInt64(props["monthlyIncome"]),
		MonthlyExpenses:            toInt64(props["monthlyExpenses"]),
		CurrentNetWorth:            toInt64(props["currentNetWorth"]),
		InvestedAsset:              toInt64(props["investedAsset"]),
		MonthlySurplus:             toInt64(props["monthlySurplus"]),
		StartingPrincipal:          toInt64(props["startingPrincipal"]),
		Loan:                       toInt64(props["loan"]),
		Insurance:                  toInt64(props["insurance"]),
		RiskTakingAbility:          toString(props["riskTakingAbility"]),
		PreferredInvestmentHorizon: toString(props["preferredInvestmentHorizon"]),
		PrimaryFinancialGoal:       toString(props["primaryFinancialGoal"]),
		GoalTimelineYears:          int(toInt64(props["goalTimelineYears"])),
		LiquidityPreference:        toString(props["liquidityPreference"]),
		CreatedAt:                  toTime(props["createdAt"]),
		UpdatedAt:                  toTime(props["updatedAt"]),
	}
	return d.toDomain()
}

// recordDocument is the stored shape of a finance record. Amounts are kept
// as decimal strings so no precision is lost in either backend.
type recordDocument struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func newRecordDocument(r domain.FinanceRecord) recordDocument {
	return recordDocument{
		ID:              r.ID,
		UserID:          r.UserID,
		TransactionType: string(r.TransactionType),
		Amount:          r.Amount,
		Category:        r.Category,
		Description:     r.Description,
		Date:            r.Date.UTC(),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

func (d recordDocument) toDomain() domain.FinanceRecord {
	return domain.FinanceRecord{
		ID:              d.ID,
		UserID:          d.UserID,
		TransactionType: domain.RecordType(d.TransactionType),
		Amount:          d.Amount,
		Category:        d.Category,
		Description:     d.Description,
		Date:            d.Date,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (d recordDocument) properties() map[string]any {
	return map[string]any{
		"recordId":        d.ID,
		"userId":          d.UserID,
		"transactionType": d.TransactionType,
		"amount":          d.Amount.String(),
		"category":        d.Category,
		"description":     d.Description,
		"date":            formatTime(d.Date),
		"createdAt":       formatTime(d.CreatedAt),
		"updatedAt":       formatTime(d.UpdatedAt),
	}
}

func recordFromProperties(props map[string]any) (domain.FinanceRecord, error) {
	amount, err := decimal.NewFromString(toString(props["amount"]))
	if err != nil {
		return domain.FinanceRecord{}, fmt.Errorf("decode amount of record %v: %w", props["recordId"], err)
	}
	d := recordDocument{
		ID:              toString(props["recordId"]),
		UserID:          toString(props["userId"]),
		TransactionType: toString(props["transactionType"]),
		Amount:          amount,
		Category:        toString(props["category"]),
		Description:     toString(props["description"]),
		Date:            toTime(props["date"]),
		CreatedAt:       toTime(props["createdAt"]),
		UpdatedAt:       toTime(props["updatedAt"]),
	}
	return d.toDomain(), nil
}

// sortableTime keeps every fractional digit so stored timestamps compare
// lexically in chronological order. time.RFC3339Nano still parses it.
const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sortableTime)
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func toTime(val any) time.Time {
	switch v := val.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if v == "" {
			return time.Time{}
		}
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
