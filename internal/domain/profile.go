package domain

import "time"

// Gender captures the self-declared gender on the intake form.
type Gender string

const (
	GenderFemale         Gender = "Female"
	GenderMale           Gender = "Male"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

// Occupation describes the user's employment situation.
type Occupation string

const (
	OccupationSalaried     Occupation = "Salaried"
	OccupationBusiness     Occupation = "Business"
	OccupationNotSalaried  Occupation = "Not salaried"
	OccupationRetired      Occupation = "Retired"
	OccupationSelfEmployed Occupation = "Self Employed"
	OccupationStudent      Occupation = "Student"
)

// MaritalStatus describes household composition.
type MaritalStatus string

const (
	MaritalSingle              MaritalStatus = "Single"
	MaritalMarried             MaritalStatus = "Married"
	MaritalMarriedWithChildren MaritalStatus = "Married with Children"
)

// RiskLevel is the risk tier that drives allocation percentages.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Horizon is the preferred investment horizon.
type Horizon string

const (
	HorizonShort  Horizon = "Short"
	HorizonMedium Horizon = "Medium"
	HorizonLong   Horizon = "Long"
)

// Goal is the primary financial goal.
type Goal string

const (
	GoalRetirement       Goal = "Retirement"
	GoalEducation        Goal = "Education"
	GoalHouse            Goal = "House"
	GoalWealthGrowth     Goal = "Wealth Growth"
	GoalShortTermGains   Goal = "Short Term Gains"
	GoalStartingBusiness Goal = "Starting a Business"
)

// Liquidity is the liquidity preference.
type Liquidity string

const (
	LiquidityLow    Liquidity = "Low"
	LiquidityMedium Liquidity = "Medium"
	LiquidityHigh   Liquidity = "High"
)

var (
	genders        = []Gender{GenderFemale, GenderMale, GenderOther, GenderPreferNotToSay}
	occupations    = []Occupation{OccupationSalaried, OccupationBusiness, OccupationNotSalaried, OccupationRetired, OccupationSelfEmployed, OccupationStudent}
	maritalStatus  = []MaritalStatus{MaritalSingle, MaritalMarried, MaritalMarriedWithChildren}
	riskLevels     = []RiskLevel{RiskLow, RiskModerate, RiskHigh}
	horizons       = []Horizon{HorizonShort, HorizonMedium, HorizonLong}
	goals          = []Goal{GoalRetirement, GoalEducation, GoalHouse, GoalWealthGrowth, GoalShortTermGains, GoalStartingBusiness}
	liquidityPrefs = []Liquidity{LiquidityLow, LiquidityMedium, LiquidityHigh}
)

func (g Gender) Valid() bool        { return g == "" || contains(genders, g) }
func (o Occupation) Valid() bool    { return o == "" || contains(occupations, o) }
func (m MaritalStatus) Valid() bool { return m == "" || contains(maritalStatus, m) }
func (r RiskLevel) Valid() bool     { return r == "" || contains(riskLevels, r) }
func (h Horizon) Valid() bool       { return h == "" || contains(horizons, h) }
func (g Goal) Valid() bool          { return g == "" || contains(goals, g) }
func (l Liquidity) Valid() bool     { return l == "" || contains(liquidityPrefs, l) }

// Genders lists the accepted gender values in form order.
func Genders() []Gender { return append([]Gender(nil), genders...) }

// Occupations lists the accepted occupation values in form order.
func Occupations() []Occupation { return append([]Occupation(nil), occupations...) }

// MaritalStatuses lists the accepted marital status values in form order.
func MaritalStatuses() []MaritalStatus { return append([]MaritalStatus(nil), maritalStatus...) }

// RiskLevels lists the risk tiers from lowest to highest.
func RiskLevels() []RiskLevel { return append([]RiskLevel(nil), riskLevels...) }

// Horizons lists the investment horizons from shortest to longest.
func Horizons() []Horizon { return append([]Horizon(nil), horizons...) }

// Goals lists the accepted financial goals in form order.
func Goals() []Goal { return append([]Goal(nil), goals...) }

// LiquidityPreferences lists the accepted liquidity preferences.
func LiquidityPreferences() []Liquidity { return append([]Liquidity(nil), liquidityPrefs...) }

func contains[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}

// Profile is the persisted financial-intake record for one user. Monetary
// fields are whole currency units; a zero value means the field was not
// supplied.
type Profile struct {
	UserID string

	Name               string
	Age                int
	Gender             Gender
	Occupation         Occupation
	MaritalStatus      MaritalStatus
	NumberOfDependents int

	AnnualIncome      int64
	MonthlyIncome     int64
	MonthlyExpenses   int64
	CurrentNetWorth   int64
	InvestedAsset     int64
	MonthlySurplus    int64
	StartingPrincipal int64
	Loan              int64
	Insurance         int64

	RiskTakingAbility          RiskLevel
	PreferredInvestmentHorizon Horizon
	PrimaryFinancialGoal       Goal
	GoalTimelineYears          int
	LiquidityPreference        Liquidity

	CreatedAt time.Time
	UpdatedAt time.Time
}
