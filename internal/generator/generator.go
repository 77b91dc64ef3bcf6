package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/service"
)

// Dataset contains the generated profiles.
type Dataset struct {
	Profiles []service.OwnedProfileInput `json:"profiles" yaml:"profiles"`
}

// Generator produces synthetic but internally consistent profiles: annual
// income is twelve months of income and the surplus is income minus expenses.
type Generator struct {
	cfg   Config
	rand  *rand.Rand
	names nameFragments
	used  []string
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumProfiles <= 0 {
		cfg.NumProfiles = DefaultConfig().NumProfiles
	}
	cfg.SharedNameChance = clamp(cfg.SharedNameChance)
	cfg.ZeroFieldChance = clamp(cfg.ZeroFieldChance)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(cfg.Seed)),
		names: defaultNameFragments(),
	}
}

// Generate synthesises profiles. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	profiles := make([]service.OwnedProfileInput, g.cfg.NumProfiles)
	for i := range profiles {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		profiles[i] = service.OwnedProfileInput{
			UserID:       fmt.Sprintf("USR-%06d", i+1),
			ProfileInput: g.profile(),
		}
	}
	return Dataset{Profiles: profiles}, nil
}

func (g *Generator) profile() service.ProfileInput {
	age := 21 + g.rand.Intn(50)
	income := roundTo(20000+g.rand.Int63n(380000), 1000)
	expenses := roundTo(income*int64(40+g.rand.Intn(45))/100, 500)
	surplus := income - expenses
	invested := roundTo(income*int64(g.rand.Intn(60)), 10000)

	occupation := pickOne(g.rand, domain.Occupations())
	switch {
	case age >= 60:
		occupation = domain.OccupationRetired
	case age < 24 && g.rand.Intn(2) == 0:
		occupation = domain.OccupationStudent
	}

	marital := pickOne(g.rand, domain.MaritalStatuses())
	dependents := 0
	if marital == domain.MaritalMarriedWithChildren {
		dependents = 1 + g.rand.Intn(4)
	}

	return service.ProfileInput{
		Name:                       g.name(),
		Age:                        age,
		Gender:                     string(pickOne(g.rand, domain.Genders())),
		Occupation:                 string(occupation),
		MaritalStatus:              string(marital),
		NumberOfDependents:         dependents,
		AnnualIncome:               income * 12,
		MonthlyIncome:              g.maybeZero(income),
		MonthlyExpenses:            g.maybeZero(expenses),
		CurrentNetWorth:            invested + roundTo(g.rand.Int63n(5000000), 10000),
		InvestedAsset:              invested,
		MonthlySurplus:             g.maybeZero(surplus),
		StartingPrincipal:          g.maybeZero(roundTo(g.rand.Int63n(500000), 5000)),
		Loan:                       g.maybeZero(roundTo(income*int64(g.rand.Intn(36)), 10000)),
		Insurance:                  g.maybeZero(roundTo(income*int64(g.rand.Intn(24)), 10000)),
		RiskTakingAbility:          string(pickOne(g.rand, domain.RiskLevels())),
		PreferredInvestmentHorizon: string(pickOne(g.rand, domain.Horizons())),
		PrimaryFinancialGoal:       string(pickOne(g.rand, domain.Goals())),
		GoalTimelineYears:          1 + g.rand.Intn(30),
		LiquidityPreference:        string(pickOne(g.rand, domain.LiquidityPreferences())),
	}
}

func (g *Generator) name() string {
	if len(g.used) > 0 && g.rand.Float64() < g.cfg.SharedNameChance {
		return g.used[g.rand.Intn(len(g.used))]
	}
	name := fmt.Sprintf("%s %s", pickOne(g.rand, g.names.first), pickOne(g.rand, g.names.last))
	g.used = append(g.used, name)
	return name
}

func (g *Generator) maybeZero(v int64) int64 {
	if g.rand.Float64() < g.cfg.ZeroFieldChance {
		return 0
	}
	return v
}

func pickOne[T any](r *rand.Rand, options []T) T {
	return options[r.Intn(len(options))]
}

func roundTo(v, step int64) int64 {
	return v / step * step
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

type nameFragments struct {
	first []string
	last  []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first: []string{"Aarav", "Priya", "Rohan", "Ananya", "Vikram", "Sneha", "Arjun", "Kavya", "Ishaan", "Meera", "Kabir", "Diya", "Aditya", "Nisha", "Rahul"},
		last:  []string{"Sharma", "Patel", "Iyer", "Reddy", "Gupta", "Nair", "Singh", "Das", "Menon", "Joshi", "Kapoor", "Rao"},
	}
}
