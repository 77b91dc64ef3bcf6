package service

import (
	"context"
	"errors"
	"time"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/session"
	"github.com/vanshika/finsight/backend/internal/store"
)

// DemoUserID identifies the seeded demo profile.
const DemoUserID = "demo-user"

// ProfileService owns the profile lifecycle for a session's user.
type ProfileService struct {
	store store.ProfileStore
	nowFn func() time.Time
}

// NewProfileService constructs a ProfileService over the given store.
func NewProfileService(st store.ProfileStore) *ProfileService {
	return &ProfileService{
		store: st,
		nowFn: time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *ProfileService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// Save validates the input and replaces the user's profile. The first save
// stamps createdAt; every save stamps updatedAt.
func (s *ProfileService) Save(ctx context.Context, sess session.Session, in ProfileInput) (domain.Profile, error) {
	if sess.UserID == "" {
		return domain.Profile{}, session.ErrNoSession
	}
	p, err := BuildProfile(in)
	if err != nil {
		return domain.Profile{}, err
	}

	now := s.nowFn().UTC()
	p.UserID = sess.UserID
	p.CreatedAt = now
	p.UpdatedAt = now

	existing, err := s.store.GetProfile(ctx, sess.UserID)
	switch {
	case err == nil:
		if !existing.CreatedAt.IsZero() {
			p.CreatedAt = existing.CreatedAt
		}
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Profile{}, err
	}

	if err := s.store.SaveProfile(ctx, sess.UserID, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// Get returns the caller's profile or domain.ErrNotFound.
func (s *ProfileService) Get(ctx context.Context, sess session.Session) (domain.Profile, error) {
	if sess.UserID == "" {
		return domain.Profile{}, session.ErrNoSession
	}
	return s.store.GetProfile(ctx, sess.UserID)
}

// Delete removes the caller's profile. Deleting a missing profile succeeds.
func (s *ProfileService) Delete(ctx context.Context, sess session.Session) error {
	if sess.UserID == "" {
		return session.ErrNoSession
	}
	return s.store.DeleteProfile(ctx, sess.UserID)
}

// Demo returns the seeded demo profile. It is never persisted.
func (s *ProfileService) Demo() domain.Profile {
	p := DemoProfile()
	now := s.nowFn().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

// DemoProfile is the fixed profile shown to visitors exploring the dashboard
// before filling in their own.
func DemoProfile() domain.Profile {
	return domain.Profile{
		UserID:                     DemoUserID,
		Name:                       "Demo User",
		Age:                        30,
		Gender:                     domain.GenderPreferNotToSay,
		Occupation:                 domain.OccupationSalaried,
		MaritalStatus:              domain.MaritalSingle,
		NumberOfDependents:         0,
		AnnualIncome:               1200000,
		MonthlyIncome:              100000,
		MonthlyExpenses:            60000,
		CurrentNetWorth:            500000,
		InvestedAsset:              300000,
		MonthlySurplus:             40000,
		StartingPrincipal:          100000,
		Loan:                       200000,
		Insurance:                  50000,
		RiskTakingAbility:          domain.RiskModerate,
		PreferredInvestmentHorizon: domain.HorizonLong,
		PrimaryFinancialGoal:       domain.GoalRetirement,
		GoalTimelineYears:          25,
		LiquidityPreference:        domain.LiquidityMedium,
	}
}

// BuildProfile validates an input payload and converts it into a profile
// without identity or timestamps.
func BuildProfile(in ProfileInput) (domain.Profile, error) {
	if in.Age < 0 {
		return domain.Profile{}, invalidf("age", "must not be negative")
	}
	if in.NumberOfDependents < 0 {
		return domain.Profile{}, invalidf("numberOfDependents", "must not be negative")
	}
	if in.GoalTimelineYears < 0 {
		return domain.Profile{}, invalidf("goalTimelineYears", "must not be negative")
	}
	for _, f := range []struct {
		name  string
		value int64
	}{
		{"annualIncome", in.AnnualIncome},
		{"monthlyIncome", in.MonthlyIncome},
		{"monthlyExpenses", in.MonthlyExpenses},
		{"currentNetWorth", in.CurrentNetWorth},
		{"investedAsset", in.InvestedAsset},
		{"monthlySurplus", in.MonthlySurplus},
		{"startingPrincipal", in.StartingPrincipal},
		{"loan", in.Loan},
		{"insurance", in.Insurance},
	} {
		if err := nonNegative(f.name, f.value); err != nil {
			return domain.Profile{}, err
		}
	}

	gender, err := canonical("gender", in.Gender, domain.Genders())
	if err != nil {
		return domain.Profile{}, err
	}
	occupation, err := canonical("occupation", in.Occupation, domain.Occupations())
	if err != nil {
		return domain.Profile{}, err
	}
	marital, err := canonical("maritalStatus", in.MaritalStatus, domain.MaritalStatuses())
	if err != nil {
		return domain.Profile{}, err
	}
	risk, err := canonical("riskTakingAbility", in.RiskTakingAbility, domain.RiskLevels())
	if err != nil {
		return domain.Profile{}, err
	}
	horizon, err := canonical("preferredInvestmentHorizon", in.PreferredInvestmentHorizon, domain.Horizons())
	if err != nil {
		return domain.Profile{}, err
	}
	goal, err := canonical("primaryFinancialGoal", in.PrimaryFinancialGoal, domain.Goals())
	if err != nil {
		return domain.Profile{}, err
	}
	liquidity, err := canonical("liquidityPreference", in.LiquidityPreference, domain.LiquidityPreferences())
	if err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{
		Name:                       sanitizeString(in.Name),
		Age:                        in.Age,
		Gender:                     gender,
		Occupation:                 occupation,
		MaritalStatus:              marital,
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
		RiskTakingAbility:          risk,
		PreferredInvestmentHorizon: horizon,
		PrimaryFinancialGoal:       goal,
		GoalTimelineYears:          in.GoalTimelineYears,
		LiquidityPreference:        liquidity,
	}, nil
}

// InputFromProfile is the inverse of BuildProfile, used to round-trip stored
// profiles through files.
func InputFromProfile(p domain.Profile) ProfileInput {
	return ProfileInput{
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
	}
}
