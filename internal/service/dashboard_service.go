package service

import (
	"context"

	"github.com/vanshika/finsight/backend/internal/chart"
	"github.com/vanshika/finsight/backend/internal/currency"
	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/session"
	"github.com/vanshika/finsight/backend/internal/store"
)

// Calculator computes every projection for a profile.
type Calculator interface {
	Compute(ctx context.Context, p domain.Profile) (domain.Projections, error)
}

// Dashboard is everything the dashboard view renders for one user.
type Dashboard struct {
	Profile     domain.Profile
	Projections domain.Projections
	Income      []domain.ChartPoint
	Expenses    []domain.ChartPoint
	Assets      []domain.ChartPoint
	Allocation  []domain.ChartPoint
	Cards       []FormattedCard
	Preferences []chart.Preference
	Money       FormattedProjections
}

// FormattedCard is a summary card with its amount rendered for display.
type FormattedCard struct {
	chart.Card
	Display string
}

// FormattedProjections carries the projection amounts as display strings.
type FormattedProjections struct {
	Currency                string
	ProjectedCorpus         string
	RequiredCorpus          string
	MonthlyInvestmentNeeded string
	MonthlyInvestment       string
}

// DashboardService gates projections on a saved profile and assembles the
// dashboard view.
type DashboardService struct {
	profiles store.ProfileStore
	engine   Calculator
	money    *currency.Formatter
}

// NewDashboardService wires the dashboard to its profile store, projection
// engine and currency formatter.
func NewDashboardService(profiles store.ProfileStore, engine Calculator, money *currency.Formatter) *DashboardService {
	return &DashboardService{
		profiles: profiles,
		engine:   engine,
		money:    money,
	}
}

// Projections computes projections for the caller's saved profile. Callers
// without a profile get domain.ErrNotFound and nothing is computed.
func (s *DashboardService) Projections(ctx context.Context, sess session.Session) (domain.Projections, error) {
	p, err := s.profile(ctx, sess)
	if err != nil {
		return domain.Projections{}, err
	}
	return s.engine.Compute(ctx, p)
}

// Preview computes projections for an unsaved profile payload.
func (s *DashboardService) Preview(ctx context.Context, in ProfileInput) (domain.Projections, error) {
	p, err := BuildProfile(in)
	if err != nil {
		return domain.Projections{}, err
	}
	return s.engine.Compute(ctx, p)
}

// Dashboard assembles the full dashboard for the caller's saved profile.
func (s *DashboardService) Dashboard(ctx context.Context, sess session.Session) (Dashboard, error) {
	p, err := s.profile(ctx, sess)
	if err != nil {
		return Dashboard{}, err
	}
	return s.Assemble(ctx, p)
}

// Assemble builds the dashboard for an already loaded profile.
func (s *DashboardService) Assemble(ctx context.Context, p domain.Profile) (Dashboard, error) {
	proj, err := s.engine.Compute(ctx, p)
	if err != nil {
		return Dashboard{}, err
	}

	cards := chart.SummaryCards(p)
	formatted := make([]FormattedCard, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, FormattedCard{Card: c, Display: s.money.FormatInt(c.Amount)})
	}

	return Dashboard{
		Profile:     p,
		Projections: proj,
		Income:      chart.IncomeBuckets(p),
		Expenses:    chart.ExpenseBuckets(p),
		Assets:      chart.AssetBuckets(p),
		Allocation:  chart.AllocationSlices(proj.Investment),
		Cards:       formatted,
		Preferences: chart.Preferences(p),
		Money: FormattedProjections{
			Currency:                s.money.Code(),
			ProjectedCorpus:         s.money.Format(proj.Retirement.ProjectedCorpus),
			RequiredCorpus:          s.money.Format(proj.Retirement.RequiredCorpus),
			MonthlyInvestmentNeeded: s.money.Format(proj.Retirement.MonthlyInvestmentNeeded),
			MonthlyInvestment:       s.money.FormatInt(proj.Investment.MonthlyInvestment),
		},
	}, nil
}

func (s *DashboardService) profile(ctx context.Context, sess session.Session) (domain.Profile, error) {
	if sess.UserID == "" {
		return domain.Profile{}, session.ErrNoSession
	}
	return s.profiles.GetProfile(ctx, sess.UserID)
}
