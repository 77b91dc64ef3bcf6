package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vanshika/finsight/backend/internal/currency"
	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/projection"
	"github.com/vanshika/finsight/backend/internal/service"
	"github.com/vanshika/finsight/backend/internal/session"
	"github.com/vanshika/finsight/backend/internal/store"
)

type downProfileStore struct{}

func (downProfileStore) SaveProfile(context.Context, string, domain.Profile) error {
	return fmt.Errorf("save: %w", domain.ErrStoreUnavailable)
}

func (downProfileStore) GetProfile(context.Context, string) (domain.Profile, error) {
	return domain.Profile{}, fmt.Errorf("get: %w", domain.ErrStoreUnavailable)
}

func (downProfileStore) DeleteProfile(context.Context, string) error {
	return fmt.Errorf("delete: %w", domain.ErrStoreUnavailable)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("graph unreachable") }

type testEnv struct {
	handler http.Handler
	auth    *session.Authenticator
}

func newTestEnv(t *testing.T, secret string, profiles store.ProfileStore, records store.FinanceRecordStore, health HealthService) testEnv {
	t.Helper()
	money, err := currency.NewFormatter("INR", "en")
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := session.NewAuthenticator(secret, "demo-user", time.Hour)

	handlers := NewAPIHandlers(logger,
		service.NewProfileService(profiles),
		service.NewDashboardService(profiles, projection.NewEngine(), money),
		service.NewFinanceService(records),
	)
	router := NewRouter(logger, RouterDependencies{
		Health:         health,
		API:            handlers,
		Auth:           auth,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return testEnv{handler: router, auth: auth}
}

func newDemoEnv(t *testing.T) testEnv {
	mem := store.NewMemory()
	return newTestEnv(t, "", mem, mem, StoreHealthService{Store: mem})
}

func (e testEnv) do(t *testing.T, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set(session.DemoHeader, user)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func scenarioBody() map[string]any {
	return map[string]any{
		"name":              "Asha",
		"age":               30,
		"monthlyIncome":     100000,
		"annualIncome":      1200000,
		"monthlySurplus":    40000,
		"monthlyExpenses":   60000,
		"riskTakingAbility": "moderate",
		"insurance":         500000,
	}
}

func TestGetProfile_NotFoundAsksForProfile(t *testing.T) {
	env := newDemoEnv(t)

	rec := env.do(t, http.MethodGet, "/profile", "asha", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var payload notFoundResponse
	decodeBody(t, rec, &payload)
	if payload.Error != "profile not found" || payload.Action != "complete_profile" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("expected a request id header, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestProfileLifecycle(t *testing.T) {
	env := newDemoEnv(t)

	rec := env.do(t, http.MethodPut, "/profile", "asha", scenarioBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on save, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/profile", "asha", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var profile profileResponse
	decodeBody(t, rec, &profile)
	if profile.UserID != "asha" || profile.RiskTakingAbility != "Moderate" || profile.MonthlyIncome != 100000 {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.CreatedAt == "" {
		t.Fatalf("expected createdAt to be set")
	}

	// Echoing the stored document back is accepted.
	rec = env.do(t, http.MethodPost, "/profile", "asha", profile)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected echoed profile to be accepted, got %d: %s", rec.Code, rec.Body.String())
	}

	if rec := env.do(t, http.MethodGet, "/profile", "someone-else", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("profiles must be scoped per user, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/profile", "asha", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/profile", "asha", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestSaveProfile_BadRequest(t *testing.T) {
	env := newDemoEnv(t)

	body := scenarioBody()
	body["loan"] = -10
	if rec := env.do(t, http.MethodPut, "/profile", "asha", body); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative loan, got %d", rec.Code)
	}

	body = scenarioBody()
	body["favouriteColour"] = "blue"
	if rec := env.do(t, http.MethodPut, "/profile", "asha", body); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}

	body = scenarioBody()
	body["riskTakingAbility"] = "reckless"
	if rec := env.do(t, http.MethodPut, "/profile", "asha", body); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown risk level, got %d", rec.Code)
	}
}

func TestProjections(t *testing.T) {
	env := newDemoEnv(t)

	if rec := env.do(t, http.MethodGet, "/projections", "asha", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without profile, got %d", rec.Code)
	}

	if rec := env.do(t, http.MethodPut, "/profile", "asha", scenarioBody()); rec.Code != http.StatusOK {
		t.Fatalf("save profile: %d", rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/projections", "asha", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var all projectionsResponse
	decodeBody(t, rec, &all)
	if all.Retirement.YearsToRetirement != 30 || all.Retirement.RequiredCorpus != 30000000 {
		t.Errorf("unexpected retirement %+v", all.Retirement)
	}
	if all.Investment.RecommendedAllocation != (allocationResponse{Equity: 60, Debt: 30, Gold: 10}) {
		t.Errorf("unexpected allocation %+v", all.Investment.RecommendedAllocation)
	}

	rec = env.do(t, http.MethodGet, "/projections/risk", "asha", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var risk riskResponse
	decodeBody(t, rec, &risk)
	if risk.RiskCategory != "Moderate" || risk.RiskScore != 50 {
		t.Errorf("unexpected risk %+v", risk)
	}

	if rec := env.do(t, http.MethodGet, "/projections/lottery", "asha", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown projection, got %d", rec.Code)
	}
}

func TestPreviewProjections_Stateless(t *testing.T) {
	mem := store.NewMemory()
	env := newTestEnv(t, "s3cret", mem, mem, nil)

	rec := env.do(t, http.MethodPost, "/projections", "", map[string]any{"age": 70})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var all projectionsResponse
	decodeBody(t, rec, &all)
	if all.Retirement.YearsToRetirement != 0 || all.Retirement.MonthlyInvestmentNeeded != 0 {
		t.Errorf("unexpected retirement %+v", all.Retirement)
	}
}

func TestDashboard(t *testing.T) {
	env := newDemoEnv(t)
	if rec := env.do(t, http.MethodPut, "/profile", "asha", scenarioBody()); rec.Code != http.StatusOK {
		t.Fatalf("save profile: %d", rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/dashboard", "asha", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var d dashboardResponse
	decodeBody(t, rec, &d)

	if len(d.Cards) != 5 || d.Cards[0].Display != "₹1,200,000" {
		t.Errorf("unexpected cards %+v", d.Cards)
	}
	if len(d.Charts.Expenses.Points) != 2 || d.Charts.Expenses.Empty {
		t.Errorf("expected expenses and insurance buckets only, got %+v", d.Charts.Expenses)
	}
	if !d.Charts.Assets.Empty || d.Charts.Assets.Points == nil || len(d.Charts.Assets.Points) != 0 {
		t.Errorf("expected an empty asset series, got %+v", d.Charts.Assets)
	}
	if d.Formatted.RequiredCorpus != "₹30,000,000" {
		t.Errorf("unexpected formatted corpus %q", d.Formatted.RequiredCorpus)
	}
	if d.Formatted.Currency != "INR" {
		t.Errorf("unexpected currency %q", d.Formatted.Currency)
	}
}

func TestDemoProfile(t *testing.T) {
	env := newDemoEnv(t)

	rec := env.do(t, http.MethodGet, "/profile/demo", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var p profileResponse
	decodeBody(t, rec, &p)
	if p.Name != "Demo User" || p.AnnualIncome != 1200000 {
		t.Fatalf("unexpected demo profile %+v", p)
	}
}

func TestBearerTokens(t *testing.T) {
	mem := store.NewMemory()
	env := newTestEnv(t, "s3cret", mem, mem, nil)

	if rec := env.do(t, http.MethodGet, "/profile", "asha", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("demo header must be ignored when tokens are required, got %d", rec.Code)
	}

	token, err := env.auth.IssueToken("asha")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected authenticated 404, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}
}

func TestStoreUnavailable(t *testing.T) {
	env := newTestEnv(t, "", downProfileStore{}, store.NewMemory(), nil)

	rec := env.do(t, http.MethodGet, "/dashboard", "asha", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	var payload map[string]string
	decodeBody(t, rec, &payload)
	if payload["error"] != "service temporarily unavailable, retry later" {
		t.Fatalf("unexpected error message %q", payload["error"])
	}
}

func TestFinanceRecords(t *testing.T) {
	env := newDemoEnv(t)

	rec := env.do(t, http.MethodPost, "/finance-records", "asha", map[string]any{
		"transactionType": "expense",
		"amount":          "1499.50",
		"category":        "groceries",
		"date":            "2024-05-03",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created recordResponse
	decodeBody(t, rec, &created)
	if created.ID == "" || created.Date != "2024-05-03" || created.Amount.String() != "1499.5" {
		t.Fatalf("unexpected record %+v", created)
	}

	if rec := env.do(t, http.MethodPost, "/finance-records", "asha", map[string]any{"transactionType": "expense", "amount": 10, "category": "x"}); rec.Code != http.StatusCreated {
		t.Fatalf("expected numeric amounts to be accepted, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/finance-records?type=expense&limit=1", "asha", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var list listRecordsResponse
	decodeBody(t, rec, &list)
	if len(list.Items) != 1 {
		t.Fatalf("expected limit to apply, got %d items", len(list.Items))
	}

	if rec := env.do(t, http.MethodGet, "/finance-records/"+created.ID, "mallory", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's record, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodPut, "/finance-records/"+created.ID, "asha", map[string]any{
		"transactionType": "expense",
		"amount":          "1600",
		"category":        "groceries",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on update, got %d: %s", rec.Code, rec.Body.String())
	}

	if rec := env.do(t, http.MethodGet, "/finance-records?type=gift", "asha", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/finance-records", "asha", map[string]any{"transactionType": "income", "amount": "1", "category": "x", "date": "yesterday"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", rec.Code)
	}

	if rec := env.do(t, http.MethodDelete, "/finance-records/"+created.ID, "asha", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/finance-records/"+created.ID, "asha", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	env := newDemoEnv(t)
	if rec := env.do(t, http.MethodGet, "/healthz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	mem := store.NewMemory()
	env = newTestEnv(t, "", mem, mem, StoreHealthService{Store: failingPinger{}})
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	var payload map[string]any
	decodeBody(t, rec, &payload)
	if payload["status"] != "degraded" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newDemoEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/profile", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("missing allow-origin header")
	}

	req = httptest.NewRequest(http.MethodOptions, "/profile", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	env := newDemoEnv(t)
	rec := env.do(t, http.MethodPatch, "/dashboard", "asha", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("unexpected Allow header %q", rec.Header().Get("Allow"))
	}
}
