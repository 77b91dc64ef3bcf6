package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/service"
	"github.com/vanshika/finsight/backend/internal/session"
)

const unavailableMessage = "service temporarily unavailable, retry later"

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger    *slog.Logger
	profiles  *service.ProfileService
	dashboard *service.DashboardService
	finance   *service.FinanceService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, profiles *service.ProfileService, dashboard *service.DashboardService, finance *service.FinanceService) *APIHandlers {
	return &APIHandlers{
		logger:    logger,
		profiles:  profiles,
		dashboard: dashboard,
		finance:   finance,
	}
}

func (h *APIHandlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodPut, http.MethodPost:
		h.saveProfile(w, r)
	case http.MethodDelete:
		h.deleteProfile(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete)
	}
}

func (h *APIHandlers) getProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	p, err := h.profiles.Get(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, newProfileResponse(p))
}

func (h *APIHandlers) saveProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var payload profileRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.profiles.Save(r.Context(), sess, payload.ProfileInput)
	if err != nil {
		h.fail(w, r, err, "failed to persist profile")
		return
	}
	respondJSON(w, http.StatusOK, newProfileResponse(p))
}

func (h *APIHandlers) deleteProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := h.profiles.Delete(r.Context(), sess); err != nil {
		h.fail(w, r, err, "failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandlers) handleDemoProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, http.StatusOK, newProfileResponse(h.profiles.Demo()))
}

func (h *APIHandlers) handleProjections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sess, ok := requireSession(w, r)
		if !ok {
			return
		}
		proj, err := h.dashboard.Projections(r.Context(), sess)
		if err != nil {
			h.fail(w, r, err, "failed to compute projections")
			return
		}
		respondJSON(w, http.StatusOK, newProjectionsResponse(proj))
	case http.MethodPost:
		var payload profileRequest
		if err := decodeJSON(r, &payload); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		proj, err := h.dashboard.Preview(r.Context(), payload.ProfileInput)
		if err != nil {
			h.fail(w, r, err, "failed to compute projections")
			return
		}
		respondJSON(w, http.StatusOK, newProjectionsResponse(proj))
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *APIHandlers) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	kind := strings.Trim(strings.TrimPrefix(r.URL.Path, "/projections/"), "/")
	switch kind {
	case "retirement", "investment", "risk":
	default:
		writeError(w, http.StatusNotFound, "unknown projection "+kind)
		return
	}

	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	proj, err := h.dashboard.Projections(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err, "failed to compute projections")
		return
	}

	resp := newProjectionsResponse(proj)
	switch kind {
	case "retirement":
		respondJSON(w, http.StatusOK, resp.Retirement)
	case "investment":
		respondJSON(w, http.StatusOK, resp.Investment)
	default:
		respondJSON(w, http.StatusOK, resp.Risk)
	}
}

func (h *APIHandlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	d, err := h.dashboard.Dashboard(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err, "failed to build dashboard")
		return
	}
	respondJSON(w, http.StatusOK, newDashboardResponse(d))
}

// fail maps service errors onto HTTP responses. Missing profiles get a body
// that tells the client to send the user to the profile form.
func (h *APIHandlers) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger := requestLogger(r.Context(), h.logger)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrNotFound):
		if isProfilePath(r.URL.Path) {
			respondJSON(w, http.StatusNotFound, notFoundResponse{Error: "profile not found", Action: "complete_profile"})
			return
		}
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Error(msg, "error", err)
		writeError(w, http.StatusServiceUnavailable, unavailableMessage)
	case errors.Is(err, context.Canceled):
		logger.Warn("request canceled", "error", err)
		writeError(w, http.StatusServiceUnavailable, unavailableMessage)
	default:
		logger.Error(msg, "error", err)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func isProfilePath(path string) bool {
	return path == "/profile" || path == "/dashboard" || strings.HasPrefix(path, "/projections")
}

func requireSession(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return session.Session{}, false
	}
	return sess, true
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
