package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vanshika/finsight/backend/internal/service"
)

func (h *APIHandlers) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createRecord(w, r)
	case http.MethodGet:
		h.listRecords(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *APIHandlers) handleRecord(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/finance-records/"), "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "record ID is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getRecord(w, r, id)
	case http.MethodPut:
		h.updateRecord(w, r, id)
	case http.MethodDelete:
		h.deleteRecord(w, r, id)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (h *APIHandlers) createRecord(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	input, ok := decodeRecordRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.finance.Create(r.Context(), sess, input)
	if err != nil {
		h.fail(w, r, err, "failed to persist record")
		return
	}
	respondJSON(w, http.StatusCreated, newRecordResponse(rec))
}

func (h *APIHandlers) listRecords(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	limit := 0
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := h.finance.List(r.Context(), sess, service.ListRecordsParams{
		Type:  query.Get("type"),
		Limit: limit,
	})
	if err != nil {
		h.fail(w, r, err, "failed to list records")
		return
	}

	resp := listRecordsResponse{Items: make([]recordResponse, 0, len(records))}
	for _, rec := range records {
		resp.Items = append(resp.Items, newRecordResponse(rec))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) getRecord(w http.ResponseWriter, r *http.Request, id string) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	rec, err := h.finance.Get(r.Context(), sess, id)
	if err != nil {
		h.fail(w, r, err, "failed to load record")
		return
	}
	respondJSON(w, http.StatusOK, newRecordResponse(rec))
}

func (h *APIHandlers) updateRecord(w http.ResponseWriter, r *http.Request, id string) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	input, ok := decodeRecordRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.finance.Update(r.Context(), sess, id, input)
	if err != nil {
		h.fail(w, r, err, "failed to update record")
		return
	}
	respondJSON(w, http.StatusOK, newRecordResponse(rec))
}

func (h *APIHandlers) deleteRecord(w http.ResponseWriter, r *http.Request, id string) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := h.finance.Delete(r.Context(), sess, id); err != nil {
		h.fail(w, r, err, "failed to delete record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeRecordRequest(w http.ResponseWriter, r *http.Request) (service.FinanceRecordInput, bool) {
	var payload recordRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return service.FinanceRecordInput{}, false
	}
	input, err := payload.toServiceInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return service.FinanceRecordInput{}, false
	}
	return input, true
}

func (req recordRequest) toServiceInput() (service.FinanceRecordInput, error) {
	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return service.FinanceRecordInput{}, fmt.Errorf("invalid date: %w", err)
		}
		date = parsed
	}
	return service.FinanceRecordInput{
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		Date:            date,
	}, nil
}

// parseDate accepts either a calendar date or an RFC 3339 timestamp.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
