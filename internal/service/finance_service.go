package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/session"
	"github.com/vanshika/finsight/backend/internal/store"
)

const maxCategoryLength = 64

// ListRecordsParams narrows FinanceService.List.
type ListRecordsParams struct {
	Type  string
	Limit int
}

// FinanceService manages the caller's income, expense and investment records.
type FinanceService struct {
	store store.FinanceRecordStore
	nowFn func() time.Time
	newID func() string
}

// NewFinanceService constructs a FinanceService over the given store.
func NewFinanceService(st store.FinanceRecordStore) *FinanceService {
	return &FinanceService{
		store: st,
		nowFn: time.Now,
		newID: uuid.NewString,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *FinanceService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// Create validates and stores a new record owned by the caller.
func (s *FinanceService) Create(ctx context.Context, sess session.Session, in FinanceRecordInput) (domain.FinanceRecord, error) {
	if sess.UserID == "" {
		return domain.FinanceRecord{}, session.ErrNoSession
	}
	now := s.nowFn().UTC()
	r, err := s.build(in, now)
	if err != nil {
		return domain.FinanceRecord{}, err
	}
	r.ID = s.newID()
	r.UserID = sess.UserID
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.store.SaveRecord(ctx, r); err != nil {
		return domain.FinanceRecord{}, err
	}
	return r, nil
}

// Get returns one of the caller's records. Records owned by someone else are
// reported as domain.ErrNotFound.
func (s *FinanceService) Get(ctx context.Context, sess session.Session, id string) (domain.FinanceRecord, error) {
	if sess.UserID == "" {
		return domain.FinanceRecord{}, session.ErrNoSession
	}
	r, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return domain.FinanceRecord{}, err
	}
	if r.UserID != sess.UserID {
		return domain.FinanceRecord{}, domain.ErrNotFound
	}
	return r, nil
}

// List returns the caller's records, newest first.
func (s *FinanceService) List(ctx context.Context, sess session.Session, params ListRecordsParams) ([]domain.FinanceRecord, error) {
	if sess.UserID == "" {
		return nil, session.ErrNoSession
	}
	filter := store.RecordFilter{Limit: params.Limit}
	if t := strings.TrimSpace(params.Type); t != "" {
		rt := domain.RecordType(strings.ToLower(t))
		if !rt.Valid() {
			return nil, invalidf("type", "unknown record type %q", t)
		}
		filter.Type = rt
	}
	if params.Limit < 0 {
		return nil, invalidf("limit", "must not be negative")
	}
	return s.store.ListRecords(ctx, sess.UserID, filter)
}

// Update replaces the mutable fields of one of the caller's records.
func (s *FinanceService) Update(ctx context.Context, sess session.Session, id string, in FinanceRecordInput) (domain.FinanceRecord, error) {
	existing, err := s.Get(ctx, sess, id)
	if err != nil {
		return domain.FinanceRecord{}, err
	}
	now := s.nowFn().UTC()
	r, err := s.build(in, now)
	if err != nil {
		return domain.FinanceRecord{}, err
	}
	r.ID = existing.ID
	r.UserID = existing.UserID
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = now

	if err := s.store.SaveRecord(ctx, r); err != nil {
		return domain.FinanceRecord{}, err
	}
	return r, nil
}

// Delete removes one of the caller's records. Missing records are not an error.
func (s *FinanceService) Delete(ctx context.Context, sess session.Session, id string) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.store.DeleteRecord(ctx, id)
}

func (s *FinanceService) build(in FinanceRecordInput, now time.Time) (domain.FinanceRecord, error) {
	rt := domain.RecordType(strings.ToLower(strings.TrimSpace(in.TransactionType)))
	if !rt.Valid() {
		return domain.FinanceRecord{}, invalidf("transactionType", "must be one of income, expense or investment")
	}
	if !in.Amount.IsPositive() {
		return domain.FinanceRecord{}, invalidf("amount", "must be positive")
	}
	category := sanitizeString(in.Category)
	if category == "" {
		return domain.FinanceRecord{}, invalidf("category", "is required")
	}
	if len(category) > maxCategoryLength {
		return domain.FinanceRecord{}, invalidf("category", "must be at most %d characters", maxCategoryLength)
	}

	date := in.Date.UTC()
	if in.Date.IsZero() {
		date = now.Truncate(24 * time.Hour)
	}
	return domain.FinanceRecord{
		TransactionType: rt,
		Amount:          in.Amount,
		Category:        category,
		Description:     strings.TrimSpace(in.Description),
		Date:            date,
	}, nil
}
