// Package store persists profiles and finance records. Three backends share
// the same contract: a Neo4j graph (live), Redis key-value (local fallback)
// and process memory (demo).
package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// Mode selects a backend at process start.
type Mode string

const (
	ModeGraph  Mode = "graph"
	ModeKV     Mode = "kv"
	ModeMemory Mode = "memory"
)

// ParseMode validates a configured store mode.
func ParseMode(v string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(v))); m {
	case ModeGraph, ModeKV, ModeMemory:
		return m, nil
	default:
		return "", fmt.Errorf("unknown store mode %q", v)
	}
}

// ProfileStore keeps at most one profile document per user. Writes are
// last-write-wins; GetProfile returns domain.ErrNotFound when none exists.
type ProfileStore interface {
	SaveProfile(ctx context.Context, userID string, p domain.Profile) error
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

// FinanceRecordStore keeps finance records keyed by id and listed per user.
type FinanceRecordStore interface {
	SaveRecord(ctx context.Context, r domain.FinanceRecord) error
	GetRecord(ctx context.Context, id string) (domain.FinanceRecord, error)
	ListRecords(ctx context.Context, userID string, filter RecordFilter) ([]domain.FinanceRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

// Backend is everything a running server needs from one store implementation.
type Backend interface {
	ProfileStore
	FinanceRecordStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// RecordFilter narrows ListRecords. A zero Limit means DefaultRecordLimit.
type RecordFilter struct {
	Type  domain.RecordType
	Limit int
}

const (
	DefaultRecordLimit = 100
	MaxRecordLimit     = 1000
)

func (f RecordFilter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultRecordLimit
	case f.Limit > MaxRecordLimit:
		return MaxRecordLimit
	default:
		return f.Limit
	}
}

func (f RecordFilter) matches(r domain.FinanceRecord) bool {
	return f.Type == "" || r.TransactionType == f.Type
}

// applyFilter orders records newest first (ties by id) and trims to the limit.
func applyFilter(records []domain.FinanceRecord, f RecordFilter) []domain.FinanceRecord {
	out := make([]domain.FinanceRecord, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b domain.FinanceRecord) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if len(out) > f.limit() {
		out = out[:f.limit()]
	}
	return out
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
