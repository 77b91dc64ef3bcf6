package store

import (
	"context"
	"errors"
	"sync"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// Memory is the demo-mode backend. Data lives for the life of the process.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
	records  map[string]domain.FinanceRecord
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]domain.Profile),
		records:  make(map[string]domain.FinanceRecord),
	}
}

func (m *Memory) SaveProfile(_ context.Context, userID string, p domain.Profile) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.profiles[userID]; ok && !existing.CreatedAt.IsZero() {
		p.CreatedAt = existing.CreatedAt
	}
	p.UserID = userID
	m.profiles[userID] = p
	return nil
}

func (m *Memory) GetProfile(_ context.Context, userID string) (domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[userID]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *Memory) DeleteProfile(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, userID)
	return nil
}

func (m *Memory) SaveRecord(_ context.Context, r domain.FinanceRecord) error {
	if r.ID == "" || r.UserID == "" {
		return errors.New("record id and user id are required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ID] = r
	return nil
}

func (m *Memory) GetRecord(_ context.Context, id string) (domain.FinanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return domain.FinanceRecord{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *Memory) ListRecords(_ context.Context, userID string, filter RecordFilter) ([]domain.FinanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var owned []domain.FinanceRecord
	for _, r := range m.records {
		if r.UserID == userID {
			owned = append(owned, r)
		}
	}
	return applyFilter(owned, filter), nil
}

func (m *Memory) DeleteRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close(context.Context) error { return nil }
