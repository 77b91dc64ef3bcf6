package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// mapKV is an in-process KeyValue with Redis string and hash semantics.
type mapKV struct {
	mu      sync.Mutex
	strings map[string]string
	hashes  map[string]map[string]string
	err     error
	setErr  error
	hsetErr error
}

func newMapKV() *mapKV {
	return &mapKV{strings: map[string]string{}, hashes: map[string]map[string]string{}}
}

func (m *mapKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.strings[key]
	if !ok {
		return "", ErrKeyMissing
	}
	return v, nil
}

func (m *mapKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.setErr != nil {
		return m.setErr
	}
	m.strings[key] = value
	return nil
}

func (m *mapKV) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, k := range keys {
		delete(m.strings, k)
		delete(m.hashes, k)
	}
	return nil
}

func (m *mapKV) HGet(_ context.Context, key, field string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.hashes[key][field]
	if !ok {
		return "", ErrKeyMissing
	}
	return v, nil
}

func (m *mapKV) HSet(_ context.Context, key, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.hsetErr != nil {
		return m.hsetErr
	}
	if m.hashes[key] == nil {
		m.hashes[key] = map[string]string{}
	}
	m.hashes[key][field] = value
	return nil
}

func (m *mapKV) HGetAll(_ context.Context, key string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]string, len(m.hashes[key]))
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (m *mapKV) HDel(_ context.Context, key string, fields ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, f := range fields {
		delete(m.hashes[key], f)
	}
	return nil
}

func (m *mapKV) Ping(context.Context) error { return m.err }

func (m *mapKV) Close() error { return nil }

func TestKV_ProfileDocumentLayout(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	s := NewKV(kv)

	p := sampleProfile()
	require.NoError(t, s.SaveProfile(ctx, "u1", p))

	raw, ok := kv.strings["userProfile_u1"]
	require.True(t, ok, "profile must be stored under userProfile_<id>")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "u1", doc["userId"])
	assert.EqualValues(t, 150000, doc["monthlyIncome"])
	assert.Equal(t, "Moderate", doc["riskTakingAbility"])

	got, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p.MonthlySurplus, got.MonthlySurplus)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestKV_SaveProfileKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewKV(newMapKV())

	first := sampleProfile()
	require.NoError(t, s.SaveProfile(ctx, "u1", first))

	second := sampleProfile()
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	second.UpdatedAt = second.CreatedAt
	require.NoError(t, s.SaveProfile(ctx, "u1", second))

	got, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, second.UpdatedAt.Equal(got.UpdatedAt))
}

func TestKV_MissingAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewKV(newMapKV())

	_, err := s.GetProfile(ctx, "u1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.SaveProfile(ctx, "u1", sampleProfile()))
	require.NoError(t, s.DeleteProfile(ctx, "u1"))
	_, err = s.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKV_Records(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	s := NewKV(kv)

	require.NoError(t, s.SaveRecord(ctx, sampleRecord("r1", "u1", domain.RecordExpense, 2)))
	require.NoError(t, s.SaveRecord(ctx, sampleRecord("r2", "u1", domain.RecordIncome, 8)))
	require.NoError(t, s.SaveRecord(ctx, sampleRecord("r3", "u2", domain.RecordIncome, 8)))

	assert.Len(t, kv.hashes["financeRecords_u1"], 2)
	assert.Equal(t, "u1", kv.strings["financeRecordOwner_r1"])

	list, err := s.ListRecords(ctx, "u1", RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r1"}, ids(list))

	got, err := s.GetRecord(ctx, "r3")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)

	require.NoError(t, s.DeleteRecord(ctx, "r1"))
	require.NoError(t, s.DeleteRecord(ctx, "r1"))
	_, err = s.GetRecord(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, kv.strings, "financeRecordOwner_r1")
}

func TestKV_BackendFailure(t *testing.T) {
	kv := newMapKV()
	kv.err = errors.New("i/o timeout")
	s := NewKV(kv)

	_, err := s.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = s.ListRecords(context.Background(), "u1", RecordFilter{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.Error(t, s.Ping(context.Background()))
}

func TestKV_PartialRecordWrite(t *testing.T) {
	ctx := context.Background()
	r := sampleRecord("r1", "u1", domain.RecordIncome, 2)

	t.Run("hash write fails", func(t *testing.T) {
		kv := newMapKV()
		kv.hsetErr = errors.New("connection reset")
		s := NewKV(kv)

		err := s.SaveRecord(ctx, r)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

		list, err := s.ListRecords(ctx, "u1", RecordFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = s.GetRecord(ctx, "r1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		kv.hsetErr = nil
		require.NoError(t, s.SaveRecord(ctx, r))
		got, err := s.GetRecord(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("owner index fails", func(t *testing.T) {
		kv := newMapKV()
		kv.setErr = errors.New("connection reset")
		s := NewKV(kv)

		err := s.SaveRecord(ctx, r)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

		list, err := s.ListRecords(ctx, "u1", RecordFilter{})
		require.NoError(t, err)
		assert.Empty(t, list, "a record without an owner index must not be listed")
	})

	t.Run("failed update keeps the old record reachable", func(t *testing.T) {
		kv := newMapKV()
		s := NewKV(kv)
		require.NoError(t, s.SaveRecord(ctx, r))

		kv.hsetErr = errors.New("connection reset")
		updated := r
		updated.Category = "salary"
		require.Error(t, s.SaveRecord(ctx, updated))

		got, err := s.GetRecord(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, r.Category, got.Category)
	})
}

func TestKV_CorruptDocument(t *testing.T) {
	kv := newMapKV()
	kv.strings["userProfile_u1"] = "{not json"

	_, err := NewKV(kv).GetProfile(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
