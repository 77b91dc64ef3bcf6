package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// KeyValue is the slice of Redis the KV store relies on. Get and HGet return
// ErrKeyMissing for absent keys or fields.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HSet(ctx context.Context, key, field, value string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// ErrKeyMissing is returned by KeyValue lookups that find nothing.
var ErrKeyMissing = errors.New("key missing")

// RedisOptions configures the Redis connection behind the KV store.
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedisKeyValue connects to Redis and pings it before returning.
func NewRedisKeyValue(ctx context.Context, opts RedisOptions) (KeyValue, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &redisKeyValue{rdb: rdb}, nil
}

type redisKeyValue struct {
	rdb *redis.Client
}

func (r *redisKeyValue) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyMissing
	}
	return v, err
}

func (r *redisKeyValue) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *redisKeyValue) Del(ctx context.Context, keys ...string) error {
	return r.rdb.Del(ctx, keys...).Err()
}

func (r *redisKeyValue) HGet(ctx context.Context, key, field string) (string, error) {
	v, err := r.rdb.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyMissing
	}
	return v, err
}

func (r *redisKeyValue) HSet(ctx context.Context, key, field, value string) error {
	return r.rdb.HSet(ctx, key, field, value).Err()
}

func (r *redisKeyValue) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.rdb.HGetAll(ctx, key).Result()
}

func (r *redisKeyValue) HDel(ctx context.Context, key string, fields ...string) error {
	return r.rdb.HDel(ctx, key, fields...).Err()
}

func (r *redisKeyValue) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *redisKeyValue) Close() error {
	return r.rdb.Close()
}

// KV stores each profile as one JSON document under userProfile_<userId> and
// each user's finance records in the hash financeRecords_<userId>, with
// financeRecordOwner_<id> pointing back at the owner.
type KV struct {
	kv KeyValue
}

// NewKV returns a KV store over the given key-value client.
func NewKV(kv KeyValue) *KV {
	return &KV{kv: kv}
}

func profileKey(userID string) string { return "userProfile_" + userID }

func recordsKey(userID string) string { return "financeRecords_" + userID }

func recordOwnerKey(recordID string) string { return "financeRecordOwner_" + recordID }

func (s *KV) SaveProfile(ctx context.Context, userID string, p domain.Profile) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	doc := newProfileDocument(userID, p)

	// createdAt is carried over from the stored document. Two racing first
	// writes may both stamp it; last write wins.
	existing, err := s.GetProfile(ctx, userID)
	switch {
	case err == nil && !existing.CreatedAt.IsZero():
		doc.CreatedAt = existing.CreatedAt.UTC()
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", userID, err)
	}
	if err := s.kv.Set(ctx, profileKey(userID), string(raw)); err != nil {
		return unavailable(fmt.Sprintf("save profile %s", userID), err)
	}
	return nil
}

func (s *KV) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	raw, err := s.kv.Get(ctx, profileKey(userID))
	if errors.Is(err, ErrKeyMissing) {
		return domain.Profile{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, unavailable(fmt.Sprintf("get profile %s", userID), err)
	}

	var doc profileDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	if doc.UserID == "" {
		doc.UserID = userID
	}
	return doc.toDomain(), nil
}

func (s *KV) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.kv.Del(ctx, profileKey(userID)); err != nil {
		return unavailable(fmt.Sprintf("delete profile %s", userID), err)
	}
	return nil
}

func (s *KV) SaveRecord(ctx context.Context, r domain.FinanceRecord) error {
	if r.ID == "" || r.UserID == "" {
		return errors.New("record id and user id are required")
	}
	raw, err := json.Marshal(newRecordDocument(r))
	if err != nil {
		return fmt.Errorf("encode record %s: %w", r.ID, err)
	}
	// Owner index first: a listed record must always be reachable by id.
	if err := s.kv.Set(ctx, recordOwnerKey(r.ID), r.UserID); err != nil {
		return unavailable(fmt.Sprintf("index record %s", r.ID), err)
	}
	if err := s.kv.HSet(ctx, recordsKey(r.UserID), r.ID, string(raw)); err != nil {
		return unavailable(fmt.Sprintf("save record %s", r.ID), err)
	}
	return nil
}

func (s *KV) GetRecord(ctx context.Context, id string) (domain.FinanceRecord, error) {
	owner, err := s.kv.Get(ctx, recordOwnerKey(id))
	if errors.Is(err, ErrKeyMissing) {
		return domain.FinanceRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.FinanceRecord{}, unavailable(fmt.Sprintf("get record %s", id), err)
	}

	raw, err := s.kv.HGet(ctx, recordsKey(owner), id)
	if errors.Is(err, ErrKeyMissing) {
		return domain.FinanceRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.FinanceRecord{}, unavailable(fmt.Sprintf("get record %s", id), err)
	}
	return decodeRecord(id, raw)
}

func (s *KV) ListRecords(ctx context.Context, userID string, filter RecordFilter) ([]domain.FinanceRecord, error) {
	all, err := s.kv.HGetAll(ctx, recordsKey(userID))
	if err != nil {
		return nil, unavailable(fmt.Sprintf("list records of %s", userID), err)
	}

	records := make([]domain.FinanceRecord, 0, len(all))
	for id, raw := range all {
		r, err := decodeRecord(id, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return applyFilter(records, filter), nil
}

func (s *KV) DeleteRecord(ctx context.Context, id string) error {
	owner, err := s.kv.Get(ctx, recordOwnerKey(id))
	if errors.Is(err, ErrKeyMissing) {
		return nil
	}
	if err != nil {
		return unavailable(fmt.Sprintf("delete record %s", id), err)
	}
	if err := s.kv.HDel(ctx, recordsKey(owner), id); err != nil {
		return unavailable(fmt.Sprintf("delete record %s", id), err)
	}
	if err := s.kv.Del(ctx, recordOwnerKey(id)); err != nil {
		return unavailable(fmt.Sprintf("delete record %s", id), err)
	}
	return nil
}

func (s *KV) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

func (s *KV) Close(context.Context) error {
	return s.kv.Close()
}

func decodeRecord(id, raw string) (domain.FinanceRecord, error) {
	var doc recordDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.FinanceRecord{}, fmt.Errorf("decode record %s: %w", id, err)
	}
	return doc.toDomain(), nil
}
