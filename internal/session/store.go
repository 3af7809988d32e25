package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions between requests.
//
// Save only succeeds if the stored version equals the version of s, it returns ErrConflict
// otherwise. New sessions have version zero and must not exist yet. A successful Save
// increments the version of s.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// checkVersion compares the stored version with the version a session was loaded with.
func checkVersion(s *Session, stored int, exists bool) error {
	if !exists {
		if s.version != 0 {
			return ErrSessionNotFound
		}
		return nil
	}

	if stored != s.version {
		return fmt.Errorf("%w: stored version %d, saving version %d", ErrConflict, stored, s.version)
	}

	return nil
}

type memoryEntry struct {
	snapshot Snapshot
	expires  time.Time
}

// MemoryStore keeps sessions in memory. Sessions expire after ttl without being saved.
type MemoryStore struct {
	// data stores snapshots by session ID
	data map[string]memoryEntry

	// dataMutex protects data
	dataMutex sync.Mutex

	ttl time.Duration
	now func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.dataMutex.Lock()
	defer m.dataMutex.Unlock()

	m.evictExpired()

	entry, ok := m.data[s.ID()]
	if err := checkVersion(s, entry.snapshot.Version, ok); err != nil {
		return err
	}

	snapshot := s.Snapshot()
	snapshot.Version++

	m.data[s.ID()] = memoryEntry{
		snapshot: snapshot,
		expires:  m.now().Add(m.ttl),
	}

	s.version = snapshot.Version
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.dataMutex.Lock()
	entry, ok := m.data[id]
	m.dataMutex.Unlock()

	if !ok || !m.now().Before(entry.expires) {
		return nil, ErrSessionNotFound
	}

	return Restore(entry.snapshot, nil)
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.dataMutex.Lock()
	defer m.dataMutex.Unlock()

	delete(m.data, id)
	return nil
}

// Len returns the number of stored sessions, including expired ones that were not evicted yet.
func (m *MemoryStore) Len() int {
	m.dataMutex.Lock()
	defer m.dataMutex.Unlock()

	return len(m.data)
}

// evictExpired removes expired sessions. It assumes dataMutex is locked.
func (m *MemoryStore) evictExpired() {
	now := m.now()
	for id, entry := range m.data {
		if !now.Before(entry.expires) {
			delete(m.data, id)
		}
	}
}

const sessionKeyPrefix = "session:"

// encodeSnapshot returns the JSON form of snapshot as stored in Redis.
func encodeSnapshot(snapshot Snapshot) ([]byte, error) {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("error marshaling session: %w", err)
	}
	return jsonData, nil
}

// decodeSnapshot parses the JSON form of a snapshot.
func decodeSnapshot(jsonData []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(jsonData, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("error unmarshaling session: %w", err)
	}
	return snapshot, nil
}

// RedisStore keeps sessions in Redis as JSON with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save implements Store. The version check runs in a WATCH transaction on the session key.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	key := sessionKeyPrefix + s.ID()

	snapshot := s.Snapshot()
	snapshot.Version++

	jsonData, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		stored, getErr := tx.Get(ctx, key).Bytes()
		exists := true
		if errors.Is(getErr, redis.Nil) {
			exists = false
		} else if getErr != nil {
			return fmt.Errorf("error getting session: %w", getErr)
		}

		storedVersion := 0
		if exists {
			current, decodeErr := decodeSnapshot(stored)
			if decodeErr != nil {
				return decodeErr
			}
			storedVersion = current.Version
		}

		if versionErr := checkVersion(s, storedVersion, exists); versionErr != nil {
			return versionErr
		}

		_, pipeErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, jsonData, r.ttl)
			return nil
		})
		return pipeErr
	}

	err = r.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("%w: session key changed during save", ErrConflict)
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrSessionNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	s.version = snapshot.Version
	return nil
}

// Load implements Store.
func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	jsonData, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	snapshot, err := decodeSnapshot(jsonData)
	if err != nil {
		return nil, err
	}

	return Restore(snapshot, nil)
}

// Delete implements Store.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
