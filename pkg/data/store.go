package data

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// KV is the key-value store every component persists through.
type KV interface {
	// Get returns the raw stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	// Keys lists stored keys starting with prefix, sorted.
	Keys(prefix string) ([]string, error)
}

// Key binds a stored key name to the Go type serialized under it.
type Key[T any] struct {
	Name    string
	Default func() T
}

func (k Key[T]) zero() T {
	if k.Default != nil {
		return k.Default()
	}
	var v T
	return v
}

// Load reads and decodes k. Missing, unreadable or corrupt values yield the
// key's default; the latter two are logged.
func Load[T any](kv KV, k Key[T], logger *zap.Logger) T {
	raw, ok, err := kv.Get(k.Name)
	if err != nil {
		logger.Warn("read stored value", zap.String("key", k.Name), zap.Error(err))
		return k.zero()
	}
	if !ok {
		return k.zero()
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("discarding corrupt stored value", zap.String("key", k.Name), zap.Error(err))
		return k.zero()
	}
	return v
}

// Lookup is Load for callers that need to know whether a value was stored.
func Lookup[T any](kv KV, k Key[T], logger *zap.Logger) (T, bool) {
	raw, ok, err := kv.Get(k.Name)
	if err != nil || !ok {
		if err != nil {
			logger.Warn("read stored value", zap.String("key", k.Name), zap.Error(err))
		}
		return k.zero(), false
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("discarding corrupt stored value", zap.String("key", k.Name), zap.Error(err))
		return k.zero(), false
	}
	return v, true
}

func Save[T any](kv KV, k Key[T], v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(k.Name, string(raw))
}

// MemoryStore is a KV held in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
