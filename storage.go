package portal

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"
)

// Keys of the persisted state. They are the names the portal always used, so
// that existing stores keep working.
const (
	AccountsKey = "studentPortalUsers"
	SessionKey  = "currentUser"
	ThemeKey    = "studentPortalTheme"
)

// Storage is the persistence capability of a Store: raw values by key.
//
// Load of a key never saved returns an error matching fs.ErrNotExist.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// MemoryStorage is a Storage held in memory. Its zero value is not ready,
// use NewMemoryStorage.
type MemoryStorage struct {
	values map[string][]byte
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (m *MemoryStorage) Load(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return slices.Clone(v), nil
}

func (m *MemoryStorage) Save(key string, data []byte) error {
	m.values[key] = slices.Clone(data)
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	delete(m.values, key)
	return nil
}

// Keys returns the saved keys, sorted.
func (m *MemoryStorage) Keys() []string {
	return slices.Sorted(maps.Keys(m.values))
}
