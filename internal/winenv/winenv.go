package winenv

import (
	"fmt"
	"strings"
)

// PathVar is the name of the machine-wide PATH value.
const PathVar = "Path"

// Store is a handle to a persistent environment variable store. The real
// implementation sits on the Windows registry; tests inject a MemStore.
type Store interface {
	Get(name string) (string, error)
	Set(name, value string) error
	Close() error
}

// EnsurePathContains appends dir to the stored PATH value exactly once.
// A directory already present as a delimited segment, with or without a
// trailing backslash, leaves the store untouched. Existing entries are
// never reordered or removed.
func EnsurePathContains(store Store, dir string) error {
	current, err := store.Get(PathVar)
	if err != nil {
		return fmt.Errorf("failed to read PATH: %w", err)
	}
	if PathContains(current, dir) {
		fmt.Printf("🔄 PATH already contains %s\n", dir)
		return nil
	}
	updated := dir
	if current != "" {
		updated = current + ";" + dir
	}
	if err := store.Set(PathVar, updated); err != nil {
		return fmt.Errorf("failed to write PATH, re-run from an elevated prompt: %w", err)
	}
	fmt.Printf("🔧 Added %s to the system PATH\n", dir)
	return nil
}

// PathContains reports whether value holds dir as a delimited segment.
// One trailing backslash is stripped from both sides before comparing, and
// the comparison is case-insensitive like the filesystem it describes.
func PathContains(value, dir string) bool {
	needle := strings.TrimSuffix(dir, `\`)
	if needle == "" {
		return false
	}
	for _, seg := range strings.Split(value, ";") {
		if strings.EqualFold(strings.TrimSuffix(seg, `\`), needle) {
			return true
		}
	}
	return false
}

// MemStore is an in-memory Store for tests and dry runs.
type MemStore struct {
	Values   map[string]string
	ReadOnly bool
}

func NewMemStore(values map[string]string) *MemStore {
	if values == nil {
		values = map[string]string{}
	}
	return &MemStore{Values: values}
}

func (s *MemStore) Get(name string) (string, error) {
	return s.Values[name], nil
}

func (s *MemStore) Set(name, value string) error {
	if s.ReadOnly {
		return fmt.Errorf("access is denied")
	}
	s.Values[name] = value
	return nil
}

func (s *MemStore) Close() error { return nil }
