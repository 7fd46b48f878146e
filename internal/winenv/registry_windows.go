//go:build windows

package winenv

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const envKeyPath = `System\CurrentControlSet\Control\Session Manager\Environment`

type registryStore struct {
	key registry.Key
}

// OpenSystemStore opens the machine-wide environment key for read/write.
// Writing values requires an elevated process.
func OpenSystemStore() (Store, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, envKeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, fmt.Errorf("failed to open environment key: %w", err)
	}
	return &registryStore{key: k}, nil
}

func (s *registryStore) Get(name string) (string, error) {
	v, _, err := s.key.GetStringValue(name)
	if err == registry.ErrNotExist {
		return "", nil
	}
	return v, err
}

func (s *registryStore) Set(name, value string) error {
	// PATH entries routinely reference other variables, keep REG_EXPAND_SZ
	return s.key.SetExpandStringValue(name, value)
}

func (s *registryStore) Close() error {
	return s.key.Close()
}
