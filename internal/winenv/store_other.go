//go:build !windows

package winenv

import "fmt"

// OpenSystemStore is only available on Windows.
func OpenSystemStore() (Store, error) {
	return nil, fmt.Errorf("the system environment store requires Windows")
}
