package appx

import (
	"fmt"
	"strings"

	"github.com/avlr/boxup/internal/execx"
)

// RemoveAll resolves every name pattern to installed store packages and
// removes all matches. A pattern with no match is not an error.
func RemoveAll(run execx.Runner, patterns []string) error {
	for _, pattern := range patterns {
		ids, err := FindByPattern(run, pattern)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Printf("🔄 No installed apps match %s\n", pattern)
			continue
		}
		for _, id := range ids {
			fmt.Printf("🗑️  Removing app: %s\n", id)
			if err := Remove(run, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindByPattern lists the full package names matching a store app name glob.
func FindByPattern(run execx.Runner, pattern string) ([]string, error) {
	script := fmt.Sprintf("Get-AppxPackage -Name '%s' | Select-Object -ExpandProperty PackageFullName", pattern)
	out, err := execx.PowerShell(run, script)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate apps for %s: %w", pattern, err)
	}
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

func Remove(run execx.Runner, id string) error {
	script := fmt.Sprintf("Remove-AppxPackage -Package '%s'", id)
	if _, err := execx.PowerShell(run, script); err != nil {
		return fmt.Errorf("failed to remove %s: %w", id, err)
	}
	return nil
}
