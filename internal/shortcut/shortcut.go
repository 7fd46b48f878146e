package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avlr/boxup/internal/execx"
	homedir "github.com/mitchellh/go-homedir"
)

// Spec describes one .lnk file to create.
type Spec struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Args   string `yaml:"args,omitempty"`
	Icon   string `yaml:"icon,omitempty"`
}

// StartupDir returns the current user's startup folder.
func StartupDir() string {
	return filepath.Join(os.Getenv("APPDATA"), "Microsoft", "Windows", "Start Menu", "Programs", "Startup")
}

// Create persists spec as a shortcut file in dir via the shell COM object.
func Create(run execx.Runner, spec Spec, dir string) error {
	// shortcut paths are Windows paths no matter where tests run
	lnk := dir + `\` + spec.Name + ".lnk"
	fmt.Printf("🔗 Creating shortcut: %s\n", lnk)

	var b strings.Builder
	fmt.Fprintf(&b, "$s = (New-Object -ComObject WScript.Shell).CreateShortcut('%s'); ", lnk)
	fmt.Fprintf(&b, "$s.TargetPath = '%s'; ", spec.Target)
	if spec.Args != "" {
		fmt.Fprintf(&b, "$s.Arguments = '%s'; ", spec.Args)
	}
	if spec.Icon != "" {
		fmt.Fprintf(&b, "$s.IconLocation = '%s'; ", spec.Icon)
	}
	b.WriteString("$s.Save()")

	if _, err := execx.PowerShell(run, b.String()); err != nil {
		return fmt.Errorf("failed to create shortcut %s: %w", spec.Name, err)
	}
	return nil
}

// ExpandProfile replaces the {profile} placeholder with the current user's
// profile directory.
func ExpandProfile(s string) (string, error) {
	if !strings.Contains(s, "{profile}") {
		return s, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve the user profile: %w", err)
	}
	return strings.ReplaceAll(s, "{profile}", home), nil
}
