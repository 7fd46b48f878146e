package winfeature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avlr/boxup/internal/execx"
	"github.com/fatih/color"
)

var warn = color.New(color.FgYellow)

// EnableAll turns on each optional Windows feature in order.
func EnableAll(run execx.Runner, features []string) error {
	for _, feature := range features {
		fmt.Printf("🧩 Enabling Windows feature: %s\n", feature)
		err := run.RunAttached("dism.exe", "/Online", "/Enable-Feature", "/FeatureName:"+feature, "/All", "/NoRestart")
		if err != nil {
			return fmt.Errorf("failed to enable feature %s: %w", feature, err)
		}
	}
	return nil
}

// WebPICmdPath is where the Web Platform Installer CLI lives when present.
func WebPICmdPath() string {
	return filepath.Join(os.Getenv("ProgramFiles"), "Microsoft", "Web Platform Installer", "WebpiCmd-x64.exe")
}

// InstallWebPIProducts installs extras through the Web Platform Installer.
// The installer itself is optional, a missing binary skips the products
// without failing the run.
func InstallWebPIProducts(run execx.Runner, cmdPath string, products []string) error {
	if len(products) == 0 {
		return nil
	}
	if _, err := os.Stat(cmdPath); err != nil {
		warn.Printf("⚠️  Web Platform Installer not found at %s; skipping %s\n", cmdPath, strings.Join(products, ", "))
		return nil
	}
	fmt.Printf("🌐 Installing Web Platform products: %s\n", strings.Join(products, ", "))
	if err := run.RunAttached(cmdPath, "/Install", "/Products:"+strings.Join(products, ","), "/AcceptEula"); err != nil {
		return fmt.Errorf("web platform install failed: %w", err)
	}
	return nil
}
