package frontend

import (
	"fmt"

	"github.com/avlr/boxup/internal/execx"
	"github.com/fatih/color"
)

var warn = color.New(color.FgYellow)

// Config lists the global JavaScript and Ruby tooling to install.
type Config struct {
	Npm  []string `yaml:"npm,omitempty"`
	Gems []string `yaml:"gems,omitempty"`
}

// InstallAll runs the npm and gem sub-steps. Each sub-step is gated on its
// own runtime being resolvable; a missing runtime skips that sub-step only.
func InstallAll(run execx.Runner, cfg Config) error {
	if err := installNpm(run, cfg.Npm); err != nil {
		return err
	}
	return installGems(run, cfg.Gems)
}

func installNpm(run execx.Runner, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	if _, err := run.LookPath("npm"); err != nil {
		warn.Println("⚠️  npm not found on PATH; skipping JavaScript tooling")
		return nil
	}
	for _, pkg := range pkgs {
		fmt.Printf("📦 Installing npm package: %s\n", pkg)
		if err := run.RunAttached("npm", "install", "-g", pkg); err != nil {
			return fmt.Errorf("npm install %s failed: %w", pkg, err)
		}
	}
	return nil
}

func installGems(run execx.Runner, gems []string) error {
	if len(gems) == 0 {
		return nil
	}
	if _, err := run.LookPath("gem"); err != nil {
		warn.Println("⚠️  gem not found on PATH; skipping Ruby tooling")
		return nil
	}
	for _, gem := range gems {
		fmt.Printf("💎 Installing gem: %s\n", gem)
		if err := run.RunAttached("gem", "install", gem); err != nil {
			return fmt.Errorf("gem install %s failed: %w", gem, err)
		}
	}
	return nil
}
