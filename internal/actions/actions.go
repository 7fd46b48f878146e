package actions

import (
	"fmt"

	"github.com/avlr/boxup/internal/appx"
	"github.com/avlr/boxup/internal/choco"
	"github.com/avlr/boxup/internal/config"
	"github.com/avlr/boxup/internal/execx"
	"github.com/avlr/boxup/internal/frontend"
	"github.com/avlr/boxup/internal/shortcut"
	"github.com/avlr/boxup/internal/winenv"
	"github.com/avlr/boxup/internal/winfeature"
	"github.com/fatih/color"
)

var warn = color.New(color.FgYellow)

// RemoveApps strips the preinstalled store apps a fresh machine ships with.
func RemoveApps(run execx.Runner, cfg *config.Config) error {
	fmt.Println("🧹 Removing preinstalled apps")
	return appx.RemoveAll(run, cfg.RemoveApps)
}

// InstallBaseSoftware bootstraps Chocolatey and installs the everyday software.
func InstallBaseSoftware(run execx.Runner, drv *choco.Driver, cfg *config.Config) error {
	fmt.Println("📦 Installing base software")
	if err := drv.Bootstrap(); err != nil {
		return err
	}
	return drv.InstallAll(cfg.BaseSoftware)
}

// InstallDevSoftware installs the developer tooling, registers the git command
// directory on the system PATH and pulls the latest Node.js through nvm.
func InstallDevSoftware(run execx.Runner, drv *choco.Driver, openStore func() (winenv.Store, error), cfg *config.Config) error {
	fmt.Println("🛠️  Installing developer software")
	if err := drv.Bootstrap(); err != nil {
		return err
	}
	if err := drv.InstallAll(cfg.DevSoftware); err != nil {
		return err
	}
	registerGitPath(openStore, cfg.GitCmdDir)
	return installLatestNode(run)
}

// A PATH registration failure should not abort the unrelated nvm step, it is
// surfaced as a warning with the remediation spelled out.
func registerGitPath(openStore func() (winenv.Store, error), dir string) {
	store, err := openStore()
	if err != nil {
		warn.Printf("⚠️  Cannot open the system environment store: %v\n", err)
		return
	}
	defer store.Close()
	if err := winenv.EnsurePathContains(store, dir); err != nil {
		warn.Printf("⚠️  %v\n", err)
	}
}

func installLatestNode(run execx.Runner) error {
	// the nvm shim only lands on PATH in a fresh shell, so right after its
	// own install it may be unresolvable
	if _, err := run.LookPath("nvm"); err != nil {
		warn.Println("⚠️  nvm not found on PATH; open a new shell and run 'nvm install latest'")
		return nil
	}
	fmt.Println("📦 Installing latest Node.js via nvm")
	if err := run.RunAttached("nvm", "install", "latest"); err != nil {
		return fmt.Errorf("nvm install failed: %w", err)
	}
	if err := run.RunAttached("nvm", "use", "latest"); err != nil {
		return fmt.Errorf("nvm use failed: %w", err)
	}
	return nil
}

// InstallWebServer enables the IIS feature set and, when the Web Platform
// Installer is around, its extra products.
func InstallWebServer(run execx.Runner, cfg *config.Config) error {
	fmt.Println("🌐 Setting up the web server")
	if err := winfeature.EnableAll(run, cfg.WebFeatures); err != nil {
		return err
	}
	return winfeature.InstallWebPIProducts(run, winfeature.WebPICmdPath(), cfg.WebPIProducts)
}

// CreateStartupEntry writes one shortcut into the user's startup folder.
func CreateStartupEntry(run execx.Runner, cfg *config.Config) error {
	spec := cfg.Startup
	var err error
	if spec.Target, err = shortcut.ExpandProfile(spec.Target); err != nil {
		return err
	}
	if spec.Args, err = shortcut.ExpandProfile(spec.Args); err != nil {
		return err
	}
	if spec.Icon, err = shortcut.ExpandProfile(spec.Icon); err != nil {
		return err
	}
	return shortcut.Create(run, spec, shortcut.StartupDir())
}

// InstallFrontendTools installs the global JS and Ruby tooling.
func InstallFrontendTools(run execx.Runner, cfg *config.Config) error {
	fmt.Println("🎨 Installing front-end tooling")
	return frontend.InstallAll(run, cfg.Frontend)
}

// ListManualSteps prints the follow-ups no tool can do for you.
func ListManualSteps(cfg *config.Config) {
	fmt.Println("📋 Manual follow-up steps:")
	for i, step := range cfg.ManualSteps {
		fmt.Printf(" %d. %s\n", i+1, step)
	}
}
