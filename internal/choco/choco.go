package choco

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avlr/boxup/internal/cache"
	"github.com/avlr/boxup/internal/execx"
)

// Package is one Chocolatey package plus optional installer parameters.
type Package struct {
	Name   string `yaml:"name"`
	Params string `yaml:"params,omitempty"`
}

const (
	guiPackage       = "chocolateygui"
	installScriptURL = "https://community.chocolatey.org/install.ps1"
	snapshotTTL      = 10 * time.Minute
)

type Driver struct {
	// CachePath holds the installed-package snapshot between runs.
	CachePath string

	run       execx.Runner
	installed map[string]struct{}
}

func New(r execx.Runner) *Driver {
	return &Driver{
		CachePath: filepath.Join(os.TempDir(), ".boxup.choco.cache"),
		run:       r,
	}
}

// Bootstrap makes sure the Chocolatey client itself is present, then installs
// the GUI front-end so the machine owner can manage packages later on.
func (d *Driver) Bootstrap() error {
	if _, err := d.run.LookPath("choco"); err != nil {
		fmt.Println("📥 Installing Chocolatey")
		script := fmt.Sprintf(
			"Set-ExecutionPolicy Bypass -Scope Process -Force; iex ((New-Object System.Net.WebClient).DownloadString('%s'))",
			installScriptURL)
		if _, err := execx.PowerShell(d.run, script); err != nil {
			return fmt.Errorf("chocolatey bootstrap failed: %w", err)
		}
	}
	if d.IsInstalled(guiPackage) {
		return nil
	}
	return d.Install(Package{Name: guiPackage})
}

// InstallAll installs every package in order, skipping the ones already present.
func (d *Driver) InstallAll(pkgs []Package) error {
	for _, pkg := range pkgs {
		if d.IsInstalled(pkg.Name) {
			fmt.Println("🔄 Skipping already installed package: ", pkg.Name)
			continue
		}
		if err := d.Install(pkg); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) Install(pkg Package) error {
	fmt.Printf("📦 Installing package: %s\n", pkg.Name)
	args := []string{"install", pkg.Name, "-y"}
	if pkg.Params != "" {
		args = append(args, "--params", pkg.Params)
	}
	if err := d.run.RunAttached("choco", args...); err != nil {
		return fmt.Errorf("choco install %s failed: %w", pkg.Name, err)
	}
	d.markInstalled(pkg.Name)
	return nil
}

func (d *Driver) IsInstalled(name string) bool {
	set, err := d.installedSet()
	if err != nil {
		return false
	}
	_, ok := set[strings.ToLower(name)]
	return ok
}

// installedSet fetches the locally installed packages in one bulk query and
// keeps a short-lived snapshot on disk so repeated runs stay cheap.
func (d *Driver) installedSet() (map[string]struct{}, error) {
	if d.installed != nil {
		return d.installed, nil
	}

	var names []string
	if cache.IsFresh(d.CachePath, snapshotTTL) {
		if err := cache.Load(d.CachePath, &names); err == nil {
			d.installed = toSet(names)
			return d.installed, nil
		}
	}

	out, err := d.run.Run("choco", "list", "--local-only", "--limit-output")
	if err != nil {
		return nil, fmt.Errorf("choco list failed: %w", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// lines look like: name|version
		name := line
		if i := strings.IndexByte(line, '|'); i != -1 {
			name = line[:i]
		}
		names = append(names, strings.ToLower(name))
	}
	_ = cache.Save(d.CachePath, names)
	d.installed = toSet(names)
	return d.installed, nil
}

func (d *Driver) markInstalled(name string) {
	if d.installed == nil {
		return
	}
	d.installed[strings.ToLower(name)] = struct{}{}
}

func toSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
