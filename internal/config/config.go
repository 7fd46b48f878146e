package config

import (
	"fmt"
	"os"

	"github.com/avlr/boxup/internal/choco"
	"github.com/avlr/boxup/internal/frontend"
	"github.com/avlr/boxup/internal/shortcut"
	"gopkg.in/yaml.v3"
)

// Config is the declarative description of everything a provisioning run may
// do. Every action reads its inputs from here instead of hardcoded lists.
type Config struct {
	RemoveApps []string `yaml:"removeApps"`

	BaseSoftware []choco.Package `yaml:"baseSoftware"`
	DevSoftware  []choco.Package `yaml:"devSoftware"`

	// GitCmdDir is registered on the system PATH after the dev install.
	GitCmdDir string `yaml:"gitCmdDir"`

	WebFeatures   []string `yaml:"webFeatures"`
	WebPIProducts []string `yaml:"webPIProducts,omitempty"`

	Startup  shortcut.Spec   `yaml:"startup"`
	Frontend frontend.Config `yaml:"frontend"`

	ManualSteps []string `yaml:"manualSteps,omitempty"`
}

// Load reads a provisioning config file. A missing file is not an error: the
// built-in defaults cover a stock developer workstation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// Save writes the config out as YAML, so a default run can be dumped,
// edited and replayed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Default is the stock provisioning profile.
func Default() *Config {
	return &Config{
		RemoveApps: []string{
			"*3DBuilder*",
			"*BingFinance*",
			"*BingNews*",
			"*BingSports*",
			"*BingWeather*",
			"*CandyCrush*",
			"*king.com*",
			"*MicrosoftOfficeHub*",
			"*MicrosoftSolitaireCollection*",
			"*OneNote*",
			"*SkypeApp*",
			"*Twitter*",
			"*XboxApp*",
			"*ZuneMusic*",
			"*ZuneVideo*",
		},
		BaseSoftware: []choco.Package{
			{Name: "googlechrome"},
			{Name: "firefox"},
			{Name: "7zip.install"},
			{Name: "notepadplusplus.install"},
			{Name: "vlc"},
			{Name: "paint.net"},
			{Name: "treesizefree"},
			{Name: "sysinternals"},
			{Name: "caffeine"},
		},
		DevSoftware: []choco.Package{
			{Name: "git.install", Params: "/GitAndUnixToolsOnPath"},
			{Name: "nvm"},
			{Name: "vscode"},
			{Name: "python"},
			{Name: "fiddler"},
			{Name: "postman"},
			{Name: "autohotkey.install"},
		},
		GitCmdDir: `C:\Program Files\Git\cmd`,
		WebFeatures: []string{
			"IIS-WebServerRole",
			"IIS-WebServer",
			"IIS-CommonHttpFeatures",
			"IIS-StaticContent",
			"IIS-DefaultDocument",
			"IIS-HttpErrors",
			"IIS-HttpRedirect",
			"IIS-ApplicationDevelopment",
			"IIS-NetFxExtensibility45",
			"IIS-ASPNET45",
			"IIS-ISAPIExtensions",
			"IIS-ISAPIFilter",
			"IIS-HealthAndDiagnostics",
			"IIS-HttpLogging",
			"IIS-Security",
			"IIS-RequestFiltering",
			"IIS-Performance",
			"IIS-WebServerManagementTools",
			"IIS-ManagementConsole",
		},
		WebPIProducts: []string{"UrlRewrite2", "WDeploy"},
		Startup: shortcut.Spec{
			Name:   "AutoHotkey",
			Target: `C:\Program Files\AutoHotkey\AutoHotkey.exe`,
			Args:   `{profile}\Documents\AutoHotkey\startup.ahk`,
			Icon:   `C:\Program Files\AutoHotkey\AutoHotkey.exe,0`,
		},
		Frontend: frontend.Config{
			Npm:  []string{"grunt-cli"},
			Gems: []string{"sass", "compass"},
		},
		ManualSteps: []string{
			"Sign in to the browsers and let the profiles sync",
			"Open a fresh shell and run 'nvm use latest'",
			"Import SSH keys from the password manager",
			"Activate licensed tools (Fiddler, Sublime, ...)",
			"Pin the everyday apps to the taskbar",
			"Reboot once to finish enabling the IIS features",
		},
	}
}
