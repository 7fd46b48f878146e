package execx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	lastName string
	lastArgs []string
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	f.lastName, f.lastArgs = name, args
	return "ok", nil
}

func (f *fakeRunner) RunAttached(name string, args ...string) error { return nil }

func (f *fakeRunner) LookPath(name string) (string, error) { return name, nil }

func TestDryRunNeverExecutes(t *testing.T) {
	r := New(Options{DryRun: true})

	out, err := r.Run("definitely-not-a-command-on-this-box")
	require.NoError(t, err)
	assert.Empty(t, out)

	require.NoError(t, r.RunAttached("definitely-not-a-command-on-this-box", "--flag"))
}

func TestRunReportsMissingCommand(t *testing.T) {
	r := New(Options{})

	_, err := r.Run("definitely-not-a-command-on-this-box")
	require.Error(t, err)
}

func TestPowerShellWrapsScript(t *testing.T) {
	f := &fakeRunner{}

	out, err := PowerShell(f, "Get-AppxPackage -Name '*Xbox*'")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "powershell", f.lastName)
	assert.Equal(t,
		[]string{"-NoProfile", "-NonInteractive", "-Command", "Get-AppxPackage -Name '*Xbox*'"},
		f.lastArgs)
}
