package choco

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts choco invocations and records what was run.
type fakeRunner struct {
	listOutput string
	missing    map[string]bool
	failOn     string

	attached [][]string
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	if name == "choco" && len(args) > 0 && args[0] == "list" {
		return f.listOutput, nil
	}
	return "", nil
}

func (f *fakeRunner) RunAttached(name string, args ...string) error {
	f.attached = append(f.attached, append([]string{name}, args...))
	if f.failOn != "" && strings.Contains(strings.Join(args, " "), f.failOn) {
		return fmt.Errorf("exit status 1")
	}
	return nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("%s not found", name)
	}
	return `C:\ProgramData\chocolatey\bin\` + name + ".exe", nil
}

func newTestDriver(t *testing.T, run *fakeRunner) *Driver {
	t.Helper()
	d := New(run)
	d.CachePath = filepath.Join(t.TempDir(), "snapshot")
	return d
}

func TestInstallAllSkipsInstalled(t *testing.T) {
	run := &fakeRunner{listOutput: "git.install|2.46.0\nvlc|3.0.21\n"}
	d := newTestDriver(t, run)

	err := d.InstallAll([]Package{
		{Name: "git.install"},
		{Name: "7zip.install"},
		{Name: "VLC"},
	})
	require.NoError(t, err)

	require.Len(t, run.attached, 1)
	assert.Equal(t, []string{"choco", "install", "7zip.install", "-y"}, run.attached[0])
}

func TestInstallPassesParams(t *testing.T) {
	run := &fakeRunner{}
	d := newTestDriver(t, run)

	require.NoError(t, d.Install(Package{Name: "git.install", Params: "/GitAndUnixToolsOnPath"}))
	require.Len(t, run.attached, 1)
	assert.Equal(t,
		[]string{"choco", "install", "git.install", "-y", "--params", "/GitAndUnixToolsOnPath"},
		run.attached[0])
}

func TestInstallAllStopsOnFailure(t *testing.T) {
	run := &fakeRunner{failOn: "vlc"}
	d := newTestDriver(t, run)

	err := d.InstallAll([]Package{{Name: "vlc"}, {Name: "firefox"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vlc")
	require.Len(t, run.attached, 1, "packages after the failure must not run")
}

func TestBootstrapInstallsClientWhenMissing(t *testing.T) {
	run := &fakeRunner{missing: map[string]bool{"choco": true}}
	d := newTestDriver(t, run)

	require.NoError(t, d.Bootstrap())

	// front-end package install still happens after the client bootstrap
	require.Len(t, run.attached, 1)
	assert.Equal(t, []string{"choco", "install", "chocolateygui", "-y"}, run.attached[0])
}

func TestBootstrapSkipsPresentFrontEnd(t *testing.T) {
	run := &fakeRunner{listOutput: "chocolateygui|2.1.1\n"}
	d := newTestDriver(t, run)

	require.NoError(t, d.Bootstrap())
	assert.Empty(t, run.attached)
}
