package shortcut

import (
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	scripts []string
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	f.scripts = append(f.scripts, args[len(args)-1])
	return "", nil
}

func (f *fakeRunner) RunAttached(name string, args ...string) error { return nil }

func (f *fakeRunner) LookPath(name string) (string, error) { return name, nil }

func TestCreateBuildsShortcutScript(t *testing.T) {
	run := &fakeRunner{}
	spec := Spec{
		Name:   "AutoHotkey",
		Target: `C:\Program Files\AutoHotkey\AutoHotkey.exe`,
		Args:   `C:\Users\dev\Documents\AutoHotkey\startup.ahk`,
		Icon:   `C:\Program Files\AutoHotkey\AutoHotkey.exe,0`,
	}

	require.NoError(t, Create(run, spec, `C:\Startup`))

	require.Len(t, run.scripts, 1)
	script := run.scripts[0]
	assert.Contains(t, script, `CreateShortcut('C:\Startup\AutoHotkey.lnk')`)
	assert.Contains(t, script, `$s.TargetPath = 'C:\Program Files\AutoHotkey\AutoHotkey.exe'`)
	assert.Contains(t, script, `$s.Arguments = 'C:\Users\dev\Documents\AutoHotkey\startup.ahk'`)
	assert.Contains(t, script, `$s.IconLocation = 'C:\Program Files\AutoHotkey\AutoHotkey.exe,0'`)
	assert.Contains(t, script, "$s.Save()")
}

func TestCreateOmitsEmptyFields(t *testing.T) {
	run := &fakeRunner{}

	require.NoError(t, Create(run, Spec{Name: "caffeine", Target: `C:\caffeine.exe`}, `C:\Startup`))

	require.Len(t, run.scripts, 1)
	assert.NotContains(t, run.scripts[0], "Arguments")
	assert.NotContains(t, run.scripts[0], "IconLocation")
}

func TestExpandProfile(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	out, err := ExpandProfile(`{profile}\Documents\AutoHotkey\startup.ahk`)
	require.NoError(t, err)
	assert.Equal(t, home+`\Documents\AutoHotkey\startup.ahk`, out)

	out, err = ExpandProfile(`C:\no\placeholder`)
	require.NoError(t, err)
	assert.Equal(t, `C:\no\placeholder`, out)
}
