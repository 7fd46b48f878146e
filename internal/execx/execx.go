package execx

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Options apply to every command a runner executes during one run.
type Options struct {
	Verbose bool
	DryRun  bool
}

// Runner abstracts external tool invocation so actions can be driven
// by a fake implementation in tests.
type Runner interface {
	// Run executes a command and returns its captured stdout.
	Run(name string, args ...string) (string, error)
	// RunAttached executes a command with output streamed to the console.
	RunAttached(name string, args ...string) error
	// LookPath reports where a command resolves to, if anywhere.
	LookPath(name string) (string, error)
}

type ExecRunner struct {
	Opts Options
}

func New(opts Options) *ExecRunner {
	return &ExecRunner{Opts: opts}
}

func (r *ExecRunner) Run(name string, args ...string) (string, error) {
	if r.Opts.Verbose {
		fmt.Printf("⚡ Running: %s %s\n", name, strings.Join(args, " "))
	}
	if r.Opts.DryRun {
		fmt.Printf("⏭️  Would run: %s %s\n", name, strings.Join(args, " "))
		return "", nil
	}
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command failed: %s, stderr: %s", err, stderr.String())
	}
	return out.String(), nil
}

func (r *ExecRunner) RunAttached(name string, args ...string) error {
	if r.Opts.Verbose {
		fmt.Printf("⚡ Running: %s %s\n", name, strings.Join(args, " "))
	}
	if r.Opts.DryRun {
		fmt.Printf("⏭️  Would run: %s %s\n", name, strings.Join(args, " "))
		return nil
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// PowerShell runs a script through Windows PowerShell and returns its output.
func PowerShell(r Runner, script string) (string, error) {
	return r.Run("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}
