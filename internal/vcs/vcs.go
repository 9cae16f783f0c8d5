// Package vcs initializes a version-control repository in freshly generated
// projects. Initialization is best effort: the scaffolder reports any failure
// as a warning and never lets it fail the run.
package vcs

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command in dir and returns its combined
// output. Tests substitute a stub; a nil Runner means ExecRunner.
type Runner func(dir, name string, args ...string) ([]byte, error)

// ExecRunner runs the real binary via os/exec.
func ExecRunner(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Init creates a git repository in dir. The error carries the command
// output so the caller's warning names the underlying cause, including a
// missing git binary.
func Init(run Runner, dir string) error {
	if run == nil {
		run = ExecRunner
	}
	output, err := run(dir, "git", "init")
	if err != nil {
		if out := strings.TrimSpace(string(output)); out != "" {
			return fmt.Errorf("git init: %w: %s", err, out)
		}
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}
