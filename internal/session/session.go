package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"devmux/internal/tmux"
)

// Step identifies which part of the launch protocol failed.
type Step string

const (
	StepCheck  Step = "check"
	StepCreate Step = "create"
	StepSplit  Step = "split"
	StepAttach Step = "attach"
)

type LaunchError struct {
	Step Step
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("tmux %s failed: %v", e.Step, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Name derives the tmux session name for a project path: the final path
// segment, lower-cased, with the configured prefix in front.
func Name(path, prefix string) string {
	return prefix + strings.ToLower(filepath.Base(path))
}

type Launcher struct {
	Tmux *tmux.Tmux
}

// Launch attaches to the named session if it is already running, otherwise
// provisions it: create detached, split into two side-by-side panes, attach.
// The first failing step aborts the sequence. Re-running against a live
// session always takes the attach branch and never re-splits.
func (l *Launcher) Launch(name, path string) error {
	exists, err := l.Tmux.HasSession(name)
	if err != nil {
		return &LaunchError{Step: StepCheck, Err: err}
	}

	if exists {
		if err := l.Tmux.Attach(name); err != nil {
			return &LaunchError{Step: StepAttach, Err: err}
		}
		return nil
	}

	if err := l.Tmux.NewSession(name, path); err != nil {
		return &LaunchError{Step: StepCreate, Err: err}
	}
	if err := l.Tmux.SplitWindow(name, path); err != nil {
		return &LaunchError{Step: StepSplit, Err: err}
	}
	if err := l.Tmux.Attach(name); err != nil {
		return &LaunchError{Step: StepAttach, Err: err}
	}
	return nil
}
