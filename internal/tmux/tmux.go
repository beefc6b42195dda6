package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"devmux/internal/shell"
)

type Tmux struct {
	Cmd shell.Commander
}

// HasSession reports whether a session with the given name exists. A clean
// non-zero exit from has-session means "no such session"; any other failure
// (tmux missing, unrunnable) is returned as an error.
func (t *Tmux) HasSession(name string) (bool, error) {
	_, err := t.Cmd.Run("tmux", "has-session", "-t", name)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

func (t *Tmux) NewSession(name, path string) error {
	out, err := t.Cmd.Run("tmux", "new-session", "-d", "-s", name, "-c", path)
	if err != nil {
		return fmt.Errorf("tmux new-session: %v: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// SplitWindow splits the session's window into two side-by-side panes, both
// rooted at path.
func (t *Tmux) SplitWindow(name, path string) error {
	out, err := t.Cmd.Run("tmux", "split-window", "-h", "-t", name, "-c", path)
	if err != nil {
		return fmt.Errorf("tmux split-window: %v: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// Attach replaces the current terminal with the session. Blocks until the
// client detaches or the session ends.
func (t *Tmux) Attach(name string) error {
	if err := t.Cmd.Interactive("tmux", "attach-session", "-t", name); err != nil {
		return fmt.Errorf("tmux attach-session: %w", err)
	}
	return nil
}

// ListSessions returns the names of all running sessions. Errors (including
// no server running) degrade to an empty list.
func (t *Tmux) ListSessions() []string {
	out, err := t.Cmd.Run("tmux", "list-sessions", "-F", "#{session_name}")
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
