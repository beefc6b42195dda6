package session

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"devmux/internal/tmux"
)

// fakeCommander records every invocation and fails the configured tmux
// subcommands.
type fakeCommander struct {
	calls  [][]string
	failOn map[string]error
}

func (f *fakeCommander) Run(name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err, ok := f.failOn[args[0]]; ok {
		return nil, err
	}
	return nil, nil
}

func (f *fakeCommander) Interactive(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err, ok := f.failOn[args[0]]; ok {
		return err
	}
	return nil
}

// exitError produces a real *exec.ExitError, the way a live has-session
// reports a missing session.
func exitError(t *testing.T) error {
	t.Helper()
	err := exec.Command("false").Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError from false, got %v", err)
	}
	return err
}

func launcher(fake *fakeCommander) *Launcher {
	return &Launcher{Tmux: &tmux.Tmux{Cmd: fake}}
}

func TestName(t *testing.T) {
	if got := Name("/home/user/Developer/MyProj", ""); got != "myproj" {
		t.Fatalf("name mismatch: %s", got)
	}
	if got := Name("/srv/Work", "dev-"); got != "dev-work" {
		t.Fatalf("prefixed name mismatch: %s", got)
	}
}

func TestLaunchCreatesSplitsAttaches(t *testing.T) {
	fake := &fakeCommander{failOn: map[string]error{"has-session": exitError(t)}}
	if err := launcher(fake).Launch("myproj", "/home/u/Developer/MyProj"); err != nil {
		t.Fatalf("launch: %v", err)
	}

	want := [][]string{
		{"tmux", "has-session", "-t", "myproj"},
		{"tmux", "new-session", "-d", "-s", "myproj", "-c", "/home/u/Developer/MyProj"},
		{"tmux", "split-window", "-h", "-t", "myproj", "-c", "/home/u/Developer/MyProj"},
		{"tmux", "attach-session", "-t", "myproj"},
	}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Fatalf("call sequence mismatch:\ngot  %v\nwant %v", fake.calls, want)
	}
}

func TestLaunchAttachesExistingSession(t *testing.T) {
	fake := &fakeCommander{}
	if err := launcher(fake).Launch("myproj", "/ignored"); err != nil {
		t.Fatalf("launch: %v", err)
	}

	want := [][]string{
		{"tmux", "has-session", "-t", "myproj"},
		{"tmux", "attach-session", "-t", "myproj"},
	}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Fatalf("call sequence mismatch:\ngot  %v\nwant %v", fake.calls, want)
	}
}

func TestLaunchStopsAfterCreateFailure(t *testing.T) {
	fake := &fakeCommander{failOn: map[string]error{
		"has-session": exitError(t),
		"new-session": errors.New("boom"),
	}}
	err := launcher(fake).Launch("myproj", "/p")
	if err == nil {
		t.Fatal("expected error")
	}
	var le *LaunchError
	if !errors.As(err, &le) || le.Step != StepCreate {
		t.Fatalf("expected create-step LaunchError, got %v", err)
	}
	if len(fake.calls) != 2 {
		t.Fatalf("split/attach issued after create failure: %v", fake.calls)
	}
}

func TestLaunchStopsAfterSplitFailure(t *testing.T) {
	fake := &fakeCommander{failOn: map[string]error{
		"has-session":  exitError(t),
		"split-window": errors.New("boom"),
	}}
	err := launcher(fake).Launch("myproj", "/p")
	var le *LaunchError
	if !errors.As(err, &le) || le.Step != StepSplit {
		t.Fatalf("expected split-step LaunchError, got %v", err)
	}
	if len(fake.calls) != 3 {
		t.Fatalf("attach issued after split failure: %v", fake.calls)
	}
}

func TestLaunchReportsCheckFailure(t *testing.T) {
	// A non-exit error means tmux could not be run at all.
	fake := &fakeCommander{failOn: map[string]error{
		"has-session": errors.New(`exec: "tmux": executable file not found`),
	}}
	err := launcher(fake).Launch("myproj", "/p")
	var le *LaunchError
	if !errors.As(err, &le) || le.Step != StepCheck {
		t.Fatalf("expected check-step LaunchError, got %v", err)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("later steps issued after check failure: %v", fake.calls)
	}
}

func TestLaunchReportsAttachFailure(t *testing.T) {
	fake := &fakeCommander{failOn: map[string]error{
		"attach-session": errors.New("no terminal"),
	}}
	err := launcher(fake).Launch("myproj", "/p")
	var le *LaunchError
	if !errors.As(err, &le) || le.Step != StepAttach {
		t.Fatalf("expected attach-step LaunchError, got %v", err)
	}
}
