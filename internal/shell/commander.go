package shell

import (
	"os"
	"os/exec"
)

type Commander interface {
	Run(name string, args ...string) ([]byte, error)
	Interactive(name string, args ...string) error
}

type ExecCommander struct{}

func (e *ExecCommander) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// Interactive runs the command wired to the controlling terminal. tmux
// attach-session needs this; CombinedOutput would leave it without a tty.
func (e *ExecCommander) Interactive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
