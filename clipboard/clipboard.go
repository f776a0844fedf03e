// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/lospec"
)

// Ensure Command implements the Clipboard interface.
var _ lospec.Clipboard = (*Command)(nil)

// ErrUnavailable is returned by Detect when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command found (tried pbcopy, wl-copy, xclip, xsel)")

// candidates are tried in order by Detect.
var candidates = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
}

// Command implements Clipboard by piping content to an external command.
type Command struct {
	name string
	args []string
}

// NewCommand returns a clipboard that pipes content to name with args.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// NewPBCopy returns a clipboard backed by the macOS pbcopy command.
func NewPBCopy() *Command {
	return NewCommand("pbcopy")
}

// Detect returns a clipboard for the first supported command found on PATH.
func Detect() (*Command, error) {
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return NewCommand(c[0], c[1:]...), nil
		}
	}
	return nil, ErrUnavailable
}

// Name returns the command the clipboard runs.
func (c *Command) Name() string {
	return c.name
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
