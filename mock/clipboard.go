package mock

import "github.com/fwojciec/lospec"

var _ lospec.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of lospec.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
