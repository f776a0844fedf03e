package lospec

import "fmt"

// ColorErrorReason identifies why a color token is invalid.
type ColorErrorReason string

// Color token error reasons.
const (
	ErrInvalidLength ColorErrorReason = "invalid_length"
	ErrInvalidDigit  ColorErrorReason = "invalid_digit"
)

// ColorError describes a color token that is not exactly six hex digits.
type ColorError struct {
	Token  string           // The token as given, including any 0x prefix
	Reason ColorErrorReason // Why the token was rejected
	Offset int              // Digit offset of the first bad character (invalid_digit only)
}

// Error implements the error interface.
func (e *ColorError) Error() string {
	switch e.Reason {
	case ErrInvalidLength:
		return fmt.Sprintf("invalid color %q: expected 6 hex digits", e.Token)
	case ErrInvalidDigit:
		return fmt.Sprintf("invalid color %q: non-hex digit at offset %d", e.Token, e.Offset)
	default:
		return fmt.Sprintf("invalid color %q", e.Token)
	}
}

// DecodeError reports a catalog payload that could not be decoded.
type DecodeError struct {
	Field string // Wire field path, e.g. "palettes[2].colors[0]"
	Token string // Offending raw value, if any
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("decode %s: %q: %v", e.Field, e.Token, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("decode: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed request to the catalog.
type TransportError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IOError reports a failed filesystem operation on Path.
type IOError struct {
	Op   string // "mkdir", "write", "read", "remove" or "stat"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
