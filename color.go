package lospec

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an sRGB color with full opacity.
type Color struct {
	R, G, B uint8
}

// hexDigits is the number of hex digits in a color token.
const hexDigits = 6

// ParseColor parses a 6-digit hex color token such as "ff00aa" or "0xFF00AA".
// Returns a *ColorError if the token has the wrong length or contains a
// non-hex digit.
func ParseColor(s string) (Color, error) {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if len(digits) != hexDigits {
		return Color{}, &ColorError{Token: s, Reason: ErrInvalidLength}
	}
	for i := 0; i < hexDigits; i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, &ColorError{Token: s, Reason: ErrInvalidDigit, Offset: i}
		}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			// Unreachable after the digit check above.
			return Color{}, &ColorError{Token: s, Reason: ErrInvalidDigit, Offset: i * 2}
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// HexChannel renders a single channel as a 0x-prefixed, two-digit uppercase
// hex token, e.g. "0xFF" or "0x0A".
func HexChannel(b uint8) string {
	return fmt.Sprintf("0x%02X", b)
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color as an uppercase "RRGGBB" token.
func (c Color) String() string {
	return strings.ToUpper(c.Hex()[1:])
}
