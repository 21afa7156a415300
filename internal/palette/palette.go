// Package palette resolves user supplied color names.
package palette

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for names that are neither SVG color keywords
// nor hex triplets.
var ErrUnknownColor = errors.New("unknown color")

// Parse resolves an SVG 1.1 color keyword ("lime", "blue") or a hex value
// of the form #rrggbb or #rrggbbaa. Keywords are case-insensitive.
func Parse(name string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: #%s has %d digits, want 6 or 8", ErrUnknownColor, s, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: #%s: %v", ErrUnknownColor, s, err)
	}
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
