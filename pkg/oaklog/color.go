package oaklog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/muesli/termenv"
)

// NamedColor is one of the 16 colors of the ANSI palette.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var namedColorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return "unknown"
}

type colorKind uint8

const (
	kindRGB colorKind = iota
	kindNamed
)

// Color is either an RGB triple or a named palette color. The zero value is
// RGB(0,0,0), which still renders as a black background on sinks that use
// color.
type Color struct {
	kind    colorKind
	r, g, b uint8
	named   NamedColor
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Named returns a palette color.
func Named(n NamedColor) Color {
	return Color{kind: kindNamed, named: n}
}

// IsNamed reports whether c is a palette color.
func (c Color) IsNamed() bool { return c.kind == kindNamed }

// Components returns the RGB triple. It is (0,0,0) for palette colors.
func (c Color) Components() (r, g, b uint8) { return c.r, c.g, c.b }

// Palette returns the palette color and whether c is one.
func (c Color) Palette() (NamedColor, bool) { return c.named, c.kind == kindNamed }

// Background returns the escape sequence that sets c as background color.
func (c Color) Background() string {
	switch c.kind {
	case kindNamed:
		return termenv.CSI + termenv.ANSIColor(c.named).Sequence(true) + "m"
	default:
		return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, termenv.Background, c.r, c.g, c.b)
	}
}

// Reset is the escape sequence that clears every color attribute.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// String renders c in a form accepted by ParseColor.
func (c Color) String() string {
	if c.kind == kindNamed {
		return c.named.String()
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// ParseColor accepts "#rrggbb", "r,g,b" and palette names such as "red" or
// "bright-blue". An empty string is the zero color.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Color{}, nil
	}

	if strings.HasPrefix(raw, "#") {
		hex := raw[1:]
		if len(hex) != 6 {
			return Color{}, invalidColor(s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, invalidColor(s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		if len(parts) != 3 {
			return Color{}, invalidColor(s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, invalidColor(s)
			}
			rgb[i] = uint8(v)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}

	name := strings.ToLower(strings.ReplaceAll(raw, "_", "-"))
	for i, n := range namedColorNames {
		if n == name {
			return Named(NamedColor(i)), nil
		}
	}
	return Color{}, invalidColor(s)
}

func invalidColor(s string) error {
	return errors.Newf(errors.ErrInvalidColor, "invalid color %q", s).WithDetail("color", s)
}
