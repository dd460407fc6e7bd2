package grid

import (
	"fmt"
	"strings"
)

// Heading is the direction the robot travels in.
type Heading int

const (
	North Heading = iota
	South
	East
	West
)

// Headings lists every heading in declaration order.
var Headings = [4]Heading{North, South, East, West}

var headingInfo = [4]struct {
	dRow, dCol int
	symbol     byte
	glyph      byte
	name       string
}{
	North: {-1, 0, '^', 'N', "north"},
	South: {1, 0, 'v', 'S', "south"},
	East:  {0, 1, '>', 'E', "east"},
	West:  {0, -1, '<', 'W', "west"},
}

func (h Heading) valid() bool { return h >= North && h <= West }

// Delta returns the unit row/column offset of one step.
func (h Heading) Delta() (dRow, dCol int) {
	if !h.valid() {
		return 0, 0
	}
	return headingInfo[h].dRow, headingInfo[h].dCol
}

// Symbol returns the deflector character for h.
func (h Heading) Symbol() byte {
	if !h.valid() {
		return '?'
	}
	return headingInfo[h].symbol
}

// Glyph returns the letter used to draw the robot facing h.
func (h Heading) Glyph() byte {
	if !h.valid() {
		return '?'
	}
	return headingInfo[h].glyph
}

func (h Heading) String() string {
	if !h.valid() {
		return fmt.Sprintf("heading(%d)", int(h))
	}
	return headingInfo[h].name
}

// Move returns c shifted one step in direction h.
func (h Heading) Move(c Coord) Coord {
	dr, dc := h.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// ParseHeading accepts a deflector symbol (^ v > <) or a glyph (N S E W).
func ParseHeading(symbol byte) (Heading, error) {
	for _, h := range Headings {
		if headingInfo[h].symbol == symbol || headingInfo[h].glyph == symbol {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, symbol)
}

// ParseHeadingName also accepts the lowercase names north, south, east, west.
func ParseHeadingName(s string) (Heading, error) {
	if len(s) == 1 {
		return ParseHeading(s[0])
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for _, h := range Headings {
		if headingInfo[h].name == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// HeadingForCell reports the heading a deflector cell forces.
func HeadingForCell(cell byte) (Heading, bool) {
	for _, h := range Headings {
		if headingInfo[h].symbol == cell {
			return h, true
		}
	}
	return 0, false
}
