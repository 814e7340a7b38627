package lightsout

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses a cell by row (Y) and column (X).
type Coord struct {
	Y, X int
}

// String encodes the coordinate as "y-x".
func (c Coord) String() string {
	return strconv.Itoa(c.Y) + "-" + strconv.Itoa(c.X)
}

// ParseCoord decodes "y-x", "y x" or "y,x". Negative components are allowed
// so callers can address off-board cells.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	var ys, xs string
	switch len(fields) {
	case 2:
		ys, xs = fields[0], fields[1]
	case 1:
		if len(s) < 3 {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		// The first character may be a sign, so the separator is searched after it.
		idx := strings.IndexByte(s[1:], '-')
		if idx < 0 {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		ys, xs = s[:idx+1], s[idx+2:]
	default:
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: row %q", ErrInvalidCoord, ys)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: column %q", ErrInvalidCoord, xs)
	}
	return Coord{Y: y, X: x}, nil
}

// flipOffsets lists the center followed by its four orthogonal neighbors.
var flipOffsets = [...]Coord{
	{Y: 0, X: 0},
	{Y: 1, X: 0},
	{Y: -1, X: 0},
	{Y: 0, X: -1},
	{Y: 0, X: 1},
}
