package grid

import (
	"fmt"
	"strings"
)

// ParseDigits builds a height grid from a block of equal-length lines of
// decimal digits. A single trailing newline is accepted; any other empty
// line, a width mismatch against the first line, or a non-digit byte fails
// with KindMalformedInput naming the first offending line.
func ParseDigits(input string) (*Grid[uint8], error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, malformed(0, 0, "", "expected at least one line")
	}
	lines := strings.Split(input, "\n")

	width := len(strings.TrimSuffix(lines[0], "\r"))
	if width == 0 {
		return nil, malformed(1, 0, "", "line is empty")
	}

	g, err := New[uint8](width, len(lines))
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) == 0 {
			return nil, malformed(y+1, 0, "", "line is empty")
		}
		if len(line) != width {
			return nil, malformed(y+1, 0, line, fmt.Sprintf("expected a width of exactly %d, got %d", width, len(line)))
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, malformed(y+1, x+1, string(c), "expected a decimal digit")
			}
			g.cells[y*width+x] = c - '0'
		}
	}
	return g, nil
}
