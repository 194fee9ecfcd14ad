package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/keskad/square/pkgs/shape"
)

// ParseSize parses a square size given as text, e.g. "5"
func ParseSize(input string) (int, error) {
	raw := strings.TrimSpace(input)
	size, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is out of range", shape.ErrInvalidSizeValue, input)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", shape.ErrInvalidSizeType, input)
	}
	if err := shape.ValidateSize(size); err != nil {
		return 0, err
	}
	return size, nil
}

// ParsePosition parses a square position given as text. Accepted forms: "4,1", "(4, 1)", "4 1"
func ParsePosition(input string) (shape.Position, error) {
	line := strings.TrimSpace(input)
	if strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") {
		line = strings.TrimSpace(line[1 : len(line)-1])
	}

	var parts []string
	if strings.Contains(line, ",") {
		parts = strings.Split(line, ",")
	} else {
		parts = strings.Fields(line)
	}
	if len(parts) != 2 {
		return shape.Position{}, fmt.Errorf("%w: %q", shape.ErrInvalidPosition, input)
	}

	var coords [2]int
	for i, part := range parts {
		num, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || num < 0 {
			return shape.Position{}, fmt.Errorf("%w: %q", shape.ErrInvalidPosition, input)
		}
		coords[i] = num
	}
	return shape.Position{X: coords[0], Y: coords[1]}, nil
}
