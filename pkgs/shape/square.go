package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/keskad/square/pkgs/output"
)

var (
	ErrInvalidSizeType  = errors.New("size must be an integer")
	ErrInvalidSizeValue = errors.New("size must be >= 0")
	ErrInvalidPosition  = errors.New("position must be a tuple of 2 positive integers")
)

// MaxSize is the largest size whose area still fits into an int
var MaxSize = int(math.Sqrt(float64(math.MaxInt)))

// Position is the (x, y) offset of a square: x spaces before every row, y blank lines above it
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Square has a size and a position, both validated on every assignment.
// The zero value is a square of size 0 at (0, 0)
type Square struct {
	size     int
	position Position
}

// New creates a square, routing both values through the same setters used later on
func New(size int, position Position) (*Square, error) {
	sq := &Square{}
	if err := sq.SetSize(size); err != nil {
		return nil, err
	}
	if err := sq.SetPosition(position); err != nil {
		return nil, err
	}
	return sq, nil
}

// NewDefault returns a square of size 0 at (0, 0)
func NewDefault() *Square {
	return &Square{}
}

func (sq *Square) Size() int {
	return sq.size
}

func (sq *Square) SetSize(value int) error {
	if err := ValidateSize(value); err != nil {
		return err
	}
	sq.size = value
	return nil
}

// ValidateSize checks that value is between 0 and MaxSize
func ValidateSize(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSizeValue, value)
	}
	if value > MaxSize {
		return fmt.Errorf("%w: got %d, the area would overflow (max %d)", ErrInvalidSizeValue, value, MaxSize)
	}
	return nil
}

// SetSizeValue is SetSize for values of unknown type, e.g. decoded from a config file
func (sq *Square) SetSizeValue(value any) error {
	size, err := SizeFromValue(value)
	if err != nil {
		return err
	}
	sq.size = size
	return nil
}

func (sq *Square) Position() Position {
	return sq.position
}

// SetPosition replaces the whole position. On error the previous position is kept
func (sq *Square) SetPosition(value Position) error {
	if value.X < 0 || value.Y < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidPosition, value)
	}
	sq.position = value
	return nil
}

// SetPositionValue is SetPosition for values of unknown type, e.g. decoded from a config file
func (sq *Square) SetPositionValue(value any) error {
	pos, err := PositionFromValue(value)
	if err != nil {
		return err
	}
	sq.position = pos
	return nil
}

func (sq *Square) Area() int {
	return sq.size * sq.size
}

// eachLine calls emit for every rendered row, without line terminators.
// Rows are emitted one at a time, nothing is buffered here
func (sq *Square) eachLine(emit func(line string) error) error {
	if sq.size == 0 {
		return nil
	}

	for i := 0; i < sq.position.Y; i++ {
		if err := emit(""); err != nil {
			return err
		}
	}
	row := strings.Repeat(" ", sq.position.X) + strings.Repeat("#", sq.size)
	for i := 0; i < sq.size; i++ {
		if err := emit(row); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the square line by line. A square of size 0 prints a single empty line
func (sq *Square) Print(p output.Printer) error {
	if sq.size == 0 {
		_, err := p.Printf("\n")
		return err
	}
	return sq.eachLine(func(line string) error {
		_, err := p.Printf("%s\n", line)
		return err
	})
}

// String renders the same content as Print, without the trailing newline
func (sq *Square) String() string {
	var b strings.Builder
	first := true
	_ = sq.eachLine(func(line string) error {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(line)
		return nil
	})
	return b.String()
}
