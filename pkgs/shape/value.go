package shape

import (
	"fmt"
	"math"
)

// SizeFromValue validates a size of unknown type. Only integer kinds are accepted,
// booleans are not treated as integers
func SizeFromValue(value any) (int, error) {
	size, ok := integerValue(value)
	if !ok {
		return 0, fmt.Errorf("%w: got %T", ErrInvalidSizeType, value)
	}
	if size < 0 || size > math.MaxInt {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSizeValue, value)
	}
	if err := ValidateSize(int(size)); err != nil {
		return 0, err
	}
	return int(size), nil
}

// PositionFromValue validates a position of unknown type. It must be a sequence of exactly
// two non-negative integers. All failures are reported as ErrInvalidPosition
func PositionFromValue(value any) (Position, error) {
	var elems []any

	switch v := value.(type) {
	case Position:
		elems = []any{v.X, v.Y}
	case *Position:
		if v == nil {
			return Position{}, fmt.Errorf("%w: got nil", ErrInvalidPosition)
		}
		elems = []any{v.X, v.Y}
	case [2]int:
		elems = []any{v[0], v[1]}
	case []int:
		for _, e := range v {
			elems = append(elems, e)
		}
	case []any:
		elems = v
	default:
		return Position{}, fmt.Errorf("%w: got %T", ErrInvalidPosition, value)
	}

	if len(elems) != 2 {
		return Position{}, fmt.Errorf("%w: got %d elements", ErrInvalidPosition, len(elems))
	}

	var coords [2]int
	for i, e := range elems {
		n, ok := integerValue(e)
		if !ok || n < 0 || n > math.MaxInt {
			return Position{}, fmt.Errorf("%w: got %v", ErrInvalidPosition, value)
		}
		coords[i] = int(n)
	}
	return Position{X: coords[0], Y: coords[1]}, nil
}

// integerValue widens any Go integer kind. Unsigned values that do not fit into int64
// come back as -1 so the range checks of the callers reject them
func integerValue(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return clampUnsigned(uint64(v)), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return clampUnsigned(v), true
	default:
		return 0, false
	}
}

func clampUnsigned(v uint64) int64 {
	if v > math.MaxInt64 {
		return -1
	}
	return int64(v)
}
