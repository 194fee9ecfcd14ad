package syntax

import (
	"errors"
	"strconv"
	"testing"

	"github.com/keskad/square/pkgs/shape"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  error
	}{
		{name: "zero", input: "0", expected: 0},
		{name: "plain number", input: "5", expected: 5},
		{name: "handle whitespace", input: "  12 ", expected: 12},
		{name: "negative", input: "-1", wantErr: shape.ErrInvalidSizeValue},
		{name: "large negative", input: "-99999999", wantErr: shape.ErrInvalidSizeValue},
		{name: "largest size", input: strconv.Itoa(shape.MaxSize), expected: shape.MaxSize},
		{name: "area would overflow", input: strconv.Itoa(shape.MaxSize + 1), wantErr: shape.ErrInvalidSizeValue},
		{name: "beyond int range", input: "99999999999999999999", wantErr: shape.ErrInvalidSizeValue},
		{name: "float", input: "3.5", wantErr: shape.ErrInvalidSizeType},
		{name: "word", input: "five", wantErr: shape.ErrInvalidSizeType},
		{name: "boolean", input: "true", wantErr: shape.ErrInvalidSizeType},
		{name: "empty", input: "", wantErr: shape.ErrInvalidSizeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && result != tt.expected {
				t.Errorf("ParseSize() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected shape.Position
		wantErr  bool
	}{
		{name: "comma separated", input: "4,1", expected: shape.Position{X: 4, Y: 1}},
		{name: "tuple form", input: "(4, 1)", expected: shape.Position{X: 4, Y: 1}},
		{name: "space separated", input: "0 7", expected: shape.Position{X: 0, Y: 7}},
		{name: "handle whitespace", input: "  2 ,  3 ", expected: shape.Position{X: 2, Y: 3}},
		{name: "origin", input: "0,0", expected: shape.Position{}},
		{name: "three elements", input: "1,2,3", wantErr: true},
		{name: "single integer", input: "4", wantErr: true},
		{name: "negative x", input: "-1,2", wantErr: true},
		{name: "negative y", input: "(1, -2)", wantErr: true},
		{name: "non-integer element", input: "1.5,2", wantErr: true},
		{name: "word element", input: "a,b", wantErr: true},
		{name: "empty element", input: "1,", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePosition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePosition() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, shape.ErrInvalidPosition) {
				t.Errorf("ParsePosition() error = %v, want ErrInvalidPosition", err)
				return
			}
			if !tt.wantErr && result != tt.expected {
				t.Errorf("ParsePosition() = %v, want %v", result, tt.expected)
			}
		})
	}
}
