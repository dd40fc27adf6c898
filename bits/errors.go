package bits

import "fmt"

// RangeError indicates construction of a value outside its type's domain.
// It is returned by conversion functions only; in-place increment and
// decrement always wrap and never produce this error.
type RangeError struct {
	Type  string
	Value int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %d out of range [0,%d]", e.Type, e.Value, e.Max)
}

// PositionError indicates a bit position outside a container's width.
type PositionError struct {
	Type     string
	Position int
	Width    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s bit position %d out of range [0,%d)", e.Type, e.Position, e.Width)
}
