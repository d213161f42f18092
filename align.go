package linear

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlignment is returned when an alignment name cannot be parsed.
var ErrUnknownAlignment = errors.New("unknown alignment")

// HorizontalAlignment positions a child along the x axis.
type HorizontalAlignment uint8

// VerticalAlignment positions a child along the y axis.
type VerticalAlignment uint8

const (
	Left HorizontalAlignment = iota
	Right
	HorizontalCenter
)

const (
	Top VerticalAlignment = iota
	Bottom
	VerticalCenter
)

// Align returns a pointer to a copy of a. The layouts treat a nil alignment
// as unset, which keeps the children at their natural offset on that axis.
func Align[T HorizontalAlignment | VerticalAlignment](a T) *T {
	return &a
}

func (a HorizontalAlignment) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case HorizontalCenter:
		return "center"
	default:
		return fmt.Sprintf("HorizontalAlignment(%d)", uint8(a))
	}
}

func (a VerticalAlignment) String() string {
	switch a {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case VerticalCenter:
		return "center"
	default:
		return fmt.Sprintf("VerticalAlignment(%d)", uint8(a))
	}
}

// ParseHorizontalAlignment converts a case insensitive name (left, right, center)
// into a HorizontalAlignment.
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "center", "centre":
		return HorizontalCenter, nil
	}
	return 0, fmt.Errorf("%w: horizontal %q", ErrUnknownAlignment, s)
}

// ParseVerticalAlignment converts a case insensitive name (top, bottom, center)
// into a VerticalAlignment.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "center", "centre":
		return VerticalCenter, nil
	}
	return 0, fmt.Errorf("%w: vertical %q", ErrUnknownAlignment, s)
}

func (a HorizontalAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *HorizontalAlignment) UnmarshalText(text []byte) error {
	v, err := ParseHorizontalAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a VerticalAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *VerticalAlignment) UnmarshalText(text []byte) error {
	v, err := ParseVerticalAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
