package elastic

import "fmt"

// VerticalAlignment positions a decoration's content view inside the
// revealed height. It affects content placement only; the engine's
// height state machine ignores it.
type VerticalAlignment int

const (
	// AlignTop places the content at the top of the decoration.
	AlignTop VerticalAlignment = iota
	// AlignCenter centers the content in the decoration.
	AlignCenter
	// AlignBottom places the content at the bottom of the decoration.
	AlignBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignCenter:
		return "center"
	case AlignBottom:
		return "bottom"
	default:
		return fmt.Sprintf("VerticalAlignment(%d)", int(a))
	}
}
