package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// ButtonKind distinguishes the standard mouse buttons from auxiliary ones.
type ButtonKind uint8

const (
	ButtonLeft ButtonKind = iota
	ButtonMiddle
	ButtonRight
	ButtonExtra
)

// Button is a logical mouse button. For auxiliary buttons, Index is the
// zero-based index of the extra button; it is ignored otherwise.
type Button struct {
	Kind  ButtonKind
	Index uint8
}

var (
	Left   = Button{Kind: ButtonLeft}
	Middle = Button{Kind: ButtonMiddle}
	Right  = Button{Kind: ButtonRight}
)

// Extra returns the auxiliary button with index n.
func Extra(n uint8) Button {
	return Button{Kind: ButtonExtra, Index: n}
}

func (b Button) String() string {
	switch b.Kind {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonExtra:
		return "extra" + strconv.Itoa(int(b.Index))
	default:
		return fmt.Sprintf("Button(%d)", b.Kind)
	}
}

// ParseButton resolves "left", "middle", "right" or "extraN".
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "left":
		return Left, nil
	case "middle":
		return Middle, nil
	case "right":
		return Right, nil
	}
	if rest, ok := strings.CutPrefix(name, "extra"); ok && rest != "" {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return Button{}, fmt.Errorf("invalid extra button index %q: %w", rest, err)
		}
		return Extra(uint8(n)), nil
	}
	return Button{}, fmt.Errorf("unknown button %q", name)
}
