package keys

import (
	"fmt"
	"strings"
)

// Modifiers is a set of modifier keys held while a key is sent.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// modifierOrder is the order in which modifiers are pressed. They are
// released in reverse.
var modifierOrder = []struct {
	mod  Modifiers
	key  Key
	name string
}{
	{Control, LeftControl, "ctrl"},
	{Alt, LeftAlt, "alt"},
	{Shift, LeftShift, "shift"},
	{Meta, LeftMeta, "meta"},
}

// Keys returns the modifier keys of m in press order.
func (m Modifiers) Keys() []Key {
	var out []Key
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			out = append(out, o.key)
		}
	}
	return out
}

func (m Modifiers) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseModifiers parses a "+"-separated list such as "ctrl+shift".
// An empty string yields no modifiers.
func ParseModifiers(s string) (Modifiers, error) {
	var m Modifiers
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			m |= Shift
		case "ctrl", "control":
			m |= Control
		case "alt":
			m |= Alt
		case "meta", "super", "win":
			m |= Meta
		default:
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}
