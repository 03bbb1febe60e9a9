package input

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/termcanvas/terminal"
)

// Bindings maps action names to the keys that trigger them
type Bindings map[string][]terminal.KeyEvent

// ParseBindings resolves key names per action, e.g. {"quit": {"q", "ctrl+c"}}
// An action with an empty list, or bound to "none", is kept unbound so a merge can remove it
func ParseBindings(raw map[string][]string) (Bindings, error) {
	b := make(Bindings, len(raw))
	for action, names := range raw {
		action = strings.ToLower(strings.TrimSpace(action))
		if action == "" {
			return nil, fmt.Errorf("binding with empty action name")
		}

		keys := make([]terminal.KeyEvent, 0, len(names))
		for _, name := range names {
			if strings.EqualFold(name, "none") {
				keys = keys[:0]
				break
			}
			k, err := terminal.ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", action, err)
			}
			if !contains(keys, k) {
				keys = append(keys, k)
			}
		}
		b[action] = keys
	}
	return b, nil
}

// MergeBindings returns a copy of base with every action in override replaced
// Override actions with no keys are removed from the result
func MergeBindings(base, override Bindings) Bindings {
	out := make(Bindings, len(base)+len(override))
	for action, keys := range base {
		out[action] = slices.Clone(keys)
	}
	for action, keys := range override {
		if len(keys) == 0 {
			delete(out, action)
			continue
		}
		out[action] = slices.Clone(keys)
	}
	return out
}

// Keys returns the keys bound to action
func (b Bindings) Keys(action string) []terminal.KeyEvent {
	return b[action]
}

// Action returns the first action, in name order, bound to k
func (b Bindings) Action(k terminal.KeyEvent) (string, bool) {
	names := make([]string, 0, len(b))
	for action, keys := range b {
		if contains(keys, k) {
			names = append(names, action)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	slices.Sort(names)
	return names[0], true
}

// ActionPressed reports whether any key bound to action went down this frame
func (s *KeyState) ActionPressed(b Bindings, action string) bool {
	return slices.ContainsFunc(b[action], s.Pressed)
}

// ActionHeld reports whether any key bound to action is down this frame
func (s *KeyState) ActionHeld(b Bindings, action string) bool {
	return slices.ContainsFunc(b[action], s.Held)
}

// ActionReleased reports whether any key bound to action was released this frame
func (s *KeyState) ActionReleased(b Bindings, action string) bool {
	return slices.ContainsFunc(b[action], s.Released)
}
