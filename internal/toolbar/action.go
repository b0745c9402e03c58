// Package toolbar derives the renderable action set of an action toolbar and
// normalizes user activations into a single outbound event.
//
// Nothing in this package renders or depends on a UI framework. Every derived
// view is recomputed from the current inputs and returned as a fresh slice, so
// callers may hold on to a View while the inputs keep changing.
package toolbar

import (
	"errors"
	"fmt"
)

// Action is a named, user-triggerable operation with display metadata.
type Action struct {
	Name    string `koanf:"name" yaml:"name"`
	Label   string `koanf:"label" yaml:"label"`
	Icon    string `koanf:"icon" yaml:"icon"`
	Tooltip string `koanf:"tooltip" yaml:"tooltip"`
	// IconColor is either a raw colour ("#ff5555", "212") or a themed token
	// starting with "--" ("--primary").
	IconColor string `koanf:"icon_color" yaml:"icon_color"`

	// A non-empty SubActions list turns the action into an expandable one:
	// activating it opens a nested menu instead of dispatching.
	SubActions     []Action `koanf:"sub_actions" yaml:"sub_actions"`
	SubActionTitle string   `koanf:"sub_action_title" yaml:"sub_action_title"`
}

// Expandable reports whether the action opens a nested menu. An action
// whose sub-actions are all hidden, or declared empty, dispatches instead.
func (a Action) Expandable() bool {
	return len(a.SubActions) > 0
}

// Catalog is an ordered sequence of actions as supplied by the host.
type Catalog []Action

// Flatten returns every action of the tree, parents before their children.
func (c Catalog) Flatten() []Action {
	var out []Action
	var walk func([]Action)
	walk = func(actions []Action) {
		for _, a := range actions {
			out = append(out, a)
			if a.Expandable() {
				walk(a.SubActions)
			}
		}
	}
	walk(c)
	return out
}

// Find looks an action up by name anywhere in the tree.
func (c Catalog) Find(name string) (Action, bool) {
	for _, a := range c.Flatten() {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// ErrEmptyName is reported by Validate for an action without a name.
var ErrEmptyName = errors.New("action has no name")

// Validate checks that every action has a name and that names are unique
// across the flattened tree. The resolver tolerates invalid catalogs; this is
// meant for loaders that want to reject bad definitions early.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)
	var errs []error
	for i, a := range c.Flatten() {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("action #%d: %w", i, ErrEmptyName))
			continue
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("duplicate action name %q", a.Name))
		}
		seen[a.Name] = true
	}
	return errors.Join(errs...)
}

// Disabled maps an action name to the reason it is disabled. The presence of
// a key disables the action, even when the reason is empty.
type Disabled map[string]string

// Has reports whether name is disabled.
func (d Disabled) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Reason returns the disabled reason for name and whether it is disabled.
func (d Disabled) Reason(name string) (string, bool) {
	r, ok := d[name]
	return r, ok
}

// DisabledFromNames converts the legacy name-list form into a Disabled map.
// reason may be nil, in which case every reason is empty.
func DisabledFromNames(names []string, reason func(name string) string) Disabled {
	d := make(Disabled, len(names))
	for _, n := range names {
		if reason != nil {
			d[n] = reason(n)
		} else {
			d[n] = ""
		}
	}
	return d
}
