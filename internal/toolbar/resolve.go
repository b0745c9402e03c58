package toolbar

// Inputs is everything the host supplies to derive a toolbar view.
type Inputs struct {
	Actions     Catalog
	Hidden      []string
	Disabled    Disabled
	Primary     []string
	SemiPrimary []string

	// HoverActive promotes semi-primary actions while true.
	HoverActive bool
	// MenuOpen suppresses semi-primary promotion so that the content of an
	// open menu does not shift under the user.
	MenuOpen bool
}

// Item is a render-ready action annotated with its disabled state.
type Item struct {
	Action
	Disabled       bool
	DisabledReason string
}

// View holds the derived primary and secondary buckets.
type View struct {
	Primary   []Item
	Secondary []Item
}

// Names returns the action names of items, in order.
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// Normalize removes hidden actions at every depth of the tree. Relative order
// is preserved and expandable actions are replaced by copies carrying their
// filtered sub-list; the input slice is never modified. Unknown hidden names
// have no effect.
func Normalize(actions []Action, hidden []string) []Action {
	if len(actions) == 0 {
		return []Action{}
	}
	return normalize(actions, newNameSet(hidden))
}

func normalize(actions []Action, hidden nameSet) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if hidden.has(a.Name) {
			continue
		}
		if a.SubActions != nil {
			a.SubActions = normalize(a.SubActions, hidden)
		}
		out = append(out, a)
	}
	return out
}

// Partition splits visible actions into primary and secondary buckets, both
// in catalog order. With promote set, semi-primary actions found in the
// secondary bucket move in front of the static primary actions.
func Partition(visible []Action, primary, semiPrimary []string, promote bool) (prim, sec []Action) {
	isPrimary := newNameSet(primary)

	prim = make([]Action, 0, len(visible))
	sec = make([]Action, 0, len(visible))
	for _, a := range visible {
		if isPrimary.has(a.Name) {
			prim = append(prim, a)
		} else {
			sec = append(sec, a)
		}
	}

	if !promote || len(semiPrimary) == 0 {
		return prim, sec
	}

	isSemi := newNameSet(semiPrimary)
	promoted := make([]Action, 0, len(semiPrimary))
	rest := make([]Action, 0, len(sec))
	for _, a := range sec {
		if isSemi.has(a.Name) {
			promoted = append(promoted, a)
		} else {
			rest = append(rest, a)
		}
	}
	return append(promoted, prim...), rest
}

// Resolve derives the toolbar view from in. Hidden actions are removed first,
// then the primary/secondary split is made, then disabled state is attached.
// It is a pure function of its input.
func Resolve(in Inputs) View {
	visible := Normalize(in.Actions, in.Hidden)
	if len(visible) == 0 {
		return View{Primary: []Item{}, Secondary: []Item{}}
	}

	prim, sec := Partition(visible, in.Primary, in.SemiPrimary, in.HoverActive && !in.MenuOpen)
	return View{
		Primary:   annotate(prim, in.Disabled),
		Secondary: annotate(sec, in.Disabled),
	}
}

func annotate(actions []Action, disabled Disabled) []Item {
	items := make([]Item, len(actions))
	for i, a := range actions {
		reason, off := disabled.Reason(a.Name)
		items[i] = Item{Action: a, Disabled: off, DisabledReason: reason}
	}
	return items
}
