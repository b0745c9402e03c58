package toolbar

// State is the menu state of a toolbar instance.
type State int

const (
	Closed State = iota
	OpenSecondary
	OpenSubmenu
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenSecondary:
		return "open(secondary)"
	case OpenSubmenu:
		return "open(submenu)"
	default:
		return "unknown"
	}
}

// Source identifies what triggered an activation.
type Source int

const (
	SourceButton   Source = iota // primary icon button
	SourceMenuItem               // click on an overflow menu entry
	SourceKeyboard               // enter on the highlighted menu entry
)

func (s Source) String() string {
	switch s {
	case SourceButton:
		return "button"
	case SourceMenuItem:
		return "menu"
	case SourceKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// Event is the single canonical outbound notification.
type Event struct {
	Name string
}

// OutcomeKind tells the caller what an activation did.
type OutcomeKind int

const (
	Ignored    OutcomeKind = iota // disabled, unknown, or a dispatch is pending
	Expanded                      // a submenu was opened
	Dispatched                    // Event is set and must be emitted
	Deferred                      // press feedback running; call Complete afterwards
)

// Outcome is the result of Toolbar.Activate.
type Outcome struct {
	Kind  OutcomeKind
	Event Event
}

// Option configures a Toolbar.
type Option func(*Toolbar)

// WithFeedback defers primary button dispatches until Complete is called.
func WithFeedback(enabled bool) Option {
	return func(t *Toolbar) { t.feedback = enabled }
}

// WithTitle sets the heading shown on the secondary menu.
func WithTitle(title string) Option {
	return func(t *Toolbar) { t.title = title }
}

// Toolbar owns the inputs of one toolbar instance, the view derived from
// them, the menu state and the dispatch gate. It is not safe for concurrent
// use; it is meant to be driven from a single UI event loop.
type Toolbar struct {
	in    Inputs
	view  View
	title string

	feedback bool

	opened   bool
	submenu  string
	selected string

	pending    string
	hasPending bool
}

// New creates a toolbar and derives its initial view.
func New(in Inputs, opts ...Option) *Toolbar {
	t := &Toolbar{}
	for _, opt := range opts {
		opt(t)
	}
	t.in = in
	t.in.MenuOpen = false
	t.recompute()
	return t
}

// SetInputs replaces all host inputs. Hover state and menu state stay owned
// by the toolbar and are not taken from in.
func (t *Toolbar) SetInputs(in Inputs) {
	in.HoverActive = t.in.HoverActive
	t.in = in
	t.recompute()
}

// Inputs returns the current inputs.
func (t *Toolbar) Inputs() Inputs {
	return t.in
}

func (t *Toolbar) SetActions(actions Catalog) {
	t.in.Actions = actions
	t.recompute()
}

func (t *Toolbar) SetHidden(names []string) {
	t.in.Hidden = names
	t.recompute()
}

func (t *Toolbar) SetDisabled(d Disabled) {
	t.in.Disabled = d
	t.recompute()
}

func (t *Toolbar) SetPrimary(names []string) {
	t.in.Primary = names
	t.recompute()
}

func (t *Toolbar) SetSemiPrimary(names []string) {
	t.in.SemiPrimary = names
	t.recompute()
}

// SetHover records whether the pointer is over the toolbar's host.
func (t *Toolbar) SetHover(active bool) {
	if t.in.HoverActive == active {
		return
	}
	t.in.HoverActive = active
	t.recompute()
}

// SetFeedback enables or disables deferred dispatch of button activations.
// A dispatch that is already pending still waits for Complete.
func (t *Toolbar) SetFeedback(enabled bool) {
	t.feedback = enabled
}

// SetTitle sets the secondary menu heading.
func (t *Toolbar) SetTitle(title string) {
	t.title = title
}

// View returns the current primary and secondary buckets.
func (t *Toolbar) View() View {
	return t.view
}

// State returns the menu state.
func (t *Toolbar) State() State {
	switch {
	case !t.opened:
		return Closed
	case t.submenu != "":
		return OpenSubmenu
	default:
		return OpenSecondary
	}
}

// Opened reports whether the overflow menu is open.
func (t *Toolbar) Opened() bool {
	return t.opened
}

// OpenSubmenu returns the name of the action whose submenu is open, or "".
func (t *Toolbar) OpenSubmenu() string {
	return t.submenu
}

// Pending returns the action waiting for press feedback to finish.
func (t *Toolbar) Pending() (string, bool) {
	return t.pending, t.hasPending
}

// Open opens the overflow menu on the secondary list.
func (t *Toolbar) Open() {
	if t.opened {
		return
	}
	t.opened = true
	t.submenu = ""
	t.recompute()
}

// Close closes the menu and drops the open submenu and any selection.
func (t *Toolbar) Close() {
	t.submenu = ""
	t.selected = ""
	if !t.opened {
		return
	}
	t.opened = false
	t.recompute()
}

// SetOpened opens or closes the menu on behalf of the host.
func (t *Toolbar) SetOpened(opened bool) {
	if opened {
		t.Open()
	} else {
		t.Close()
	}
}

// Back leaves an open submenu and returns to the secondary list. It reports
// whether a submenu was open.
func (t *Toolbar) Back() bool {
	if t.submenu == "" {
		return false
	}
	t.submenu = ""
	t.selected = ""
	return true
}

// Select records the transient selection of the overflow menu.
func (t *Toolbar) Select(name string) {
	t.selected = name
}

// Selected returns the transient selection, "" when nothing is selected.
func (t *Toolbar) Selected() string {
	return t.selected
}

// MenuActions returns the entries the overflow menu shows: the secondary
// bucket, or the sub-actions of the open submenu. A submenu whose action no
// longer exists yields an empty list.
func (t *Toolbar) MenuActions() []Item {
	if t.submenu == "" {
		return t.view.Secondary
	}
	a, ok := t.findExpandable(t.submenu)
	if !ok {
		return []Item{}
	}
	return annotate(a.SubActions, t.in.Disabled)
}

// MenuHeading returns the title for the current menu level.
func (t *Toolbar) MenuHeading() string {
	if t.submenu == "" {
		return t.title
	}
	a, ok := t.findExpandable(t.submenu)
	if !ok {
		return ""
	}
	return a.SubActionTitle
}

// Activate handles a user activation of name. Disabled actions, names that
// are neither in a bucket nor in the open submenu, and activations arriving
// while a deferred dispatch is pending are ignored. Expandable actions open their submenu.
// Everything else dispatches, closing the menu.
func (t *Toolbar) Activate(name string, src Source) Outcome {
	if t.hasPending || t.in.Disabled.Has(name) {
		return Outcome{Kind: Ignored}
	}

	a, ok := t.reachable(name)
	if !ok {
		return Outcome{Kind: Ignored}
	}

	if a.Expandable() {
		t.submenu = a.Name
		t.selected = ""
		if !t.opened {
			t.opened = true
			t.recompute()
		}
		return Outcome{Kind: Expanded}
	}

	if src == SourceButton && t.feedback {
		t.pending = a.Name
		t.hasPending = true
		return Outcome{Kind: Deferred}
	}

	t.Close()
	return Outcome{Kind: Dispatched, Event: Event{Name: a.Name}}
}

// Complete finishes a deferred dispatch and returns its event.
func (t *Toolbar) Complete() (Event, bool) {
	if !t.hasPending {
		return Event{}, false
	}
	name := t.pending
	t.pending = ""
	t.hasPending = false
	t.Close()
	return Event{Name: name}, true
}

func (t *Toolbar) recompute() {
	t.in.MenuOpen = t.opened
	t.view = Resolve(t.in)

	// A submenu whose backing action went away closes the menu instead of
	// leaving an empty dangling list.
	if t.submenu != "" {
		if _, ok := t.findExpandable(t.submenu); !ok {
			t.submenu = ""
			t.selected = ""
			if t.opened {
				t.opened = false
				t.in.MenuOpen = false
				t.view = Resolve(t.in)
			}
		}
	}
}

// reachable finds name among the actions the user can currently see:
// primary buttons always, secondary actions and the submenu only while the
// menu is open.
func (t *Toolbar) reachable(name string) (Action, bool) {
	candidates := [][]Item{t.view.Primary}
	if t.opened {
		candidates = append(candidates, t.view.Secondary)
		if t.submenu != "" {
			candidates = append(candidates, t.MenuActions())
		}
	}
	for _, bucket := range candidates {
		for _, it := range bucket {
			if it.Name == name {
				return it.Action, true
			}
		}
	}
	return Action{}, false
}

func (t *Toolbar) findExpandable(name string) (Action, bool) {
	var find func([]Action) (Action, bool)
	find = func(actions []Action) (Action, bool) {
		for _, a := range actions {
			if !a.Expandable() {
				continue
			}
			if a.Name == name {
				return a, true
			}
			if found, ok := find(a.SubActions); ok {
				return found, true
			}
		}
		return Action{}, false
	}

	for _, bucket := range [][]Item{t.view.Primary, t.view.Secondary} {
		for _, it := range bucket {
			if !it.Expandable() {
				continue
			}
			if it.Name == name {
				return it.Action, true
			}
			if found, ok := find(it.SubActions); ok {
				return found, true
			}
		}
	}
	return Action{}, false
}
