// catalogcheck loads toolbar catalog files, reports load and validation
// errors, and prints how the actions are distributed between the bar and
// the overflow menu.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/llehouerou/actionbar/internal/catalog"
	"github.com/llehouerou/actionbar/internal/errmsg"
	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/toolbar"
)

func main() {
	fs := pflag.NewFlagSet("catalogcheck", pflag.ContinueOnError)
	lang := fs.StringP("lang", "l", "", "language to print titles in")
	builtin := fs.Bool("builtin", false, "check the built-in demo catalog")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	failed := false
	if *builtin {
		report(os.Stdout, "(builtin)", catalog.Builtin(), *lang)
	}
	for _, path := range fs.Args() {
		def, err := catalog.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpCatalogLoad, path, err))
			failed = true
			continue
		}
		report(os.Stdout, path, def, *lang)
	}
	if failed {
		os.Exit(1)
	}
}

// report prints the buckets of def with the menu closed, while hovering and
// with the menu open, followed by missing translations.
func report(w io.Writer, name string, def *catalog.Definition, lang string) {
	loc := locale.New(def.Resources, lang)
	fmt.Fprintf(w, "%s: %q, %d actions\n", name, def.Title, len(def.Actions.Flatten()))

	in := def.Inputs()
	states := []struct {
		label string
		hover bool
		open  bool
	}{
		{"idle", false, false},
		{"hover", true, false},
		{"menu open", true, true},
	}
	for _, st := range states {
		in.HoverActive = st.hover
		in.MenuOpen = st.open
		view := toolbar.Resolve(in)
		fmt.Fprintf(w, "  %-10s bar: %s | menu: %s\n", st.label, titles(loc, view.Primary), titles(loc, view.Secondary))
	}

	missing := def.Resources.MissingTitles(def.Actions)
	for _, l := range def.Resources.Languages() {
		if names := missing[l]; len(names) > 0 {
			fmt.Fprintf(w, "  warning: %s has no title for %s\n", l, strings.Join(names, ", "))
		}
	}
}

func titles(loc *locale.Localizer, items []toolbar.Item) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		t := loc.Title(it.Action)
		if it.Disabled {
			t += " (disabled)"
		}
		if it.Expandable() {
			t += " >"
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, ", ")
}
