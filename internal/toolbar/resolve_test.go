package toolbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(name string) Action {
	return Action{Name: name, Label: name, Icon: name}
}

func actionNames(actions []Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Name
	}
	return names
}

func crudCatalog() Catalog {
	return Catalog{leaf("OPEN"), leaf("ADD"), leaf("EDIT"), leaf("DELETE"), leaf("DOWNLOAD")}
}

func nestedCatalog() Catalog {
	return Catalog{
		leaf("OPEN"),
		{
			Name:           "ADD",
			SubActionTitle: "Add where?",
			SubActions:     []Action{leaf("ADD_TOP"), leaf("ADD_BOTTOM")},
		},
		leaf("EDIT"),
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		actions Catalog
		hidden  []string
		want    []string
	}{
		{"nil catalog", nil, []string{"X"}, []string{}},
		{"no hidden", crudCatalog(), nil, []string{"OPEN", "ADD", "EDIT", "DELETE", "DOWNLOAD"}},
		{"hide one", crudCatalog(), []string{"DELETE"}, []string{"OPEN", "ADD", "EDIT", "DOWNLOAD"}},
		{"hide first and last", crudCatalog(), []string{"OPEN", "DOWNLOAD"}, []string{"ADD", "EDIT", "DELETE"}},
		{"unknown hidden name", crudCatalog(), []string{"NOPE"}, []string{"OPEN", "ADD", "EDIT", "DELETE", "DOWNLOAD"}},
		{"hide everything", crudCatalog(), []string{"OPEN", "ADD", "EDIT", "DELETE", "DOWNLOAD"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actionNames(Normalize(tt.actions, tt.hidden)))
		})
	}
}

func TestNormalize_FiltersSubActions(t *testing.T) {
	catalog := nestedCatalog()

	got := Normalize(catalog, []string{"ADD_TOP"})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"ADD_BOTTOM"}, actionNames(got[1].SubActions))
	assert.Equal(t, "Add where?", got[1].SubActionTitle)
	// source catalog untouched
	assert.Equal(t, []string{"ADD_TOP", "ADD_BOTTOM"}, actionNames(catalog[1].SubActions))
}

func TestNormalize_HidingParentDropsSubtree(t *testing.T) {
	got := Normalize(nestedCatalog(), []string{"ADD"})
	assert.Equal(t, []string{"OPEN", "EDIT"}, actionNames(got))
}

func TestNormalize_AllChildrenHiddenIsNoLongerExpandable(t *testing.T) {
	got := Normalize(nestedCatalog(), []string{"ADD_TOP", "ADD_BOTTOM"})

	require.Len(t, got, 3)
	assert.Empty(t, got[1].SubActions)
	assert.False(t, got[1].Expandable(), "an action with no visible children dispatches")
}

func TestNormalize_ResultDoesNotAliasCatalog(t *testing.T) {
	catalog := nestedCatalog()

	got := Normalize(catalog, nil)
	got[0].Name = "CHANGED"
	got[1].SubActions[0].Name = "CHANGED"

	assert.Equal(t, "OPEN", catalog[0].Name)
	assert.Equal(t, "ADD_TOP", catalog[1].SubActions[0].Name)
}

func TestPartition_Default(t *testing.T) {
	visible := Normalize(crudCatalog(), nil)

	prim, sec := Partition(visible, []string{"DELETE", "ADD", "MISSING"}, nil, false)

	assert.Equal(t, []string{"ADD", "DELETE"}, actionNames(prim), "catalog order, not primary-list order")
	assert.Equal(t, []string{"OPEN", "EDIT", "DOWNLOAD"}, actionNames(sec))
}

func TestPartition_CoversVisibleExactlyOnce(t *testing.T) {
	visible := Normalize(crudCatalog(), []string{"EDIT"})
	primaries := [][]string{nil, {"OPEN"}, {"OPEN", "ADD", "DELETE", "DOWNLOAD"}, {"EDIT"}}

	for _, p := range primaries {
		prim, sec := Partition(visible, p, nil, false)

		seen := map[string]int{}
		for _, a := range append(append([]Action{}, prim...), sec...) {
			seen[a.Name]++
		}
		assert.Len(t, seen, len(visible))
		for name, n := range seen {
			assert.Equalf(t, 1, n, "%s appears %d times for primary %v", name, n, p)
		}
	}
}

func TestPartition_SemiPrimary(t *testing.T) {
	visible := []Action{leaf("EDIT"), leaf("DELETE"), leaf("ARCHIVE")}

	prim, sec := Partition(visible, []string{"EDIT"}, []string{"DELETE"}, false)
	assert.Equal(t, []string{"EDIT"}, actionNames(prim))
	assert.Equal(t, []string{"DELETE", "ARCHIVE"}, actionNames(sec))

	prim, sec = Partition(visible, []string{"EDIT"}, []string{"DELETE"}, true)
	assert.Equal(t, []string{"DELETE", "EDIT"}, actionNames(prim))
	assert.Equal(t, []string{"ARCHIVE"}, actionNames(sec))
}

func TestPartition_SemiPrimaryAlreadyPrimary(t *testing.T) {
	visible := []Action{leaf("EDIT"), leaf("DELETE")}

	prim, sec := Partition(visible, []string{"EDIT"}, []string{"EDIT"}, true)

	assert.Equal(t, []string{"EDIT"}, actionNames(prim))
	assert.Equal(t, []string{"DELETE"}, actionNames(sec))
}

func TestResolve_Scenario1HiddenDelete(t *testing.T) {
	v := Resolve(Inputs{Actions: crudCatalog(), Hidden: []string{"DELETE"}})

	assert.Empty(t, v.Primary)
	assert.Equal(t, []string{"OPEN", "ADD", "EDIT", "DOWNLOAD"}, Names(v.Secondary))
}

func TestResolve_EmptyCatalog(t *testing.T) {
	v := Resolve(Inputs{Primary: []string{"ADD"}, Disabled: Disabled{"ADD": ""}})

	assert.Empty(t, v.Primary)
	assert.Empty(t, v.Secondary)
}

func TestResolve_DisabledAnnotation(t *testing.T) {
	v := Resolve(Inputs{
		Actions:  crudCatalog(),
		Primary:  []string{"EDIT"},
		Disabled: Disabled{"EDIT": "no permission", "OPEN": ""},
	})

	require.Len(t, v.Primary, 1)
	assert.True(t, v.Primary[0].Disabled)
	assert.Equal(t, "no permission", v.Primary[0].DisabledReason)

	require.Len(t, v.Secondary, 4)
	assert.True(t, v.Secondary[0].Disabled, "empty reason still disables")
	assert.False(t, v.Secondary[1].Disabled)
}

func TestResolve_HiddenWinsOverPrimaryAndDisabled(t *testing.T) {
	v := Resolve(Inputs{
		Actions:  crudCatalog(),
		Hidden:   []string{"EDIT"},
		Primary:  []string{"EDIT"},
		Disabled: Disabled{"EDIT": "x"},
	})

	assert.Empty(t, v.Primary)
	assert.NotContains(t, Names(v.Secondary), "EDIT")
}

func TestResolve_Idempotent(t *testing.T) {
	in := Inputs{
		Actions:     nestedCatalog(),
		Hidden:      []string{"ADD_BOTTOM"},
		Disabled:    Disabled{"EDIT": "locked"},
		Primary:     []string{"OPEN"},
		SemiPrimary: []string{"EDIT"},
		HoverActive: true,
	}

	assert.Equal(t, Resolve(in), Resolve(in))
}

func TestResolve_Scenario4SemiPrimaryHover(t *testing.T) {
	in := Inputs{
		Actions:     Catalog{leaf("EDIT"), leaf("DELETE"), leaf("ARCHIVE")},
		Primary:     []string{"EDIT"},
		SemiPrimary: []string{"DELETE"},
	}

	v := Resolve(in)
	assert.Equal(t, []string{"EDIT"}, Names(v.Primary))

	in.HoverActive = true
	v = Resolve(in)
	assert.Equal(t, []string{"DELETE", "EDIT"}, Names(v.Primary))
	assert.Equal(t, []string{"ARCHIVE"}, Names(v.Secondary))

	in.MenuOpen = true
	v = Resolve(in)
	assert.Equal(t, []string{"EDIT"}, Names(v.Primary), "open menu suppresses promotion")
	assert.Equal(t, []string{"DELETE", "ARCHIVE"}, Names(v.Secondary))
}

func TestCatalog_FlattenAndFind(t *testing.T) {
	c := nestedCatalog()

	assert.Equal(t, []string{"OPEN", "ADD", "ADD_TOP", "ADD_BOTTOM", "EDIT"}, actionNames(c.Flatten()))

	a, ok := c.Find("ADD_BOTTOM")
	require.True(t, ok)
	assert.Equal(t, "ADD_BOTTOM", a.Name)

	_, ok = c.Find("NOPE")
	assert.False(t, ok)
}

func TestCatalog_Validate(t *testing.T) {
	assert.NoError(t, nestedCatalog().Validate())

	dup := Catalog{leaf("A"), {Name: "B", SubActions: []Action{leaf("A")}}}
	assert.ErrorContains(t, dup.Validate(), `duplicate action name "A"`)

	err := Catalog{{Label: "nameless"}}.Validate()
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestDisabledFromNames(t *testing.T) {
	d := DisabledFromNames([]string{"archive", "new"}, nil)
	assert.Equal(t, Disabled{"archive": "", "new": ""}, d)

	d = DisabledFromNames([]string{"archive"}, func(n string) string { return n + " is off" })
	reason, ok := d.Reason("archive")
	assert.True(t, ok)
	assert.Equal(t, "archive is off", reason)
	assert.False(t, d.Has("new"))
}
