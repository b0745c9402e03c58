// Package locale resolves display strings for toolbar actions from
// per-language resource tables.
package locale

import (
	"sort"

	"golang.org/x/text/language"

	"github.com/llehouerou/actionbar/internal/toolbar"
)

// Key suffixes looked up for an action name.
const (
	titleSuffix           = "Title"
	disabledTooltipSuffix = "DisabledTooltip"
)

// Resources holds translated strings keyed as resources[lang][key].
type Resources map[string]map[string]string

// Languages returns the languages present in r, sorted.
func (r Resources) Languages() []string {
	langs := make([]string, 0, len(r))
	for lang := range r {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// MissingTitles lists, per language, the actions of c that have no
// translated title. Languages with complete coverage are omitted.
func (r Resources) MissingTitles(c toolbar.Catalog) map[string][]string {
	missing := make(map[string][]string)
	for _, lang := range r.Languages() {
		for _, a := range c.Flatten() {
			if r[lang][a.Name+titleSuffix] == "" {
				missing[lang] = append(missing[lang], a.Name)
			}
		}
	}
	return missing
}

// Localizer looks up strings in the best matching language.
type Localizer struct {
	res       Resources
	langs     []string
	matcher   language.Matcher
	requested string
	lang      string
}

// New creates a localizer for the requested language. The request is matched
// against the languages in res ("en-US" picks "en"); when nothing matches the
// first available language is used.
func New(res Resources, requested string) *Localizer {
	l := &Localizer{res: res, langs: res.Languages()}
	tags := make([]language.Tag, 0, len(l.langs))
	for _, lang := range l.langs {
		tags = append(tags, language.Make(lang))
	}
	if len(tags) > 0 {
		l.matcher = language.NewMatcher(tags)
	}
	l.SetLanguage(requested)
	return l
}

// SetLanguage switches to the best match for requested.
func (l *Localizer) SetLanguage(requested string) {
	l.requested = requested
	l.lang = l.match(requested)
}

func (l *Localizer) match(requested string) string {
	if len(l.langs) == 0 {
		return requested
	}
	if _, ok := l.res[requested]; ok {
		return requested
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return l.langs[0]
	}
	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return l.langs[0]
	}
	return l.langs[idx]
}

// Language returns the language strings are currently looked up in.
func (l *Localizer) Language() string {
	return l.lang
}

// Languages returns the available languages, sorted.
func (l *Localizer) Languages() []string {
	return l.langs
}

// Next cycles to the language after the current one and returns it.
func (l *Localizer) Next() string {
	if len(l.langs) == 0 {
		return l.lang
	}
	i := sort.SearchStrings(l.langs, l.lang)
	l.SetLanguage(l.langs[(i+1)%len(l.langs)])
	return l.lang
}

// Lookup returns the string stored under key in the current language.
func (l *Localizer) Lookup(key string) (string, bool) {
	s, ok := l.res[l.lang][key]
	return s, ok && s != ""
}

// Title returns the display text for a: its translated title, else its
// label, else its name.
func (l *Localizer) Title(a toolbar.Action) string {
	if s, ok := l.Lookup(a.Name + titleSuffix); ok {
		return s
	}
	if a.Label != "" {
		return a.Label
	}
	return a.Name
}

// DisabledTooltip returns the translated disabled tooltip for name, or "".
func (l *Localizer) DisabledTooltip(name string) string {
	s, _ := l.Lookup(name + disabledTooltipSuffix)
	return s
}

// DisabledReason returns the reason to show for a disabled item: the reason
// given by the host, else the translated tooltip.
func (l *Localizer) DisabledReason(it toolbar.Item) string {
	if it.DisabledReason != "" {
		return it.DisabledReason
	}
	return l.DisabledTooltip(it.Name)
}
