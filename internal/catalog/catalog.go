// Package catalog loads toolbar definitions from TOML or YAML files.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/toolbar"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Definition is everything a host needs to set up one toolbar.
type Definition struct {
	Title       string
	Actions     toolbar.Catalog
	Primary     []string
	SemiPrimary []string
	Hidden      []string
	Disabled    toolbar.Disabled
	Resources   locale.Resources
}

// Inputs returns the definition as toolbar inputs.
func (d *Definition) Inputs() toolbar.Inputs {
	return toolbar.Inputs{
		Actions:     d.Actions,
		Hidden:      d.Hidden,
		Disabled:    d.Disabled,
		Primary:     d.Primary,
		SemiPrimary: d.SemiPrimary,
	}
}

// document mirrors the file layout. disabled is either a table of
// name = "reason" or a plain list of names.
type document struct {
	Title       string                       `koanf:"title" yaml:"title"`
	Actions     toolbar.Catalog              `koanf:"actions" yaml:"actions"`
	Primary     []string                     `koanf:"primary" yaml:"primary"`
	SemiPrimary []string                     `koanf:"semi_primary" yaml:"semi_primary"`
	Hidden      []string                     `koanf:"hidden" yaml:"hidden"`
	Disabled    any                          `koanf:"disabled" yaml:"disabled"`
	Resources   map[string]map[string]string `koanf:"resources" yaml:"resources"`
}

// Load reads a definition, picking the parser from the file extension.
func Load(path string) (*Definition, error) {
	var (
		doc document
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		doc, err = loadTOML(path)
	case ".yaml", ".yml":
		doc, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	def, err := doc.definition()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func loadTOML(path string) (document, error) {
	var doc document
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return doc, err
	}
	if err := k.Unmarshal("", &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

func loadYAML(path string) (document, error) {
	var doc document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (doc document) definition() (*Definition, error) {
	if err := doc.Actions.Validate(); err != nil {
		return nil, err
	}
	disabled, err := parseDisabled(doc.Disabled)
	if err != nil {
		return nil, err
	}
	return &Definition{
		Title:       doc.Title,
		Actions:     doc.Actions,
		Primary:     doc.Primary,
		SemiPrimary: doc.SemiPrimary,
		Hidden:      doc.Hidden,
		Disabled:    disabled,
		Resources:   locale.Resources(doc.Resources),
	}, nil
}

// parseDisabled accepts a name-to-reason table or a list of names. List
// entries get no reason, so the localized disabled tooltip is shown instead.
func parseDisabled(v any) (toolbar.Disabled, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		d := make(toolbar.Disabled, len(v))
		for name, reason := range v {
			switch r := reason.(type) {
			case string:
				d[name] = r
			case nil, bool:
				d[name] = ""
			default:
				return nil, fmt.Errorf("disabled reason for %q must be a string, got %T", name, reason)
			}
		}
		return d, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, n := range v {
			s, ok := n.(string)
			if !ok {
				return nil, fmt.Errorf("disabled list entries must be strings, got %T", n)
			}
			names = append(names, s)
		}
		return toolbar.DisabledFromNames(names, nil), nil
	default:
		return nil, fmt.Errorf("disabled must be a table or a list, got %T", v)
	}
}
