// actionbar is a terminal demo of the action toolbar: a record row with
// primary action buttons, an overflow menu for the rest and a persistent
// log of every dispatched action.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/llehouerou/actionbar/internal/app"
	"github.com/llehouerou/actionbar/internal/catalog"
	"github.com/llehouerou/actionbar/internal/config"
	"github.com/llehouerou/actionbar/internal/errmsg"
	"github.com/llehouerou/actionbar/internal/icons"
	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/state"
	"github.com/llehouerou/actionbar/internal/ui/actionbar"
)

type flags struct {
	config  string
	catalog string
	lang    string
	noState bool
	debug   bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var f flags
	fs := pflag.NewFlagSet("actionbar", pflag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "read configuration from this file only")
	fs.StringVar(&f.catalog, "catalog", "", "toolbar definition (TOML or YAML); the built-in board actions when empty")
	fs.StringVarP(&f.lang, "lang", "l", "", "display language, overrides the saved and configured one")
	fs.BoolVar(&f.noState, "no-state", false, "do not read or write the activity log")
	fs.BoolVar(&f.debug, "debug", false, "log debug records")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logFile, err := openLog(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogFileCreate, err))
	}
	defer logFile.Close()
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level})))

	def, err := loadCatalog(f.catalog, cfg.Catalog)
	if err != nil {
		return err
	}

	var stateMgr state.Interface
	lang := cfg.Language
	if !f.noState {
		mgr, err := state.Open()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
		}
		defer mgr.Close()
		stateMgr = mgr

		saved, err := mgr.GetLanguage()
		switch {
		case err != nil:
			slog.Warn(errmsg.Format(errmsg.OpLanguageLoad, err))
		case saved != "":
			lang = saved
		}
	}
	if f.lang != "" {
		lang = f.lang
	}

	loc := locale.New(def.Resources, lang)
	set := icons.ForStyle(cfg.Icons).Merge(cfg.IconsOverride)
	slog.Info("starting", "catalog", def.Title, "actions", len(def.Actions.Flatten()), "language", loc.Language())

	m := app.New(def, loc, set, toolbarOptions(cfg.Toolbar), stateMgr)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

// openLog opens the log file for appending. Logging is disabled when the
// configured path is "-".
func openLog(cfg *config.Config) (io.WriteCloser, error) {
	if cfg.LogFile == "-" {
		return nopCloser{io.Discard}, nil
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// loadCatalog reads the catalog named on the command line, else the one
// from the config, else returns the built-in definition.
func loadCatalog(flagPath, cfgPath string) (*catalog.Definition, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		return catalog.Builtin(), nil
	}
	def, err := catalog.Load(path)
	if err != nil {
		return nil, errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, path, err))
	}
	return def, nil
}

func toolbarOptions(tc config.ToolbarConfig) actionbar.Options {
	opts := actionbar.DefaultOptions()
	opts.Feedback = tc.Feedback()
	opts.ButtonGap = tc.Gap()
	opts.AlignRight = tc.AlignRight()
	opts.CloseIconLeft = tc.CloseIconLeft()
	opts.NoCloseIcon = tc.NoCloseIcon
	opts.MaxMenuHeight = tc.MenuHeight()
	opts.Title = tc.Title
	if tc.TriggerIcon != "" {
		opts.TriggerIcon = tc.TriggerIcon
	}
	return opts
}
