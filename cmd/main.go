// Package main runs the check dialog: it lets the user pick files, options and
// a worker count, then prints the chosen paths for the analysis engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Akaiko1/check-dialog/internal/checkdialog"
	"github.com/Akaiko1/check-dialog/internal/config"
	"github.com/Akaiko1/check-dialog/internal/store"
	"github.com/Akaiko1/check-dialog/internal/ui"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath   string
		settingsFile string
		language     string
		startPath    string
		maxDepth     int
		showHidden   bool
		verbose      bool
	)
	flag.StringVar(&configPath, "config", os.Getenv("CHECKDIALOG_CONFIG"), "Path to a YAML or JSON configuration file")
	flag.StringVar(&settingsFile, "settings", "", "Keep dialog state in this YAML file instead of the app preferences")
	flag.StringVar(&language, "lang", "", "Label language, e.g. 'en' or 'de'")
	flag.StringVar(&startPath, "dir", "", "Directory to show when no previous one was saved")
	flag.IntVar(&maxDepth, "max.depth", 15, "Maximum directory depth of the file tree (-1 for unlimited)")
	flag.BoolVar(&showHidden, "hidden", false, "Show hidden files and directories")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := config.DefaultConfig()
	if configPath != "" {
		fc, err := config.LoadFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("cannot load config")
		}
		cfg.Apply(fc)
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "settings":
			cfg.SettingsFile = settingsFile
		case "lang":
			cfg.Language = language
		case "dir":
			cfg.StartPath = startPath
		case "max.depth":
			cfg.MaxDepth = maxDepth
		case "hidden":
			cfg.ShowHidden = showHidden
		case "v":
			cfg.Verbose = verbose
		}
	})
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Int("max_depth", cfg.MaxDepth).Bool("show_hidden", cfg.ShowHidden).Str("lang", cfg.Language).Msg("config")

	fyneApp := app.NewWithID(cfg.AppID)
	fyneApp.SetIcon(theme.FolderIcon())

	st, save := openStore(cfg, fyneApp.Preferences())

	exitCode := 1
	d := ui.NewCheckDialog(fyneApp, cfg, st)
	d.Show(func(res checkdialog.Result, confirmed bool) {
		defer fyneApp.Quit()
		if !confirmed {
			log.Info().Msg("check dialog dismissed")
			return
		}
		if err := save(); err != nil {
			log.Error().Err(err).Msg("failed to save dialog state")
		}
		report(res)
		exitCode = 0
	})
	fyneApp.Run()
	os.Exit(exitCode)
}

// openStore picks the settings store. An unreadable settings file is treated
// like an empty one.
func openStore(cfg *config.Config, prefs fyne.Preferences) (store.Store, func() error) {
	if cfg.SettingsFile == "" {
		return store.NewPreferences(prefs), func() error { return nil }
	}
	f, err := store.OpenFile(cfg.SettingsFile)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.SettingsFile).Msg("ignoring unreadable settings file")
	}
	return f, f.Save
}

// report prints one selected path per line for the analysis engine.
func report(res checkdialog.Result) {
	log.Info().
		Str("settings", res.Settings.String()).
		Str("root", res.RootPath).
		Int("paths", len(res.Paths)).
		Msg("check dialog confirmed")
	if len(res.Paths) == 0 {
		log.Warn().Msg("nothing selected")
	}
	for _, p := range res.Paths {
		fmt.Println(p)
	}
}
