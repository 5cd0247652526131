// Package main provides the entry point for the Image Labeller application.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/kaur-ai/LabelImage/internal/app"
	"github.com/kaur-ai/LabelImage/internal/config"
	"github.com/kaur-ai/LabelImage/internal/version"
	"github.com/kaur-ai/LabelImage/ui/mainwindow"
	"github.com/kaur-ai/LabelImage/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Image Labeller v%s", version.Version)

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config error: %v (using defaults)", err)
		cfg = config.Default()
	}

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(app.NewTheme(cfg.Theme))

	state := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs, cfg)

	// An optional folder argument pre-fills the project form.
	if len(os.Args) > 1 {
		win.SetFolderArg(os.Args[1])
	}

	win.ShowAndRun()
}
