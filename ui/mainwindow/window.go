// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/kaur-ai/LabelImage/internal/app"
	"github.com/kaur-ai/LabelImage/internal/config"
	"github.com/kaur-ai/LabelImage/internal/version"
	"github.com/kaur-ai/LabelImage/ui/panels"
	"github.com/kaur-ai/LabelImage/ui/prefs"
	"github.com/kaur-ai/LabelImage/ui/viewer"
)

const windowTitle = "Image Labeller"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State

	viewer       *viewer.Viewer
	projectPanel *panels.ProjectPanel
	labelsPanel  *panels.LabelsPanel
	statusBar    *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs, cfg *config.Config) *MainWindow {
	win := fyneApp.NewWindow(windowTitle)
	win.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI(p, cfg)
	mw.setupMenus()
	mw.setupKeys()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI(p *prefs.Prefs, cfg *config.Config) {
	mw.viewer = viewer.New(mw.state)
	mw.projectPanel = panels.NewProjectPanel(mw.state, p)
	mw.projectPanel.SetWindow(mw.Window)
	mw.labelsPanel = panels.NewLabelsPanel(mw.state, cfg.Theme)
	mw.labelsPanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	// Viewer | labels side panel
	split := container.NewHSplit(
		mw.viewer.Container(),
		mw.labelsPanel.Container(),
	)
	split.SetOffset(0.75)

	content := container.NewBorder(
		mw.projectPanel.Container(),       // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Images Folder...", mw.projectPanel.BrowseFolder),
		fyne.NewMenuItem("Open Labels File...", mw.projectPanel.BrowseLabels),
		fyne.NewMenuItem("Set CSV Output...", mw.projectPanel.BrowseCSV),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Load Project", mw.projectPanel.LoadProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	navMenu := fyne.NewMenu("Navigate",
		fyne.NewMenuItem("Previous Image", mw.state.NavigatePrevious),
		fyne.NewMenuItem("Next Image", mw.state.NavigateNext),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, navMenu, helpMenu))
}

// setupKeys binds the arrow keys to navigation.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			mw.state.NavigatePrevious()
		case fyne.KeyRight:
			mw.state.NavigateNext()
		}
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProjectLoaded, func(data interface{}) {
		if cfg, ok := data.(app.ProjectConfig); ok {
			mw.SetTitle(windowTitle + " - " + filepath.Base(cfg.ImagesFolder))
			mw.updateStatus(fmt.Sprintf("Loaded %d images from %s",
				mw.state.CorpusSize(), cfg.ImagesFolder))
		}
	})

	mw.state.On(app.EventLabelAssigned, func(data interface{}) {
		if label, ok := data.(string); ok {
			mw.updateStatus("Labeled as " + label)
		}
	})
}

// SetFolderArg pre-fills the folder entry from a command line argument.
func (mw *MainWindow) SetFolderArg(path string) {
	mw.projectPanel.SetFolder(path)
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Image Labeller",
		fmt.Sprintf("Image Labeller v%s\n\n"+
			"Assign labels to images and log the choices to a CSV file.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
