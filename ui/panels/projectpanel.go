// Package panels provides the UI panels of the labeller window.
package panels

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/kaur-ai/LabelImage/internal/app"
	"github.com/kaur-ai/LabelImage/ui/prefs"
)

// ProjectPanel holds the project form: images folder, labels file, CSV
// output, and the load button. Loading dispatches into the application
// state; this panel owns no labeling logic.
type ProjectPanel struct {
	state     *app.State
	prefs     *prefs.Prefs
	window    fyne.Window
	container fyne.CanvasObject

	folderEntry *widget.Entry
	labelsEntry *widget.Entry
	csvEntry    *widget.Entry
}

// NewProjectPanel creates the project form, pre-filled from preferences.
func NewProjectPanel(state *app.State, p *prefs.Prefs) *ProjectPanel {
	pp := &ProjectPanel{state: state, prefs: p}

	pp.folderEntry = widget.NewEntry()
	pp.folderEntry.SetPlaceHolder("Images folder")
	pp.labelsEntry = widget.NewEntry()
	pp.labelsEntry.SetPlaceHolder("Labels text file")
	pp.csvEntry = widget.NewEntry()
	pp.csvEntry.SetPlaceHolder("CSV output (default: <folder>/labels.csv)")

	pp.folderEntry.SetText(p.String(prefs.KeyLastFolder))
	pp.labelsEntry.SetText(p.String(prefs.KeyLastLabelsFile))
	pp.csvEntry.SetText(p.String(prefs.KeyLastCSVFile))

	browseFolder := widget.NewButton("Browse", pp.onBrowseFolder)
	browseLabels := widget.NewButton("Browse", pp.onBrowseLabels)
	setCSV := widget.NewButton("Set", pp.onSetCSV)

	loadButton := widget.NewButton("Load project", pp.onLoadProject)
	loadButton.Importance = widget.HighImportance

	form := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Images folder"), browseFolder, pp.folderEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Labels file   "), browseLabels, pp.labelsEntry),
		container.NewBorder(nil, nil, widget.NewLabel("CSV output  "), setCSV, pp.csvEntry),
		loadButton,
	)
	pp.container = widget.NewCard("Project", "", form)

	return pp
}

// Container returns the panel container.
func (pp *ProjectPanel) Container() fyne.CanvasObject {
	return pp.container
}

// SetWindow sets the parent window for dialogs.
func (pp *ProjectPanel) SetWindow(w fyne.Window) {
	pp.window = w
}

// SetFolder fills the images folder entry (used for the CLI argument).
func (pp *ProjectPanel) SetFolder(path string) {
	pp.folderEntry.SetText(path)
	pp.fillDefaultCSV(path)
}

// LoadProject triggers a project load with the current form contents.
func (pp *ProjectPanel) LoadProject() {
	pp.onLoadProject()
}

// BrowseFolder opens the images folder picker (File menu entry point).
func (pp *ProjectPanel) BrowseFolder() {
	pp.onBrowseFolder()
}

// BrowseLabels opens the labels file picker.
func (pp *ProjectPanel) BrowseLabels() {
	pp.onBrowseLabels()
}

// BrowseCSV opens the CSV output picker.
func (pp *ProjectPanel) BrowseCSV() {
	pp.onSetCSV()
}

func (pp *ProjectPanel) onBrowseFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		pp.folderEntry.SetText(uri.Path())
		pp.fillDefaultCSV(uri.Path())
	}, pp.window)
	if loc := pp.lastLocation(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (pp *ProjectPanel) onBrowseLabels() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		pp.labelsEntry.SetText(reader.URI().Path())
	}, pp.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	if loc := pp.lastLocation(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (pp *ProjectPanel) onSetCSV() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".csv" {
			path += ".csv"
		}
		pp.csvEntry.SetText(path)
	}, pp.window)
	fd.SetFileName(app.DefaultCSVName)
	if loc := pp.lastLocation(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (pp *ProjectPanel) onLoadProject() {
	cfg := app.ProjectConfig{
		ImagesFolder: pp.folderEntry.Text,
		LabelsPath:   pp.labelsEntry.Text,
		CSVPath:      pp.csvEntry.Text,
	}

	if err := pp.state.LoadProject(cfg); err != nil {
		if pp.window != nil {
			dialog.ShowError(err, pp.window)
		}
		return
	}

	// LoadProject fills in the default CSV path; reflect it in the form.
	pp.csvEntry.SetText(pp.state.Config.CSVPath)

	pp.prefs.SetString(prefs.KeyLastFolder, pp.state.Config.ImagesFolder)
	pp.prefs.SetString(prefs.KeyLastLabelsFile, pp.state.Config.LabelsPath)
	pp.prefs.SetString(prefs.KeyLastCSVFile, pp.state.Config.CSVPath)
	if err := pp.prefs.Save(); err != nil {
		fmt.Printf("Warning: could not save preferences: %v\n", err)
	}

	if pp.state.SkippedRows > 0 && pp.window != nil {
		dialog.ShowInformation("CSV load issue",
			fmt.Sprintf("Skipped %d malformed row(s) in the existing CSV.", pp.state.SkippedRows),
			pp.window)
	}
}

// fillDefaultCSV pre-fills the CSV entry when it is still empty.
func (pp *ProjectPanel) fillDefaultCSV(folder string) {
	if pp.csvEntry.Text == "" {
		pp.csvEntry.SetText(filepath.Join(folder, app.DefaultCSVName))
	}
}

// lastLocation returns the last used folder as a ListableURI, or nil.
func (pp *ProjectPanel) lastLocation() fyne.ListableURI {
	path := pp.prefs.String(prefs.KeyLastFolder)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}
