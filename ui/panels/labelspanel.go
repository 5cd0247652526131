package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/kaur-ai/LabelImage/internal/app"
	"github.com/kaur-ai/LabelImage/internal/config"
)

// LabelsPanel renders one button per label, the live per-label counters,
// and the navigation buttons. Button order and counter order follow the
// labels file. The button of the current image's label is highlighted.
type LabelsPanel struct {
	state  *app.State
	scheme config.Theme
	window fyne.Window

	buttonsBox *fyne.Container
	countsBox  *fyne.Container
	progress   *widget.Label
	container  fyne.CanvasObject

	labelButtons   map[string]*widget.Button
	countBadges    map[string]*widget.Label
	unlabeledBadge *widget.Label
}

// NewLabelsPanel creates the labels panel bound to the application state.
func NewLabelsPanel(state *app.State, scheme config.Theme) *LabelsPanel {
	lp := &LabelsPanel{
		state:        state,
		scheme:       scheme,
		buttonsBox:   container.NewVBox(),
		countsBox:    container.NewVBox(),
		labelButtons: make(map[string]*widget.Button),
		countBadges:  make(map[string]*widget.Label),
	}

	lp.progress = widget.NewLabel("No images loaded")

	prevButton := widget.NewButton("< Previous", state.NavigatePrevious)
	nextButton := widget.NewButton("Next >", state.NavigateNext)
	nav := container.NewGridWithColumns(2, prevButton, nextButton)

	lp.container = container.NewVBox(
		widget.NewCard("Labels", "", lp.buttonsBox),
		widget.NewCard("Counts", "", lp.countsBox),
		nav,
		lp.progress,
	)

	state.On(app.EventProjectLoaded, func(interface{}) {
		lp.rebuild()
	})
	state.On(app.EventCountsChanged, func(interface{}) {
		lp.refreshCounts()
	})
	state.On(app.EventPositionChanged, func(interface{}) {
		lp.highlightCurrent()
	})

	return lp
}

// Container returns the panel container.
func (lp *LabelsPanel) Container() fyne.CanvasObject {
	return lp.container
}

// SetWindow sets the parent window for error dialogs.
func (lp *LabelsPanel) SetWindow(w fyne.Window) {
	lp.window = w
}

// AssignLabel dispatches a label assignment, reporting write failures to
// the user. On failure the cursor and counters are untouched, so the same
// click can simply be retried.
func (lp *LabelsPanel) AssignLabel(label string) {
	if err := lp.state.AssignLabel(label); err != nil {
		if lp.window != nil {
			dialog.ShowError(err, lp.window)
		}
	}
}

// rebuild recreates label buttons and count rows after a project load.
func (lp *LabelsPanel) rebuild() {
	lp.buttonsBox.Objects = nil
	lp.countsBox.Objects = nil
	lp.labelButtons = make(map[string]*widget.Button)
	lp.countBadges = make(map[string]*widget.Label)

	for i, label := range lp.state.Labels {
		label := label
		btn := widget.NewButton(label, func() {
			lp.AssignLabel(label)
		})
		lp.labelButtons[label] = btn
		lp.buttonsBox.Add(btn)

		badge := widget.NewLabel("0")
		badge.TextStyle = fyne.TextStyle{Bold: true}
		lp.countBadges[label] = badge

		swatch := fynecanvas.NewRectangle(lp.scheme.AccentColor(i))
		swatch.SetMinSize(fyne.NewSize(12, 12))

		row := container.NewBorder(nil, nil,
			container.NewHBox(container.NewCenter(swatch), widget.NewLabel(label)),
			badge)
		lp.countsBox.Add(row)
	}

	lp.unlabeledBadge = widget.NewLabel("0")
	lp.unlabeledBadge.TextStyle = fyne.TextStyle{Bold: true}
	lp.countsBox.Add(container.NewBorder(nil, nil,
		widget.NewLabel("Unlabeled"), lp.unlabeledBadge))

	lp.buttonsBox.Refresh()
	lp.countsBox.Refresh()
	lp.refreshCounts()
	lp.highlightCurrent()
}

// refreshCounts re-renders the badges and the progress line.
func (lp *LabelsPanel) refreshCounts() {
	counts, unlabeled := lp.state.Counts()
	for label, badge := range lp.countBadges {
		badge.SetText(fmt.Sprintf("%d", counts[label]))
	}
	if lp.unlabeledBadge != nil {
		lp.unlabeledBadge.SetText(fmt.Sprintf("%d", unlabeled))
	}

	total := lp.state.CorpusSize()
	if total == 0 {
		lp.progress.SetText("No images loaded")
		return
	}
	lp.progress.SetText(fmt.Sprintf("Labeled %d / %d images", lp.state.LabeledTotal(), total))
}

// highlightCurrent marks the button of the current image's label.
func (lp *LabelsPanel) highlightCurrent() {
	current, _ := lp.state.CurrentLabel()
	for label, btn := range lp.labelButtons {
		importance := widget.MediumImportance
		if label == current {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}
}
