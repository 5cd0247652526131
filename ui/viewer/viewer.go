// Package viewer displays the image under the cursor.
package viewer

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kaur-ai/LabelImage/internal/app"
	"github.com/kaur-ai/LabelImage/internal/imageio"
)

const (
	placeholderWidth  = 900
	placeholderHeight = 650
)

// Viewer renders the current image with a caption and the assigned label.
// A decode failure shows an error panel for that image only; navigation
// past it keeps working.
type Viewer struct {
	state *app.State

	image      *fynecanvas.Image
	caption    *widget.Label
	labelLine  *widget.Label
	decodeNote *widget.Label
	container  fyne.CanvasObject
}

// New creates a viewer bound to the application state.
func New(state *app.State) *Viewer {
	v := &Viewer{state: state}

	v.image = fynecanvas.NewImageFromImage(imageio.Placeholder(placeholderWidth, placeholderHeight))
	v.image.FillMode = fynecanvas.ImageFillContain
	v.image.SetMinSize(fyne.NewSize(480, 360))

	v.caption = widget.NewLabel("Pick a folder to get started")
	v.labelLine = widget.NewLabel("Label: -")
	v.decodeNote = widget.NewLabel("")
	v.decodeNote.Alignment = fyne.TextAlignCenter
	v.decodeNote.Hide()

	bottom := container.NewBorder(nil, nil, v.caption, v.labelLine)
	v.container = container.NewBorder(
		nil,
		bottom,
		nil,
		nil,
		container.NewStack(v.image, container.NewCenter(v.decodeNote)),
	)

	state.On(app.EventPositionChanged, func(interface{}) {
		v.Refresh()
	})
	state.On(app.EventLabelAssigned, func(interface{}) {
		v.Refresh()
	})

	return v
}

// Container returns the viewer's root canvas object.
func (v *Viewer) Container() fyne.CanvasObject {
	return v.container
}

// Refresh re-renders the widget from the current state.
func (v *Viewer) Refresh() {
	path, ok := v.state.CurrentImage()
	if !ok {
		v.caption.SetText("No images loaded")
		v.labelLine.SetText("Label: -")
		v.decodeNote.Hide()
		v.setImage(imageio.Placeholder(placeholderWidth, placeholderHeight))
		return
	}

	idx := v.state.CurrentIndex()
	v.caption.SetText(fmt.Sprintf("%s (%d/%d)", filepath.Base(path), idx+1, v.state.CorpusSize()))

	if label, labeled := v.state.CurrentLabel(); labeled {
		v.labelLine.SetText("Label: " + label)
	} else {
		v.labelLine.SetText("Label: Unlabeled")
	}

	img, err := imageio.Load(path)
	if err != nil {
		log.Printf("Failed to display %s: %v", path, err)
		v.decodeNote.SetText(fmt.Sprintf("Could not load image:\n%v", err))
		v.decodeNote.Show()
		v.setImage(imageio.Placeholder(placeholderWidth, placeholderHeight))
		return
	}
	v.decodeNote.Hide()
	v.setImage(img)
}

func (v *Viewer) setImage(img image.Image) {
	v.image.Image = img
	v.image.Refresh()
}
