package comingsoon

import "fyne.io/fyne/v2"

// slideLayout places its content offset downwards by the entrance slide.
type slideLayout struct {
	offset float32
}

func (layout *slideLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		object.Move(fyne.NewPos(0, layout.offset))
		object.Resize(size)
	}
}

func (layout *slideLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, object := range objects {
		minSize = minSize.Max(object.MinSize())
	}
	// Reserve the full travel so the scroll area does not jump.
	return fyne.NewSize(minSize.Width, minSize.Height+slideDistance)
}

// gemLayout centres the gem ring and icon, scaled by the pulse. The cell
// is sized for the largest scale so neighbours never move.
type gemLayout struct {
	scale float32
}

const maxPulse = float32(1.2)

func (layout *gemLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	ring := objects[0]
	icon := objects[1]

	side := gemDiameter * layout.scale
	ring.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
	ring.Resize(fyne.NewSize(side, side))

	iconSide := side * 32 / gemDiameter
	icon.Move(fyne.NewPos((size.Width-iconSide)/2, (size.Height-iconSide)/2))
	icon.Resize(fyne.NewSize(iconSide, iconSide))
}

func (layout *gemLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	side := gemDiameter * maxPulse
	return fyne.NewSize(side, side+30)
}
