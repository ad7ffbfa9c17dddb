package comingsoon

import (
	"errors"
	"image/color"
	"log"
	"time"

	"allure/internal/core/landing"
	"allure/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Config defines window behaviour.
type Config struct {
	Fullscreen    bool
	Size          fyne.Size
	FrameInterval time.Duration
}

// Window renders a landing controller with Fyne.
type Window struct {
	app        fyne.App
	window     fyne.Window
	controller *landing.Controller
	config     Config

	veil         *canvas.Rectangle
	slide        *slideLayout
	body         *fyne.Container
	gem          *fyne.Container
	gemRing      *canvas.Circle
	pulse        *gemLayout
	brand        *canvas.Text
	brandSub     *canvas.Text
	entry        *widget.Entry
	submitButton *widget.Button
	formBox      *fyne.Container
	confirmation *canvas.Text

	frames    *fyne.Animation
	lastFrame time.Time
	lastState landing.State
	closed    bool
	onState   func(landing.State)
}

const (
	gemDiameter   = float32(60)
	slideDistance = float32(50)
)

var (
	gold       = rgb(resources.ColorGold)
	background = rgb(resources.ColorBackground)
)

// New builds the landing window around controller. The window is also
// the controller's alert collaborator.
func New(app fyne.App, controller *landing.Controller, config Config) *Window {
	window := app.NewWindow(resources.AppName)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	view := &Window{
		app:        app,
		window:     window,
		controller: controller,
		config:     config,
		lastState:  controller.State(),
	}
	controller.SetAlerter(view)

	gradient := canvas.NewLinearGradient(background, rgb(resources.ColorGradientMid), 45)
	view.veil = canvas.NewRectangle(background)

	view.gemRing = canvas.NewCircle(withAlpha(gold, 26))
	view.gemRing.StrokeColor = withAlpha(gold, 77)
	view.gemRing.StrokeWidth = 1
	gemIcon := canvas.NewImageFromResource(resources.MustIcon("sparkles.svg"))
	gemIcon.FillMode = canvas.ImageFillContain
	view.pulse = &gemLayout{scale: 1}
	view.gem = container.New(view.pulse, view.gemRing, gemIcon)

	view.brand = newText(resources.BrandName, gold, 48)
	view.brandSub = newText(resources.BrandNameSub, gold, 36)

	view.entry = widget.NewEntry()
	view.entry.SetPlaceHolder(resources.Placeholder)
	view.entry.OnChanged = view.handleDraft
	view.entry.OnSubmitted = func(string) { view.handleSubmit() }
	view.submitButton = widget.NewButton(resources.SubmitLabel, view.handleSubmit)
	view.submitButton.Importance = widget.HighImportance
	view.formBox = container.New(layout.NewGridWrapLayout(fyne.NewSize(320, 44)), view.entry, view.submitButton)

	view.confirmation = newText(resources.Confirmation, gold, 16)
	view.confirmation.TextStyle = fyne.TextStyle{Italic: true}
	view.confirmation.Hide()

	description := widget.NewLabel(resources.Description)
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter

	social := container.NewHBox(
		layout.NewSpacer(),
		socialIcon("instagram.svg"),
		socialIcon("mail.svg"),
		layout.NewSpacer(),
	)

	column := container.NewVBox(
		container.NewCenter(view.gem),
		view.brand,
		view.brandSub,
		container.NewCenter(divider()),
		newText(resources.Tagline, rgb(resources.ColorMuted), 14),
		newText(resources.TaglineSmall, rgb(resources.ColorDim), 12),
		newText(resources.ComingSoon, color.White, 24),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(300, 90)), description),
		newText(resources.SignupTitle, color.White, 18),
		newText(resources.SignupSubtitle, rgb(resources.ColorDim), 12),
		container.NewCenter(container.NewStack(view.formBox, view.confirmation)),
		social,
		newText(resources.Footer, rgb(resources.ColorFooter), 10),
	)

	view.slide = &slideLayout{}
	view.body = container.New(view.slide, column)
	root := container.NewStack(gradient, container.NewVScroll(container.NewCenter(view.body)), view.veil)
	window.SetContent(root)
	window.SetOnClosed(view.teardown)

	view.applyWindowMode()
	view.render()
	return view
}

// Show displays the window, mounts the controller and starts repainting.
func (view *Window) Show() {
	view.window.Show()
	view.controller.Mount()

	view.frames = fyne.NewAnimation(time.Second, func(float32) {
		now := time.Now()
		if now.Sub(view.lastFrame) < view.config.FrameInterval {
			return
		}
		view.lastFrame = now
		view.render()
	})
	view.frames.Curve = fyne.AnimationLinear
	view.frames.RepeatCount = fyne.AnimationRepeatForever
	view.frames.Start()
}

// Close closes the window and tears the controller down.
func (view *Window) Close() {
	if view.closed {
		return
	}
	view.teardown()
	view.window.Close()
}

// Window exposes the underlying Fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// SetOnStateChange registers a handler for submission state changes seen
// while repainting.
func (view *Window) SetOnStateChange(handler func(landing.State)) {
	view.onState = handler
}

// ShowAlert implements landing.Alerter with a modal information dialog.
func (view *Window) ShowAlert(title, message string) {
	dialog.ShowInformation(title, message, view.window)
}

// ShimmerOpacity maps the raw shimmer driver into the brand's opacity band.
func ShimmerOpacity(shimmer float64) float64 {
	return 0.8 + 0.2*clamp01(shimmer)
}

func (view *Window) handleDraft(text string) {
	form, ok := view.controller.Form()
	if !ok {
		return
	}
	if err := form.SetDraft(text); err != nil {
		log.Printf("set draft: %v", err)
	}
}

func (view *Window) handleSubmit() {
	form, ok := view.controller.Form()
	if !ok {
		return
	}
	if err := form.Submit(); err != nil && !errors.Is(err, landing.ErrInvalidEmail) {
		log.Printf("submit: %v", err)
	}
	view.render()
}

func (view *Window) render() {
	frame := view.controller.Frame()

	view.veil.FillColor = withAlpha(background, uint8((1-clamp01(frame.Fade))*255))
	view.veil.Refresh()

	offset := float32(frame.Slide)
	if offset != view.slide.offset {
		view.slide.offset = offset
		view.body.Refresh()
	}

	scale := float32(frame.Pulse)
	if scale != view.pulse.scale {
		view.pulse.scale = scale
		view.gem.Refresh()
	}

	alpha := uint8(ShimmerOpacity(frame.Shimmer) * 255)
	view.brand.Color = withAlpha(gold, alpha)
	view.brandSub.Color = withAlpha(gold, alpha)
	view.brand.Refresh()
	view.brandSub.Refresh()

	if frame.State != view.lastState {
		view.lastState = frame.State
		view.applyState(frame)
		if view.onState != nil {
			view.onState(frame.State)
		}
	}
}

func (view *Window) applyState(frame landing.Frame) {
	if frame.FormOpen {
		if view.entry.Text != frame.Draft {
			view.entry.SetText(frame.Draft)
		}
		view.confirmation.Hide()
		view.formBox.Show()
		return
	}
	view.entry.SetText("")
	view.formBox.Hide()
	view.confirmation.Show()
}

func (view *Window) teardown() {
	if view.closed {
		return
	}
	view.closed = true
	if view.frames != nil {
		view.frames.Stop()
	}
	view.controller.Teardown()
}

func (view *Window) applyWindowMode() {
	if view.config.Fullscreen {
		view.window.SetFullScreen(true)
		return
	}
	view.window.SetFullScreen(false)
	if view.config.Size.Width > 0 && view.config.Size.Height > 0 {
		view.window.Resize(view.config.Size)
	}
	view.window.CenterOnScreen()
}

func newText(text string, fill color.Color, size float32) *canvas.Text {
	label := canvas.NewText(text, fill)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = size
	return label
}

func divider() fyne.CanvasObject {
	line := canvas.NewRectangle(withAlpha(gold, 77))
	line.SetMinSize(fyne.NewSize(60, 1))
	return line
}

func socialIcon(name string) fyne.CanvasObject {
	ring := canvas.NewCircle(withAlpha(gold, 26))
	ring.StrokeColor = withAlpha(gold, 51)
	ring.StrokeWidth = 1
	icon := canvas.NewImageFromResource(resources.MustIcon(name))
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(20, 20))
	cell := container.NewStack(ring, container.NewCenter(icon))
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(40, 40)), cell)
}

func rgb(value uint32) color.NRGBA {
	return color.NRGBA{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value), A: 255}
}

func withAlpha(base color.NRGBA, alpha uint8) color.NRGBA {
	base.A = alpha
	return base
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
