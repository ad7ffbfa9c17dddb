package terminal

import (
	"errors"
	"log"
	"math"
	"strings"

	"allure/internal/core/landing"
	"allure/resources"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	inputWidth  = 30
	columnWidth = 44
	slideRows   = 3.0
	slideUnits  = 50.0
)

// View renders a landing controller on a terminal screen.
type View struct {
	screen     tcell.Screen
	controller *landing.Controller
	alert      *alertBox
}

type alertBox struct {
	title   string
	message string
}

// New creates a terminal view. The view is the controller's alert
// collaborator.
func New(screen tcell.Screen, controller *landing.Controller) *View {
	view := &View{screen: screen, controller: controller}
	controller.SetAlerter(view)
	return view
}

// ShowAlert implements landing.Alerter. The box stays up until a key is
// pressed.
func (view *View) ShowAlert(title, message string) {
	view.alert = &alertBox{title: title, message: message}
}

// Alerting reports whether an alert box is up.
func (view *View) Alerting() bool {
	return view.alert != nil
}

// LightImpact rings the terminal bell as a stand-in for a haptic tap.
func (view *View) LightImpact() error {
	return view.screen.Beep()
}

// HandleEvent applies a terminal event. It returns false when the user
// asked to quit.
func (view *View) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		return view.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		view.screen.Sync()
	}
	return true
}

func (view *View) handleKey(key tcell.Key, ch rune) bool {
	if key == tcell.KeyCtrlC {
		return false
	}
	if view.alert != nil {
		view.alert = nil
		return true
	}
	if key == tcell.KeyEscape {
		return false
	}

	form, ok := view.controller.Form()
	if !ok {
		return true
	}
	switch key {
	case tcell.KeyEnter:
		if err := form.Submit(); err != nil && !errors.Is(err, landing.ErrInvalidEmail) {
			log.Printf("submit: %v", err)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		draft := []rune(form.Draft())
		if len(draft) > 0 {
			_ = form.SetDraft(string(draft[:len(draft)-1]))
		}
	case tcell.KeyRune:
		_ = form.SetDraft(form.Draft() + string(ch))
	}
	return true
}

// Draw paints one frame.
func (view *View) Draw() {
	frame := view.controller.Frame()
	view.screen.Clear()
	width, height := view.screen.Size()

	lines := view.lines(frame)
	top := (height-len(lines))/2 + int(math.Round(frame.Slide/slideUnits*slideRows))
	for index, line := range lines {
		drawCentered(view.screen, width, top+index, line.text, line.style(frame))
	}

	if view.alert != nil {
		view.drawAlert(width, height)
	}
	view.screen.Show()
}

type line struct {
	text    string
	color   uint32
	shimmer bool
	bold    bool
}

func (line line) style(frame landing.Frame) tcell.Style {
	strength := frame.Fade
	if line.shimmer {
		strength *= shimmerStrength(frame.Shimmer)
	}
	style := tcell.StyleDefault.
		Background(hexColor(resources.ColorBackground)).
		Foreground(blend(resources.ColorBackground, line.color, strength))
	if line.bold {
		style = style.Bold(true)
	}
	return style
}

func (view *View) lines(frame landing.Frame) []line {
	lines := []line{
		{text: gemGlyph(frame.Pulse), color: resources.ColorGold, bold: true},
		{},
		{text: spaced(resources.BrandName), color: resources.ColorGold, shimmer: true, bold: true},
		{text: spaced(resources.BrandNameSub), color: resources.ColorGold, shimmer: true},
		{text: "──────", color: resources.ColorGold},
		{text: resources.Tagline, color: resources.ColorMuted},
		{text: resources.TaglineSmall, color: resources.ColorDim},
		{},
		{text: resources.ComingSoon, color: 0xFFFFFF, bold: true},
	}
	for _, wrapped := range wrap(resources.Description, columnWidth) {
		lines = append(lines, line{text: wrapped, color: resources.ColorMuted})
	}
	lines = append(lines,
		line{},
		line{text: resources.SignupTitle, color: 0xFFFFFF},
		line{text: resources.SignupSubtitle, color: resources.ColorDim},
	)
	if frame.FormOpen {
		lines = append(lines, line{text: inputField(frame.Draft) + " [ " + resources.SubmitLabel + " ]", color: resources.ColorGold})
	} else {
		lines = append(lines, line{text: resources.Confirmation, color: resources.ColorGold, bold: true})
	}
	lines = append(lines,
		line{},
		line{text: "◎ Instagram    ✉ Mail", color: resources.ColorGold},
		line{text: resources.Footer, color: resources.ColorFooter},
	)
	return lines
}

func (view *View) drawAlert(width, height int) {
	boxWidth := runewidth.StringWidth(view.alert.message) + 4
	if title := runewidth.StringWidth(view.alert.title) + 4; title > boxWidth {
		boxWidth = title
	}
	top := height/2 - 3
	left := (width - boxWidth) / 2
	frameStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(hexColor(resources.ColorGold))
	textStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	rows := []string{
		"┌" + strings.Repeat("─", boxWidth-2) + "┐",
		"│" + pad(view.alert.title, boxWidth-2) + "│",
		"│" + strings.Repeat(" ", boxWidth-2) + "│",
		"│" + pad(view.alert.message, boxWidth-2) + "│",
		"│" + pad("press any key", boxWidth-2) + "│",
		"└" + strings.Repeat("─", boxWidth-2) + "┘",
	}
	for index, row := range rows {
		style := frameStyle
		if index == 1 || index == 3 {
			style = textStyle.Bold(index == 1)
		}
		drawString(view.screen, left, top+index, row, style)
	}
}

func drawCentered(screen tcell.Screen, width, y int, text string, style tcell.Style) {
	if text == "" {
		return
	}
	x := (width - runewidth.StringWidth(text)) / 2
	drawString(screen, x, y, text, style)
}

func drawString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func gemGlyph(pulse float64) string {
	switch {
	case pulse >= 1.14:
		return "❖"
	case pulse >= 1.07:
		return "✦"
	default:
		return "✧"
	}
}

// shimmerStrength maps the raw shimmer driver into the brand's 0.8 to 1.0
// intensity band.
func shimmerStrength(shimmer float64) float64 {
	return 0.8 + 0.2*math.Min(math.Max(shimmer, 0), 1)
}

func inputField(draft string) string {
	shown := draft
	if shown == "" {
		shown = resources.Placeholder
	}
	runes := []rune(shown)
	if len(runes) > inputWidth {
		runes = runes[len(runes)-inputWidth:]
	}
	return "[" + pad(string(runes), inputWidth) + "]"
}

func spaced(text string) string {
	return strings.Join(strings.Split(text, ""), " ")
}

func pad(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	left := gap / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
}

func wrap(text string, width int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		if current != "" && runewidth.StringWidth(current)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, current)
			current = ""
		}
		if current != "" {
			current += " "
		}
		current += word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func hexColor(value uint32) tcell.Color {
	return tcell.NewRGBColor(int32(value>>16&0xFF), int32(value>>8&0xFF), int32(value&0xFF))
}

// blend mixes from towards to by amount in [0,1].
func blend(from, to uint32, amount float64) tcell.Color {
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}
	channel := func(shift uint) int32 {
		a := float64(from >> shift & 0xFF)
		b := float64(to >> shift & 0xFF)
		return int32(math.Round(a + (b-a)*amount))
	}
	return tcell.NewRGBColor(channel(16), channel(8), channel(0))
}
