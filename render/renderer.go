package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/engine"
	"github.com/lixenwraith/pump-clicker/events"
	"github.com/lixenwraith/pump-clicker/input"
)

const (
	buttonLabel  = "PUMP!"
	popupHeading = "CONGRATULATIONS!"
	footerHint   = "space/enter/click: pump   esc: quit"

	// Rows from the top of the layout block
	rowTitle      = 0
	rowButton     = 2
	rowCount      = rowButton + constants.ButtonHeight + 1
	rowRate       = rowCount + 1
	rowProgress   = rowRate + 2
	rowMilestones = rowProgress + 2
	rowFooter     = rowMilestones + 2
	layoutHeight  = rowFooter + 1

	popupWidth  = 34
	popupHeight = 5
)

// Renderer draws the game on a tcell screen
// It is the Sink for state projections and handles EventActivation for button effects
//
// Owned by the event loop, not safe for concurrent use
type Renderer struct {
	screen     tcell.Screen
	clock      engine.TimeProvider
	thresholds []int64

	count    int64
	rate     int
	progress float64

	pressedUntil time.Time
	effectUntil  time.Time

	popupText  string
	popupUntil time.Time
}

var (
	_ engine.Sink    = (*Renderer)(nil)
	_ events.Handler = (*Renderer)(nil)
)

// NewRenderer creates a renderer for the given milestone thresholds
func NewRenderer(screen tcell.Screen, clock engine.TimeProvider, thresholds []int64) *Renderer {
	return &Renderer{
		screen:     screen,
		clock:      clock,
		thresholds: append([]int64(nil), thresholds...),
	}
}

// OnCountChanged implements engine.Sink
func (r *Renderer) OnCountChanged(count int64) { r.count = count }

// OnRateChanged implements engine.Sink
func (r *Renderer) OnRateChanged(rate int) { r.rate = rate }

// OnProgress implements engine.Sink
func (r *Renderer) OnProgress(fraction float64) {
	r.progress = math.Max(0, math.Min(fraction, 1))
}

// OnMilestoneAchieved implements engine.Sink, a newer popup replaces the visible one
func (r *Renderer) OnMilestoneAchieved(label string) {
	r.popupText = AchievementText(label)
	r.popupUntil = r.clock.Now().Add(constants.AchievementDisplayDuration)
}

// EventTypes implements events.Handler
func (r *Renderer) EventTypes() []events.EventType {
	return []events.EventType{events.EventActivation}
}

// HandleEvent implements events.Handler
func (r *Renderer) HandleEvent(ev events.GameEvent) {
	if ev.Type != events.EventActivation {
		return
	}
	r.pressedUntil = ev.Timestamp.Add(constants.ButtonPressDuration)
	r.effectUntil = ev.Timestamp.Add(constants.ClickEffectDuration)
}

// origin returns the top-left cell of the layout block
func (r *Renderer) origin() (int, int) {
	w, h := r.screen.Size()
	return max((w-constants.ProgressBarWidth)/2, 0), max((h-layoutHeight)/2, 0)
}

// ButtonRect returns the button's screen rectangle for pointer hit testing
func (r *Renderer) ButtonRect() input.Rect {
	w, _ := r.screen.Size()
	_, top := r.origin()
	return input.Rect{
		X: max((w-constants.ButtonWidth)/2, 0),
		Y: top + rowButton,
		W: constants.ButtonWidth,
		H: constants.ButtonHeight,
	}
}

// Pressed reports whether the button is drawn pressed at now
func (r *Renderer) Pressed(now time.Time) bool {
	return now.Before(r.pressedUntil)
}

// PopupVisible reports whether the achievement popup is drawn at now
func (r *Renderer) PopupVisible(now time.Time) bool {
	return r.popupText != "" && now.Before(r.popupUntil)
}

// Draw renders one frame for time now
func (r *Renderer) Draw(now time.Time) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	w, _ := r.screen.Size()
	left, top := r.origin()

	r.drawCentered(w, top+rowTitle, constants.Title, bg.Foreground(RgbTitle).Bold(true))
	r.drawButton(now, bg)

	r.drawCentered(w, top+rowCount, "Clicks: "+FormatCount(r.count), bg.Foreground(RgbText).Bold(true))
	r.drawCentered(w, top+rowRate, fmt.Sprintf("%d clicks/sec", r.rate), bg.Foreground(RgbTextDim))
	r.drawProgress(left, top+rowProgress, bg)
	r.drawMilestones(w, top+rowMilestones, bg)
	r.drawCentered(w, top+rowFooter, footerHint, bg.Foreground(RgbTextDim))

	if r.PopupVisible(now) {
		r.drawPopup(w, top)
	}

	r.screen.Show()
}

func (r *Renderer) drawButton(now time.Time, bg tcell.Style) {
	rect := r.ButtonRect()
	fill := RgbButton
	if r.Pressed(now) {
		fill = RgbButtonPressed
	}
	style := tcell.StyleDefault.Background(fill).Foreground(RgbButtonText).Bold(true)

	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	mid := rect.Y + rect.H/2
	r.drawText(rect.X+(rect.W-len(buttonLabel))/2, mid, buttonLabel, style)

	if now.Before(r.effectUntil) {
		// Float up one row per half of the effect
		remaining := r.effectUntil.Sub(now)
		rise := 0
		if remaining < constants.ClickEffectDuration/2 {
			rise = 1
		}
		r.drawText(rect.X+rect.W+1, rect.Y-rise, "+1", bg.Foreground(RgbClickEffect).Bold(true))
	}
}

func (r *Renderer) drawProgress(left, y int, bg tcell.Style) {
	filled := int(r.progress * constants.ProgressBarWidth)
	for i := 0; i < constants.ProgressBarWidth; i++ {
		if i < filled {
			r.screen.SetContent(left+i, y, '█', nil, bg.Foreground(RgbProgressFill))
		} else {
			r.screen.SetContent(left+i, y, '░', nil, bg.Foreground(RgbProgressEmpty))
		}
	}
}

// drawMilestones shows every threshold, only the leading HighlightedMilestones light up once reached
func (r *Renderer) drawMilestones(w, y int, bg tcell.Style) {
	labels := make([]string, len(r.thresholds))
	for i, t := range r.thresholds {
		labels[i] = " " + FormatCount(t) + " "
	}
	row := strings.Join(labels, " ")
	x := max((w-len(row))/2, 0)

	for i, label := range labels {
		style := bg.Foreground(RgbMilestone)
		if i < constants.HighlightedMilestones && r.count >= r.thresholds[i] {
			style = tcell.StyleDefault.Background(RgbMilestoneAccent).Foreground(RgbMilestoneReached).Bold(true)
		}
		r.drawText(x, y, label, style)
		x += len(label) + 1
	}
}

func (r *Renderer) drawPopup(w, top int) {
	x0 := max((w-popupWidth)/2, 0)
	y0 := top + rowButton + (constants.ButtonHeight-popupHeight)/2

	border := tcell.StyleDefault.Background(RgbPopupBg).Foreground(RgbPopupBorder)
	for y := y0; y < y0+popupHeight; y++ {
		for x := x0; x < x0+popupWidth; x++ {
			ch := ' '
			switch {
			case y == y0 || y == y0+popupHeight-1:
				ch = '─'
			case x == x0 || x == x0+popupWidth-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, border)
		}
	}
	r.screen.SetContent(x0, y0, '┌', nil, border)
	r.screen.SetContent(x0+popupWidth-1, y0, '┐', nil, border)
	r.screen.SetContent(x0, y0+popupHeight-1, '└', nil, border)
	r.screen.SetContent(x0+popupWidth-1, y0+popupHeight-1, '┘', nil, border)

	inner := tcell.StyleDefault.Background(RgbPopupBg)
	r.drawCentered(w, y0+1, popupHeading, inner.Foreground(RgbPopupTitle).Bold(true))
	r.drawCentered(w, y0+3, truncate(r.popupText, popupWidth-2), inner.Foreground(RgbPopupText))
}

func (r *Renderer) drawCentered(w, y int, s string, style tcell.Style) {
	r.drawText(max((w-len([]rune(s)))/2, 0), y, s, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
