package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/engine"
	"github.com/lixenwraith/pump-clicker/events"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return NewRenderer(screen, clock, constants.DefaultThresholds), screen, clock
}

// rowText reads one screen row back as a string
func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

// findText returns the first cell where s starts
func findText(screen tcell.SimulationScreen, s string) (int, int, bool) {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if x := strings.Index(rowText(screen, y), s); x >= 0 {
			return len([]rune(rowText(screen, y)[:x])), y, true
		}
	}
	return 0, 0, false
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestAchievementText(t *testing.T) {
	if got := AchievementText("1000"); got != "You reached 1,000 clicks!" {
		t.Errorf("Unexpected threshold text %q", got)
	}
	if got := AchievementText(constants.SecretLabel); got != constants.SecretLabel {
		t.Errorf("Expected label shown as is, got %q", got)
	}
}

func TestDrawCountAndRate(t *testing.T) {
	r, screen, clock := newTestRenderer(t)
	r.OnCountChanged(12345)
	r.OnRateChanged(7)
	r.Draw(clock.Now())

	if _, _, ok := findText(screen, "Clicks: 12,345"); !ok {
		t.Error("Expected formatted count on screen")
	}
	if _, _, ok := findText(screen, "7 clicks/sec"); !ok {
		t.Error("Expected rate on screen")
	}
	if _, _, ok := findText(screen, constants.Title); !ok {
		t.Error("Expected title on screen")
	}
}

func TestButtonRectContainsLabel(t *testing.T) {
	r, screen, clock := newTestRenderer(t)
	r.Draw(clock.Now())

	rect := r.ButtonRect()
	if rect.W != constants.ButtonWidth || rect.H != constants.ButtonHeight {
		t.Errorf("Unexpected button size %dx%d", rect.W, rect.H)
	}
	x, y, ok := findText(screen, buttonLabel)
	if !ok {
		t.Fatal("Expected button label on screen")
	}
	if !rect.Contains(x, y) {
		t.Errorf("Expected label at (%d,%d) inside button %+v", x, y, rect)
	}
}

func TestButtonPressedState(t *testing.T) {
	r, screen, clock := newTestRenderer(t)
	rect := r.ButtonRect()

	buttonBg := func() tcell.Color {
		_, _, style, _ := screen.GetContent(rect.X, rect.Y)
		_, bg, _ := style.Decompose()
		return bg
	}

	r.Draw(clock.Now())
	if buttonBg() != RgbButton {
		t.Errorf("Expected idle button color, got %v", buttonBg())
	}

	r.HandleEvent(events.GameEvent{Type: events.EventActivation, Timestamp: clock.Now()})
	r.Draw(clock.Now())
	if buttonBg() != RgbButtonPressed {
		t.Errorf("Expected pressed button color, got %v", buttonBg())
	}
	if _, _, ok := findText(screen, "+1"); !ok {
		t.Error("Expected +1 effect after activation")
	}

	r.Draw(clock.Advance(constants.ButtonPressDuration))
	if buttonBg() != RgbButton {
		t.Error("Expected button released after press duration")
	}

	r.Draw(clock.Advance(constants.ClickEffectDuration))
	if _, _, ok := findText(screen, "+1"); ok {
		t.Error("Expected +1 effect gone after effect duration")
	}
}

func TestAchievementPopupExpires(t *testing.T) {
	r, screen, clock := newTestRenderer(t)

	r.OnMilestoneAchieved("100")
	r.Draw(clock.Now())
	if _, _, ok := findText(screen, popupHeading); !ok {
		t.Error("Expected popup heading")
	}
	if _, _, ok := findText(screen, "You reached 100 clicks!"); !ok {
		t.Error("Expected popup text")
	}

	r.Draw(clock.Advance(constants.AchievementDisplayDuration - time.Millisecond))
	if !r.PopupVisible(clock.Now()) {
		t.Error("Expected popup still visible before duration")
	}

	r.Draw(clock.Advance(time.Millisecond))
	if _, _, ok := findText(screen, popupHeading); ok {
		t.Error("Expected popup hidden after duration")
	}
}

func TestPopupReplacedByNewer(t *testing.T) {
	r, screen, clock := newTestRenderer(t)

	r.OnMilestoneAchieved("100")
	clock.Advance(time.Second)
	r.OnMilestoneAchieved(constants.SecretLabel)

	// First popup alone would have expired here
	r.Draw(clock.Advance(1500 * time.Millisecond))
	if _, _, ok := findText(screen, constants.SecretLabel); !ok {
		t.Error("Expected newest popup visible")
	}
}

func TestMilestoneHighlight(t *testing.T) {
	r, screen, clock := newTestRenderer(t)

	styleAt := func(label string) tcell.Color {
		x, y, ok := findText(screen, " "+label+" ")
		if !ok {
			t.Fatalf("Expected milestone %s on screen", label)
		}
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}

	r.OnCountChanged(10000)
	r.Draw(clock.Now())

	for _, label := range []string{"100", "500", "1,000"} {
		if styleAt(label) != RgbMilestoneAccent {
			t.Errorf("Expected milestone %s highlighted", label)
		}
	}
	// Only the leading three thresholds are highlighted even when later ones are reached
	for _, label := range []string{"2,000", "5,000", "10,000"} {
		if styleAt(label) == RgbMilestoneAccent {
			t.Errorf("Expected milestone %s not highlighted", label)
		}
	}
}

func TestProgressBar(t *testing.T) {
	r, screen, clock := newTestRenderer(t)
	r.OnProgress(0.5)
	r.Draw(clock.Now())

	left, top := r.origin()
	row := []rune(rowText(screen, top+rowProgress))
	filled := 0
	for _, ch := range row[left : left+constants.ProgressBarWidth] {
		if ch == '█' {
			filled++
		}
	}
	if filled != constants.ProgressBarWidth/2 {
		t.Errorf("Expected %d filled cells, got %d", constants.ProgressBarWidth/2, filled)
	}

	r.OnProgress(3)
	if r.progress != 1 {
		t.Errorf("Expected progress clamped to 1, got %f", r.progress)
	}
}
