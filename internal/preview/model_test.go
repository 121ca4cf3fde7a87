package preview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/melissaiman/portfolio/internal/content"
	"github.com/melissaiman/portfolio/internal/effects"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, reduced bool) (*Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	site, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	m := New(site, Options{Reduced: reduced, Clock: clock.Now})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, clock
}

func (c *fakeClock) frame(m *Model, d time.Duration) {
	c.now = c.now.Add(d)
	m.Update(frameMsg(c.now))
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestPreviewParticleTrail(t *testing.T) {
	m, clock := newTestModel(t, false)

	clock.now = clock.now.Add(50 * time.Millisecond)
	m.Update(motion(10, 5))
	clock.now = clock.now.Add(30 * time.Millisecond)
	m.Update(motion(12, 5))
	if m.Live() != 2 {
		t.Fatalf("expected 2 particles, got %d", m.Live())
	}

	// A one-cell move is 8 units: enough, but inside the throttle window.
	clock.now = clock.now.Add(5 * time.Millisecond)
	m.Update(motion(13, 5))
	if m.Live() != 2 {
		t.Fatalf("expected throttled move to emit nothing, got %d", m.Live())
	}

	clock.frame(m, 1500*time.Millisecond)
	if m.Live() != 0 {
		t.Fatalf("expected particles to expire, %d live", m.Live())
	}
}

func TestPreviewReducedMotion(t *testing.T) {
	m, clock := newTestModel(t, true)
	for i := 0; i < 10; i++ {
		clock.now = clock.now.Add(40 * time.Millisecond)
		m.Update(motion(i*3, 5))
	}
	if m.Live() != 0 {
		t.Fatalf("expected no particles in reduced mode, got %d", m.Live())
	}
}

func TestPreviewRevealsWhileScrolling(t *testing.T) {
	m, clock := newTestModel(t, true)
	clock.frame(m, 100*time.Millisecond)

	for i := 0; i < len(m.layout.lines); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	for i := 0; i < len(m.layout.lines); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	for _, id := range m.layout.order {
		if got := m.Revealed(id); got != 1 {
			t.Fatalf("expected %s revealed once, got %d", id, got)
		}
	}
}

func TestPreviewHidesPendingSections(t *testing.T) {
	m, _ := newTestModel(t, true)
	view := m.View()
	if strings.Contains(view, "CERTIFICACIONES") {
		t.Fatalf("expected pending section hidden")
	}
	if !strings.Contains(view, "Melissa") {
		t.Fatalf("expected hero in view")
	}
}

func TestPreviewQuitUnmounts(t *testing.T) {
	m, clock := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	clock.now = clock.now.Add(time.Second)
	m.Update(motion(40, 10))
	if m.Live() != 0 {
		t.Fatalf("expected no emission after quit")
	}
	if m.listener != nil {
		t.Fatalf("expected pointer listener released")
	}
}

func TestBar(t *testing.T) {
	if got := bar(50, 10); got != "█████░░░░░" {
		t.Fatalf("unexpected bar %q", got)
	}
}

func TestCellAtClipsOffscreen(t *testing.T) {
	for _, tc := range []struct {
		p    effects.Point
		x, y int
	}{
		{effects.Point{X: 0, Y: 0}, 0, 0},
		{effects.Point{X: 7.9, Y: 15.9}, 0, 0},
		{effects.Point{X: 8, Y: 16}, 1, 1},
		{effects.Point{X: -0.5, Y: 4}, -1, 0},
		{effects.Point{X: 4, Y: -15}, 0, -1},
	} {
		x, y := cellAt(tc.p)
		if x != tc.x || y != tc.y {
			t.Fatalf("expected %+v in cell (%d,%d), got (%d,%d)", tc.p, tc.x, tc.y, x, y)
		}
	}
}
