// Package preview renders the portfolio in a terminal and drives the cursor
// effects from mouse motion. Terminal cells are mapped to the pixel space the
// effects are tuned for.
package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/melissaiman/portfolio/internal/content"
	"github.com/melissaiman/portfolio/internal/effects"
)

// Approximate pixel size of a terminal cell.
const (
	cellW = 8.0
	cellH = 16.0
)

const frameInterval = 33 * time.Millisecond

type frameMsg time.Time

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E5A5C"))
	litStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EACDD0"))
	brightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c97878"))
)

// Options configures the preview.
type Options struct {
	// Reduced keeps the particle trail unmounted.
	Reduced bool
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// cellLayer records when each particle started falling; the particles
// themselves are read back from the emitter when drawing.
type cellLayer struct {
	mounted bool
	now     func() time.Time
	started map[effects.ParticleID]time.Time
}

func (l *cellLayer) Mounted() bool { return l.mounted }
func (l *cellLayer) Insert(effects.Particle) {}

func (l *cellLayer) Animate(id effects.ParticleID, _ effects.Transform) {
	l.started[id] = l.now()
}

func (l *cellLayer) Remove(id effects.ParticleID) {
	delete(l.started, id)
}

// Model implements the Bubble Tea preview.
type Model struct {
	site  content.Portfolio
	cfg   effects.Config
	clock func() time.Time

	sched    *effects.ManualScheduler
	scene    *effects.Scene
	layer    *cellLayer
	notifier *effects.PollingNotifier
	listener func(effects.Point)

	layout   layout
	width    int
	height   int
	scroll   int
	revealed map[string]int
}

// New builds a mounted preview of site.
func New(site content.Portfolio, opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	cfg := effects.DefaultConfig()
	m := &Model{
		site:     site,
		cfg:      cfg,
		clock:    clock,
		sched:    effects.NewManualScheduler(clock()),
		revealed: make(map[string]int),
		width:    80,
	}
	m.layer = &cellLayer{mounted: !opts.Reduced, now: m.sched.Now, started: make(map[effects.ParticleID]time.Time)}
	m.layout = newLayout(site, m.width)
	m.scene = effects.NewScene(cfg, effects.Host{
		Scheduler: m.sched,
		Layer:     m.layer,
		Mark:      m.mark,
	})
	m.notifier = effects.NewPollingNotifier(cfg, m.geometry, m.viewport, m.scene.Reveal.Handle)
	m.scene.Mount(m, m.notifier, func() []string { return m.layout.order })
	return m
}

// Listen makes the model the scene's pointer source.
func (m *Model) Listen(fn func(effects.Point)) func() {
	m.listener = fn
	return func() { m.listener = nil }
}

func (m *Model) mark(id string) {
	m.revealed[id]++
}

func (m *Model) geometry(id string) (effects.Rect, bool) {
	r, ok := m.layout.ranges[id]
	if !ok {
		return effects.Rect{}, false
	}
	return effects.Rect{
		Y: float64(r[0]-m.scroll) * cellH,
		W: float64(m.width) * cellW,
		H: float64(r[1]-r[0]) * cellH,
	}, true
}

func (m *Model) viewport() effects.Rect {
	return effects.Rect{W: float64(m.width) * cellW, H: float64(m.rows()) * cellH}
}

// rows is the height left for the page once the footer is drawn.
func (m *Model) rows() int {
	if m.height < 2 {
		return 1
	}
	return m.height - 1
}

func (m *Model) scrollBy(n int) {
	m.scroll += n
	maxScroll := len(m.layout.lines) - m.rows()
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	m.notifier.Poll()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = newLayout(m.site, m.width)
		m.scrollBy(0)
		return m, nil
	case frameMsg:
		m.sched.AdvanceTo(time.Time(msg))
		m.sched.Flush()
		m.notifier.Poll()
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.scene.Unmount()
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup":
			m.scrollBy(-m.rows())
		case "pgdown", " ":
			m.scrollBy(m.rows())
		case "home", "g":
			m.scrollBy(-len(m.layout.lines))
		case "end", "G":
			m.scrollBy(len(m.layout.lines))
		}
		return m, nil
	case tea.MouseMsg:
		m.sched.AdvanceTo(m.clock())
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.scrollBy(-3)
		case msg.Button == tea.MouseButtonWheelDown:
			m.scrollBy(3)
		case msg.Action == tea.MouseActionMotion && m.listener != nil:
			m.listener(effects.Point{X: (float64(msg.X) + 0.5) * cellW, Y: (float64(msg.Y) + 0.5) * cellH})
		}
		return m, nil
	}
	return m, nil
}

// Revealed reports how many times id has been revealed.
func (m *Model) Revealed(id string) int {
	return m.revealed[id]
}

// Live reports the particles currently on screen.
func (m *Model) Live() int {
	return m.scene.Emitter.Live()
}

// cellAt returns the cell containing pixel position p. Positions left of or
// above the screen map to negative cells.
func cellAt(p effects.Point) (x, y int) {
	return int(math.Floor(p.X / cellW)), int(math.Floor(p.Y / cellH))
}

type cell struct {
	r     rune
	glyph string
	color string
}

func (m *Model) grid() [][]cell {
	rows := m.rows()
	grid := make([][]cell, rows)
	for y := 0; y < rows; y++ {
		text := ""
		i := m.scroll + y
		if i < len(m.layout.lines) {
			id, ok := m.layout.sectionAt(i)
			if !ok || m.revealed[id] > 0 {
				text = m.layout.lines[i]
			}
		}
		text = runewidth.FillRight(runewidth.Truncate(text, m.width, ""), m.width)
		row := make([]cell, 0, m.width)
		for _, r := range text {
			row = append(row, cell{r: r})
		}
		grid[y] = row
	}

	now := m.sched.Now()
	for _, p := range m.scene.Emitter.Particles() {
		var elapsed time.Duration
		if start, ok := m.layer.started[p.ID]; ok {
			elapsed = now.Sub(start)
		}
		tr := p.At(elapsed)
		if tr.Opacity < 0.1 {
			continue
		}
		x, y := cellAt(effects.Point{X: p.Origin.X + tr.DX, Y: p.Origin.Y + tr.DY})
		if y < 0 || y >= rows || x < 0 || x >= len(grid[y]) {
			continue
		}
		grid[y][x].glyph = p.Glyph
		grid[y][x].color = p.Color
	}
	return grid
}

func (m *Model) styleFor(x, y int) lipgloss.Style {
	in := m.scene.Spotlight.Intensity(effects.Point{X: (float64(x) + 0.5) * cellW, Y: (float64(y) + 0.5) * cellH})
	switch {
	case in > m.cfg.SpotlightAlpha/2:
		return brightStyle
	case in > 0:
		return litStyle
	default:
		return dimStyle
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.height == 0 {
		return "loading..."
	}
	var b strings.Builder
	for y, row := range m.grid() {
		var run strings.Builder
		var cur lipgloss.Style
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(cur.Render(run.String()))
				run.Reset()
			}
		}
		for x, c := range row {
			if c.glyph != "" {
				flush()
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render(c.glyph))
				continue
			}
			s := m.styleFor(x, y)
			if run.Len() > 0 && s.GetForeground() != cur.GetForeground() {
				flush()
			}
			cur = s
			run.WriteRune(c.r)
		}
		flush()
		b.WriteByte('\n')
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf(" ✦ %d particles · %d/%d sections · q quit",
		m.Live(), len(m.revealed), len(m.layout.order))))
	return b.String()
}
