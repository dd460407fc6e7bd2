package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/walker"
)

const defaultFPS = 5

type TickMsg time.Time

// LiveModel steps a walk on a timer and draws every state.
type LiveModel struct {
	name     string
	grid     *grid.Grid
	start    walker.State
	stepper  *walker.Stepper
	trail    map[grid.Coord]bool
	fps      int
	running  bool
	showHelp bool
}

// NewLiveModel prepares a walk on g from start. fps <= 0 uses the default.
func NewLiveModel(name string, g *grid.Grid, start grid.Coord, h grid.Heading, fps int) LiveModel {
	if fps <= 0 {
		fps = defaultFPS
	}
	m := LiveModel{
		name:    name,
		grid:    g,
		start:   walker.State{Pos: start, Heading: h},
		fps:     fps,
		running: true,
	}
	m.reset()
	return m
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the walk.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.running = !m.running
		case "n", "right":
			m.advance()
		case "r":
			m.reset()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) reset() {
	m.stepper = walker.NewStepper(m.grid, m.start)
	m.trail = make(map[grid.Coord]bool)
}

func (m *LiveModel) advance() {
	if m.Done() {
		return
	}
	m.trail[m.stepper.State().Pos] = true
	m.stepper.Advance()
}

// Done reports whether the walk has reached an outcome.
func (m LiveModel) Done() bool {
	return m.stepper.Outcome() != walker.Running
}

func (m LiveModel) Outcome() walker.Outcome { return m.stepper.Outcome() }

func (m LiveModel) Steps() int { return m.stepper.Steps() }

func (m LiveModel) View() string {
	state := m.stepper.State()
	mazeView := Panel(strings.ToUpper(m.name), RenderMaze(m.grid, state, m.trail))

	status := "RUNNING"
	switch {
	case m.Done():
		status = RenderOutcome(m.Outcome())
	case !m.running:
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(status + "\n\n")
	s.WriteString(Stat("Steps", m.Steps()) + "\n")
	s.WriteString(Stat("Position", state.Pos) + "\n")
	s.WriteString(Stat("Heading", state.Heading) + "\n")
	s.WriteString(Stat("Size", fmt.Sprintf("%dx%d", m.grid.Width, m.grid.Height)) + "\n")
	s.WriteString(Stat("Theme", CurrentTheme.Name) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause N:Step R:Reset\nT:Theme ?:Help Q:Quit"))

	view := lipgloss.JoinHorizontal(lipgloss.Top, mazeView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + view
	}
	return view
}

const helpText = `KEYBOARD SHORTCUTS
  Space/P  pause or resume
  N/Right  single step
  R        restart the walk
  T        cycle themes
  ?        toggle this help
  Q        quit`

// RunLive opens the live view in the alternate screen and returns the
// outcome reached when the user quits.
func RunLive(name string, g *grid.Grid, start grid.Coord, h grid.Heading, fps int) (walker.Outcome, error) {
	final, err := tea.NewProgram(NewLiveModel(name, g, start, h, fps), tea.WithAltScreen()).Run()
	if err != nil {
		return walker.Running, err
	}
	if m, ok := final.(LiveModel); ok {
		return m.Outcome(), nil
	}
	return walker.Running, nil
}
