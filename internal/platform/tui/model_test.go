package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingGame remembers what the host asked of it.
type recordingGame struct {
	resets []core.RuntimeConfig
	inputs []core.InputFrame
	state  core.GameState
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	g.inputs = append(g.inputs, cp)
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "ARENA")
}

func (g *recordingGame) State() core.GameState { return g.state }

func TestModelReservesHelpLine(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60}, nil)
	m.Init()

	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, expected 1", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 40 || got.ScreenH != 19 {
		t.Errorf("game area = %dx%d, expected 40x19", got.ScreenW, got.ScreenH)
	}

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Errorf("View() has %d lines, expected 20", len(lines))
	}
	if !strings.Contains(lines[0], "ARENA") {
		t.Errorf("first line = %q, expected the game screen", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "fire") {
		t.Errorf("last line = %q, expected key help", lines[len(lines)-1])
	}
}

func TestModelDeliversInputOnTick(t *testing.T) {
	g := &recordingGame{}
	var model tea.Model = NewModel(g, core.DefaultConfig(), nil)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model, cmd := model.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	model, _ = model.Update(TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionFire) {
		t.Errorf("first tick input = %v, expected left and fire", g.inputs[0].Actions)
	}
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("second tick input = %v, expected cleared", g.inputs[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	model, cmd := NewModel(g, core.DefaultConfig(), nil).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
	if model.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	g := &recordingGame{}
	var model tea.Model = NewModel(g, core.DefaultConfig(), nil)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resets) != 1 || g.resets[0].ScreenW != 100 || g.resets[0].ScreenH != 29 {
		t.Fatalf("resets = %+v, expected one at 100x29", g.resets)
	}

	// Same size again is a no-op.
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resets) != 1 {
		t.Errorf("Reset called %d times, expected 1", len(g.resets))
	}
}

// resizingGame follows resizes itself instead of restarting.
type resizingGame struct {
	recordingGame
	resizes []core.RuntimeConfig
}

func (g *resizingGame) Resize(cfg core.RuntimeConfig) {
	g.resizes = append(g.resizes, cfg)
}

func TestModelResizeKeepsRunningGame(t *testing.T) {
	g := &resizingGame{}
	var model tea.Model = NewModel(g, core.DefaultConfig(), nil)
	model.Init()

	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resets) != 1 {
		t.Errorf("Reset called %d times, expected only the initial one", len(g.resets))
	}
	if len(g.resizes) != 1 || g.resizes[0].ScreenW != 100 || g.resizes[0].ScreenH != 29 {
		t.Errorf("resizes = %+v, expected one at 100x29", g.resizes)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '#', core.ColorBrightGreen)
	s.DrawTextColored(0, 1, "日z", core.ColorGray)

	// Without a color terminal lipgloss emits plain text.
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}
