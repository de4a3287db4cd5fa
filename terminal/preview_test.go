package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elbow/core"
	"elbow/export"
	"elbow/logging"
)

func newTestPreview(t *testing.T, mode core.Mode) (*Preview, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 20)
	t.Cleanup(screen.Fini)

	st := State{
		Origin:      export.Node{Box: core.NewBox(0, 0, 100, 40), Label: "A"},
		Destination: export.Node{Box: core.NewBox(200, 0, 100, 40), Label: "B"},
		Mode:        mode,
		Dent:        20,
		Style:       export.DefaultStyle(),
	}
	return New(screen, st, logging.Discard()), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(runes[0])
	}
	return sb.String()
}

func TestHandleKeyCyclesModes(t *testing.T) {
	p, _ := newTestPreview(t, core.RightToLeft)

	assert.False(t, p.HandleKey(key(tcell.KeyTab)))
	assert.Equal(t, core.RightToTop, p.State().Mode)
	assert.Equal(t, core.RightToTop, p.Scene().Result.Mode)

	p.HandleKey(key(tcell.KeyBacktab))
	p.HandleKey(key(tcell.KeyBacktab))
	assert.Equal(t, core.TopToBottom, p.State().Mode)
}

func TestHandleKeyMovesSelectedBox(t *testing.T) {
	p, _ := newTestPreview(t, core.RightToLeft)

	p.HandleKey(key(tcell.KeyRight))
	assert.Equal(t, 210.0, p.State().Destination.Box.Left)
	assert.Equal(t, core.Pt(210, 20), p.Scene().Result.Path.End())

	p.HandleKey(char('o'))
	p.HandleKey(key(tcell.KeyDown))
	assert.Equal(t, 20.0, p.State().Origin.Box.Top)
	assert.Equal(t, 0.0, p.State().Destination.Box.Top)
}

func TestHandleKeyChangesDent(t *testing.T) {
	p, _ := newTestPreview(t, core.RightToLeft)

	p.HandleKey(char('+'))
	assert.Equal(t, 25.0, p.State().Dent)
	assert.Equal(t, core.Pt(125, 20), p.Scene().Result.Path.Points[1])

	for i := 0; i < 10; i++ {
		p.HandleKey(char('-'))
	}
	assert.Equal(t, 0.0, p.State().Dent)
}

func TestHandleKeyTogglesDirect(t *testing.T) {
	p, _ := newTestPreview(t, core.RightToLeft)

	p.HandleKey(char('d'))
	assert.Equal(t, core.Direct, p.State().Mode)
	assert.Equal(t, "direct", p.Scene().Result.Branch)
	assert.Equal(t, 2, p.Scene().Result.Path.Len())

	p.HandleKey(char('d'))
	assert.Equal(t, core.RightToLeft, p.State().Mode)
}

func TestHandleKeyQuits(t *testing.T) {
	p, _ := newTestPreview(t, core.RightToLeft)
	assert.True(t, p.HandleKey(char('q')))
	assert.True(t, p.HandleKey(key(tcell.KeyEscape)))
	assert.True(t, p.HandleKey(key(tcell.KeyCtrlC)))
	assert.False(t, p.HandleKey(char('x')))
}

func TestDraw(t *testing.T) {
	p, screen := newTestPreview(t, core.RightToLeft)
	p.Draw()

	// Default cells are 10x20 layout units with one cell of padding.
	assert.Equal(t, " ┌─────────┐         ┌─────────┐", strings.TrimRight(screenRow(screen, 1), " "))
	assert.Contains(t, screenRow(screen, 2), "A")
	assert.Contains(t, screenRow(screen, 2), "▶")

	_, height := screen.Size()
	status := screenRow(screen, height-1)
	assert.Contains(t, status, "Mode: RIGHT_TO_LEFT | opposite/direct | Dent: 20 | Moving: destination")
}

func TestStatusLineShowsResolvedAutoMode(t *testing.T) {
	p, _ := newTestPreview(t, core.Horizontal)
	assert.Contains(t, p.StatusLine(), "Mode: HORIZONTAL -> RIGHT_TO_LEFT")
}

func TestLoop(t *testing.T) {
	p, screen := newTestPreview(t, core.RightToLeft)

	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	p.Loop()

	assert.Equal(t, core.RightToTop, p.State().Mode)
	assert.Equal(t, 25.0, p.State().Dent)
}
