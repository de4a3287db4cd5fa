// Package terminal is an interactive preview of a routed connector.
//
// Keys:
//
//	tab / shift-tab   next / previous routing mode
//	arrows            move the selected box by one cell
//	o                 select the other box
//	+ / -             grow / shrink the dent
//	d                 toggle the direct two-point mode
//	a                 toggle the arrowhead
//	q, esc, ctrl-c    quit
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"elbow/canvas"
	"elbow/connections"
	"elbow/core"
	"elbow/export"
)

// DentStep is the dent change per +/- key press.
const DentStep = 5.0

// State is everything the preview lets the user change.
type State struct {
	Origin      export.Node
	Destination export.Node
	Mode        core.Mode
	Dent        float64
	Style       export.Style
}

// Preview draws a scene on a tcell screen and edits it from key events.
type Preview struct {
	screen   tcell.Screen
	state    State
	exporter *export.ASCIIExporter
	logger   *slog.Logger

	moveOrigin bool
	lastMode   core.Mode
	scene      *export.Scene
}

// New creates a preview on an initialized screen.
func New(screen tcell.Screen, st State, logger *slog.Logger) *Preview {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Preview{
		screen:   screen,
		state:    st,
		exporter: export.NewASCIIExporter(),
		logger:   logger,
		lastMode: st.Mode,
	}
	if p.lastMode == core.Direct {
		p.lastMode = core.TopToBottom
	}
	p.route()
	return p
}

// Run opens the terminal, runs the preview until the user quits and
// restores the terminal.
func Run(st State, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	New(screen, st, logger).Loop()
	return nil
}

// Loop handles events until a quit key arrives or the screen is finalized.
func (p *Preview) Loop() {
	p.Draw()
	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			p.screen.Sync()
			p.Draw()
		case *tcell.EventKey:
			if p.HandleKey(ev) {
				return
			}
			p.Draw()
		}
	}
}

// State returns the current state.
func (p *Preview) State() State {
	return p.state
}

// Scene returns the most recently routed scene.
func (p *Preview) Scene() *export.Scene {
	return p.scene
}

// HandleKey applies one key press and reports whether the preview should
// quit.
func (p *Preview) HandleKey(ev *tcell.EventKey) bool {
	cw, ch := p.exporter.Options.CellWidth, p.exporter.Options.CellHeight

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		p.setMode(p.state.Mode.Next())
	case tcell.KeyBacktab:
		p.setMode(p.state.Mode.Prev())
	case tcell.KeyLeft:
		p.move(-cw, 0)
	case tcell.KeyRight:
		p.move(cw, 0)
	case tcell.KeyUp:
		p.move(0, -ch)
	case tcell.KeyDown:
		p.move(0, ch)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'o':
			p.moveOrigin = !p.moveOrigin
		case '+', '=':
			p.state.Dent += DentStep
			p.route()
		case '-':
			p.state.Dent = max(p.state.Dent-DentStep, 0)
			p.route()
		case 'd':
			if p.state.Mode == core.Direct {
				p.setMode(p.lastMode)
			} else {
				p.setMode(core.Direct)
			}
		case 'a':
			p.state.Style.Arrow = !p.state.Style.Arrow
			p.route()
		}
	}
	return false
}

func (p *Preview) setMode(m core.Mode) {
	if m != core.Direct {
		p.lastMode = m
	}
	p.state.Mode = m
	p.route()
}

func (p *Preview) move(dx, dy float64) {
	d := core.Pt(dx, dy)
	if p.moveOrigin {
		p.state.Origin.Box = p.state.Origin.Box.Translate(d)
	} else {
		p.state.Destination.Box = p.state.Destination.Box.Translate(d)
	}
	p.route()
}

func (p *Preview) route() {
	router := connections.NewRouter(
		connections.WithDentSize(p.state.Dent),
		connections.WithStrokeWidth(p.state.Style.StrokeWidth),
		connections.WithLogger(p.logger),
	)
	p.scene = &export.Scene{
		Origin:      p.state.Origin,
		Destination: p.state.Destination,
		Result:      router.Route(p.state.Origin.Box, p.state.Destination.Box, p.state.Mode),
		Style:       p.state.Style,
	}
}

// Draw paints the scene and the status line.
func (p *Preview) Draw() {
	p.screen.Clear()
	width, height := p.screen.Size()

	c, err := p.exporter.Render(p.scene)
	if err != nil {
		p.drawText(0, 0, tcell.StyleDefault.Foreground(tcell.ColorRed), err.Error())
	} else {
		for y, row := range c.Matrix() {
			if y >= height-1 {
				break
			}
			for x, r := range row {
				if x >= width {
					break
				}
				if r == 0 || r == ' ' {
					continue
				}
				style := tcell.StyleDefault
				if name := c.ColorAt(canvas.Cell{X: x, Y: y}); name != "" {
					style = style.Foreground(tcell.GetColor(name))
				}
				p.screen.SetContent(x, y, r, nil, style)
			}
		}
	}

	p.drawText(0, height-1, tcell.StyleDefault.Reverse(true), p.StatusLine())
	p.screen.Show()
}

// StatusLine describes the mode, the routing branch and the selection.
func (p *Preview) StatusLine() string {
	res := p.scene.Result
	mode := res.Requested.String()
	if res.Mode != res.Requested {
		mode += " -> " + res.Mode.String()
	}
	selected := "destination"
	if p.moveOrigin {
		selected = "origin"
	}
	return fmt.Sprintf(" Mode: %s | %s | Dent: %g | Moving: %s | tab mode, arrows move, o select, +/- dent, q quit ",
		mode, res.Branch, p.state.Dent, selected)
}

func (p *Preview) drawText(x, y int, style tcell.Style, text string) {
	width, _ := p.screen.Size()
	for _, r := range text {
		if x >= width {
			return
		}
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
