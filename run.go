package nodal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// defaultTPS is the host tick rate when RunConfig.TPS is zero. The canvas
// itself is cadence-agnostic; this just sets how often Tick and input
// polling run.
const defaultTPS = 100

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the fixed window size in pixels.
	// The window is not resizable.
	Width, Height int
	// TPS is the tick rate. Zero means defaultTPS.
	TPS int
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// OnMessage receives the messages Update hands back, if set.
	OnMessage func(Message)
	// OnTick runs once per tick before input is processed. Hosts use it
	// for their own polling, e.g. key bindings.
	OnTick func()
}

// Run opens a fixed-size window centered on the screen and drives the
// canvas until the window is closed. It owns the event loop: each tick it
// advances animations, converts raw mouse state into canvas events, and
// each frame it renders the canvas's geometry layers.
//
// Hosts that need more control can implement ebiten.Game themselves and
// call Canvas.Tick, Canvas.Update, Canvas.Draw, and RenderGeometry
// directly; Run is only a convenience.
func Run(c *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("nodal: window size %dx%d is not positive", cfg.Width, cfg.Height)
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = defaultTPS
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	centerWindow(cfg.Width, cfg.Height)
	ebiten.SetTPS(tps)

	g := &game{
		canvas: c,
		cfg:    cfg,
		bounds: Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		dt:     1.0 / float32(tps),
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("nodal: run: %w", err)
	}
	return nil
}

// centerWindow positions the window in the middle of the primary monitor.
func centerWindow(w, h int) {
	mw, mh := ebiten.Monitor().Size()
	if mw <= 0 || mh <= 0 {
		return
	}
	ebiten.SetWindowPosition((mw-w)/2, (mh-h)/2)
}

// hostButtons maps canvas buttons to the ebiten buttons the host polls.
var hostButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// game adapts a Canvas to ebiten.Game with a fixed layout.
type game struct {
	canvas *Canvas
	cfg    RunConfig
	bounds Rect
	dt     float32

	buttonDown [len(hostButtons)]bool
	lastCursor Vec2
	hadCursor  bool
}

func (g *game) Update() error {
	if g.cfg.OnTick != nil {
		g.cfg.OnTick()
	}
	g.canvas.Tick(g.dt)

	cursor := g.readCursor()

	// Button edges first, so a press and the drag that follows it arrive
	// in separate events like they would from a windowing system.
	for i, b := range hostButtons {
		down := ebiten.IsMouseButtonPressed(b.ebiten)
		if down != g.buttonDown[i] {
			g.buttonDown[i] = down
			if down {
				g.dispatch(ButtonPressed(b.button), cursor)
			} else {
				g.dispatch(ButtonReleased(b.button), cursor)
			}
		}
	}

	if cursor.Available && (!g.hadCursor || cursor.Position != g.lastCursor) {
		g.dispatch(CursorMoved(), cursor)
	}
	g.hadCursor = cursor.Available
	if cursor.Available {
		g.lastCursor = cursor.Position
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.dispatch(WheelScrolled(dy), cursor)
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	RenderGeometry(screen, g.canvas.Draw(g.bounds))

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// readCursor polls the mouse position, reporting it unavailable when it
// lies outside the fixed layout bounds.
func (g *game) readCursor() Cursor {
	x, y := ebiten.CursorPosition()
	pos := Vec2{float64(x), float64(y)}
	if !g.bounds.Contains(pos.X, pos.Y) {
		return CursorUnavailable
	}
	return Cursor{Position: pos, Available: true}
}

// dispatch feeds one event to the canvas and forwards any message.
func (g *game) dispatch(ev Event, cursor Cursor) {
	_, msg := g.canvas.Update(ev, g.bounds, cursor)
	if msg != nil && g.cfg.OnMessage != nil {
		g.cfg.OnMessage(*msg)
	}
}
