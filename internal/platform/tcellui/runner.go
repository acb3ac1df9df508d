// Package tcellui runs a game directly on a tcell screen with an explicit
// fixed-rate loop: poll input into a frame, step, draw, wait for the ticker.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/events"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var colorMap = map[core.Color]tcell.Color{
	core.ColorDefault:     tcell.ColorDefault,
	core.ColorRed:         tcell.ColorMaroon,
	core.ColorGreen:       tcell.ColorGreen,
	core.ColorYellow:      tcell.ColorOlive,
	core.ColorBlue:        tcell.ColorNavy,
	core.ColorCyan:        tcell.ColorTeal,
	core.ColorWhite:       tcell.ColorSilver,
	core.ColorBrightRed:   tcell.ColorRed,
	core.ColorBrightGreen: tcell.ColorLime,
	core.ColorBrightCyan:  tcell.ColorAqua,
	core.ColorGray:        tcell.ColorGray,
}

func style(c core.Color) tcell.Style {
	tc, ok := colorMap[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tc)
}

// Runner drives one game on a tcell screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	events *events.Handler
	config core.RuntimeConfig
	buf    *core.Screen
	frame  core.InputFrame
}

// NewRunner creates a runner on an initialized screen. The handler may be nil.
func NewRunner(screen tcell.Screen, game registry.Game, handler *events.Handler, cfg core.RuntimeConfig) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	cfg.ScreenW, cfg.ScreenH = screen.Size()

	return &Runner{
		screen: screen,
		game:   game,
		events: handler,
		config: cfg,
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:  core.NewInputFrame(),
	}
}

// Run opens the terminal, plays until quit or ctx is cancelled, and restores
// the terminal on return.
func Run(ctx context.Context, game registry.Game, handler *events.Handler, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return NewRunner(screen, game, handler, cfg).Loop(ctx)
}

// Loop runs the game until a quit key or ctx cancellation.
func (r *Runner) Loop(ctx context.Context) error {
	r.start()

	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := r.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(r.config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			if !r.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			r.tick()
			r.draw()
		}
	}
}

// start resets the game for the current screen and loads the high score.
func (r *Runner) start() {
	r.screen.HideCursor()
	r.game.Reset(r.config)
	r.events.Seed(r.game)
	r.draw()
}

// handleEvent returns false when the player asked to quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(keyName(ev))
	case *tcell.EventResize:
		r.resize()
	}
	return true
}

// handleKey records the action for the next tick.
func (r *Runner) handleKey(name string) bool {
	switch action := core.KeyAction(name); action {
	case core.ActionQuit:
		return false
	case core.ActionNone, core.ActionBack, core.ActionConfirm:
	default:
		r.frame.Set(action)
	}
	return true
}

func (r *Runner) resize() {
	r.config.ScreenW, r.config.ScreenH = r.screen.Size()
	r.buf.Resize(r.config.ScreenW, r.config.ScreenH)
	if g, ok := r.game.(interface{ Resize(w, h int) }); ok {
		g.Resize(r.config.ScreenW, r.config.ScreenH)
	} else {
		r.game.Reset(r.config)
	}
	r.screen.Sync()
	r.draw()
}

func (r *Runner) tick() {
	result := r.game.Step(r.frame)
	r.events.Handle(r.game, result)
	r.frame.Clear()
}

// draw copies the game's cell buffer to the terminal.
func (r *Runner) draw() {
	r.game.Render(r.buf)
	r.screen.Clear()
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			if cell.Rune == ' ' && cell.Color == core.ColorDefault {
				continue
			}
			r.screen.SetContent(x, y, cell.Rune, nil, style(cell.Color))
		}
	}
	r.screen.Show()
}

// keyName converts a tcell key event to the shared key naming.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}
