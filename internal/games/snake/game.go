package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Point is a grid cell position (column, row).
type Point struct {
	X, Y int
}

// Add returns p moved by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Wrap folds p back onto a w×h grid.
func (p Point) Wrap(w, h int) Point {
	return Point{X: ((p.X % w) + w) % w, Y: ((p.Y % h) + h) % h}
}

// In reports whether p lies on a w×h grid.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Rules selects how the snake interacts with the grid edges and its own body.
type Rules struct {
	Wrap          bool // Head wraps to the opposite edge instead of crashing
	SelfCollision bool // Running into the body ends the run
}

// Variant is a named rule preset.
type Variant struct {
	ID          string
	Title       string
	Description string
	Rules       Rules
}

// Registered variants.
var (
	VariantClassic = Variant{
		ID:          "snake",
		Title:       "Snake",
		Description: "Edges wrap around, biting yourself resets the run",
		Rules:       Rules{Wrap: true, SelfCollision: true},
	}
	VariantWrap = Variant{
		ID:          "snake_wrap",
		Title:       "Snake (Wrap)",
		Description: "Edges wrap around, the snake may cross itself",
		Rules:       Rules{Wrap: true, SelfCollision: false},
	}
	VariantWalls = Variant{
		ID:          "snake_walls",
		Title:       "Snake (Walls)",
		Description: "Edges are walls, any collision resets the run",
		Rules:       Rules{Wrap: false, SelfCollision: true},
	}
)

// Variants returns all rule presets in menu order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantWrap, VariantWalls}
}

const (
	// DefaultGridW and DefaultGridH give a 640×480 field of 20px cells.
	DefaultGridW = 32
	DefaultGridH = 24

	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 1

	// spawnAttempts bounds rejection sampling before falling back to a scan of free cells.
	spawnAttempts = 64
)

// Package-level settings applied on Reset, following the platform's
// configure-before-create pattern.
var (
	gridW = DefaultGridW
	gridH = DefaultGridH
)

// SetGridSize sets the playfield size in cells for games reset afterwards.
// Non-positive values restore the defaults.
func SetGridSize(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = DefaultGridW, DefaultGridH
	}
	gridW, gridH = w, h
}

// GridSize returns the configured playfield size in cells.
func GridSize() (int, int) {
	return gridW, gridH
}

// RequiredScreen returns the terminal size needed to show a w×h grid.
func RequiredScreen(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2 + hudHeight
}

// Game implements the Snake game loop.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64

	// Grid
	width  int
	height int

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move

	apple    Point
	hasApple bool

	score     int
	highScore int
	runs      int // Completed runs (collisions and full-board wins)

	// Screen layout
	screenW  int
	screenH  int
	board    core.Rect // Playfield including border
	paused   bool
	tooSmall bool
}

// NewVariant creates a game with the given rule preset.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// New creates the classic wrap + self-collision game.
func New() *Game {
	return NewVariant(VariantClassic)
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Description returns the variant's rule summary.
func (g *Game) Description() string { return g.variant.Description }

// Rules returns the active rules.
func (g *Game) Rules() Rules { return g.variant.Rules }

// SetHighScore seeds the stored high score. It never lowers the current value.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Reset initializes the game for the given screen and seed.
// The high score survives resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.runs = 0
	g.paused = false
	g.width, g.height = gridW, gridH
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.resetRun()
}

// Resize recomputes the screen layout without touching game state.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH

	boardW, boardH := RequiredScreen(g.width, g.height)
	boardH -= hudHeight
	g.board = core.NewRect((screenW-boardW)/2, hudHeight, boardW, boardH)
	g.tooSmall = !g.board.Fits(screenW, screenH)
}

// resetRun restores the initial run state: one centered segment heading right.
func (g *Game) resetRun() {
	g.snake = []Point{{X: g.width / 2, Y: g.height / 2}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.spawnApple()
}

// spawnApple places the apple on a uniformly random free cell.
// Returns false when the snake covers the whole grid.
func (g *Game) spawnApple() bool {
	for range spawnAttempts {
		p := Point{X: g.rng.Intn(g.width), Y: g.rng.Intn(g.height)}
		if !g.isSnakeAt(p) {
			g.apple = p
			g.hasApple = true
			return true
		}
	}

	// Crowded board: pick among the remaining free cells directly
	var free []Point
	for y := range g.height {
		for x := range g.width {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.hasApple = false
		return false
	}
	g.apple = free[g.rng.Intn(len(free))]
	g.hasApple = true
	return true
}

// isSnakeAt checks if any segment occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	result := core.StepResult{}

	if input.Has(core.ActionRestart) {
		g.paused = false
		g.resetRun()
		result.State = g.State()
		return result
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		result.State = g.State()
		return result
	}

	g.processInput(input)
	g.move(&result)

	result.State = g.State()
	return result
}

// processInput buffers the last direction key that does not reverse the
// direction of the last completed move.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Directions() {
		var d Direction
		switch a {
		case core.ActionUp:
			d = DirUp
		case core.ActionDown:
			d = DirDown
		case core.ActionLeft:
			d = DirLeft
		case core.ActionRight:
			d = DirRight
		default:
			continue
		}

		if d != g.direction.Opposite() {
			g.nextDir = d
		}
	}
}

// move advances the snake one cell and resolves collisions and eating.
func (g *Game) move(result *core.StepResult) {
	g.direction = g.nextDir

	next := g.snake[0].Add(g.direction.Delta())
	if g.variant.Rules.Wrap {
		next = next.Wrap(g.width, g.height)
	} else if !next.In(g.width, g.height) {
		g.endRun(result)
		return
	}

	// The tail moves away this tick, so it is not an obstacle
	if g.variant.Rules.SelfCollision {
		for _, seg := range g.snake[:len(g.snake)-1] {
			if seg == next {
				g.endRun(result)
				return
			}
		}
	}

	if g.hasApple && next == g.apple {
		g.snake = append(g.snake, Point{})
		copy(g.snake[1:], g.snake[:len(g.snake)-1])
		g.snake[0] = next

		g.score++
		result.Events = append(result.Events, core.EventAte)
		if g.score > g.highScore {
			g.highScore = g.score
			result.Events = append(result.Events, core.EventNewHighScore)
		}

		if len(g.snake) >= g.width*g.height || !g.spawnApple() {
			g.endRun(result)
		}
		return
	}

	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = next
}

// endRun records the finished run and immediately starts a new one.
func (g *Game) endRun(result *core.StepResult) {
	if g.score > g.highScore {
		g.highScore = g.score
		result.Events = append(result.Events, core.EventNewHighScore)
	}
	result.Events = append(result.Events, core.EventCrashed)
	result.FinalScore = g.score
	g.runs++
	g.resetRun()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		needW, needH := RequiredScreen(g.width, g.height)
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Resize to %dx%d", needW, needH))
		return
	}

	dst.DrawBox(g.board, core.ColorCyan)

	if g.hasApple {
		g.drawCell(dst, g.apple, '█', core.ColorRed)
	}

	// Body first so the head stays visible when segments overlap
	for i := len(g.snake) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		g.drawCell(dst, g.snake[i], '█', color)
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell fills one grid cell, which spans cellWidth terminal columns.
func (g *Game) drawCell(dst *core.Screen, p Point, r rune, c core.Color) {
	sx := g.board.X + 1 + p.X*cellWidth
	sy := g.board.Y + 1 + p.Y
	for i := range cellWidth {
		dst.SetCell(sx+i, sy, r, c)
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  High: %d", g.variant.Title, g.score, g.highScore)
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
}

// renderOverlay draws a centered two-line message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// Caption returns the window title text with live score and high score.
func (g *Game) Caption() string {
	return fmt.Sprintf("Snake - Score: %d High: %d", g.score, g.highScore)
}

// State returns the current game state.
// A collision resets the run in place, so the game is never over.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Paused:    g.paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, High: %d, Runs: %d\n", g.tick, g.score, g.highScore, g.runs)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.snake), g.direction)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Apple: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.apple.X, g.apple.Y)
	}
	fmt.Fprintf(&b, "Paused: %v, TooSmall: %v\n", g.paused, g.tooSmall)
	return b.String()
}
