package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Score     int
	HighScore int
	Runs      int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	AppleX    int
	AppleY    int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Score:     g.score,
		HighScore: g.highScore,
		Runs:      g.runs,
		SnakeLen:  len(g.snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       g.direction,
		AppleX:    g.apple.X,
		AppleY:    g.apple.Y,
		State:     state,
	}
}

// Segments returns a copy of the snake body, head first.
func (g *Game) Segments() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Apple returns the current apple position and whether one is placed.
func (g *Game) Apple() (Point, bool) {
	return g.apple, g.hasApple
}
