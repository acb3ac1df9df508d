package events

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type memHighScores struct {
	value   int
	saved   []int
	loadErr error
	saveErr error
}

func (m *memHighScores) Load() (int, error) { return m.value, m.loadErr }

func (m *memHighScores) Save(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, score)
	m.value = score
	return nil
}

type memRecorder struct {
	runs map[string][]int
}

func (m *memRecorder) SaveScore(gameID string, score int) (int64, error) {
	if m.runs == nil {
		m.runs = make(map[string][]int)
	}
	m.runs[gameID] = append(m.runs[gameID], score)
	return int64(len(m.runs[gameID])), nil
}

type countingSounds struct {
	eats, crashes int
}

func (c *countingSounds) PlayEat()   { c.eats++ }
func (c *countingSounds) PlayCrash() { c.crashes++ }

func newLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestSeedLoadsHighScore(t *testing.T) {
	g := snake.New()
	g.Reset(core.DefaultConfig())

	h := &Handler{HighScores: &memHighScores{value: 17}}
	h.Seed(g)

	if g.State().HighScore != 17 {
		t.Errorf("Expected high score 17, got %d", g.State().HighScore)
	}
}

func TestSeedLogsLoadError(t *testing.T) {
	var buf bytes.Buffer
	g := snake.New()
	g.Reset(core.DefaultConfig())

	h := &Handler{
		HighScores: &memHighScores{loadErr: errors.New("corrupt")},
		Logger:     newLogger(&buf),
	}
	h.Seed(g)

	if g.State().HighScore != 0 {
		t.Errorf("Expected high score 0 after load error, got %d", g.State().HighScore)
	}
	if !strings.Contains(buf.String(), "could not load high score") {
		t.Errorf("Expected warning in log, got %q", buf.String())
	}
}

func TestHandleEvents(t *testing.T) {
	tests := []struct {
		name        string
		res         core.StepResult
		wantSaved   []int
		wantRuns    []int
		wantEats    int
		wantCrashes int
	}{
		{
			name:     "ate",
			res:      core.StepResult{Events: []core.Event{core.EventAte}},
			wantEats: 1,
		},
		{
			name: "ate with new high score",
			res: core.StepResult{
				State:  core.GameState{Score: 5, HighScore: 5},
				Events: []core.Event{core.EventAte, core.EventNewHighScore},
			},
			wantSaved: []int{5},
			wantEats:  1,
		},
		{
			name: "crash records the run",
			res: core.StepResult{
				State:      core.GameState{HighScore: 9},
				Events:     []core.Event{core.EventCrashed},
				FinalScore: 3,
			},
			wantRuns:    []int{3},
			wantCrashes: 1,
		},
		{
			name: "crash with zero score is not recorded",
			res: core.StepResult{
				Events: []core.Event{core.EventCrashed},
			},
			wantCrashes: 1,
		},
		{
			name: "no events",
			res:  core.StepResult{State: core.GameState{Score: 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hs := &memHighScores{}
			rec := &memRecorder{}
			snd := &countingSounds{}
			h := &Handler{HighScores: hs, Recorder: rec, Sounds: snd, Logger: newLogger(&bytes.Buffer{})}

			h.Handle(snake.New(), tc.res)

			if !equalInts(hs.saved, tc.wantSaved) {
				t.Errorf("saved high scores = %v, expected %v", hs.saved, tc.wantSaved)
			}
			if !equalInts(rec.runs["snake"], tc.wantRuns) {
				t.Errorf("recorded runs = %v, expected %v", rec.runs["snake"], tc.wantRuns)
			}
			if snd.eats != tc.wantEats || snd.crashes != tc.wantCrashes {
				t.Errorf("sounds = %d eats, %d crashes; expected %d, %d",
					snd.eats, snd.crashes, tc.wantEats, tc.wantCrashes)
			}
		})
	}
}

func TestHandleSaveErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		HighScores: &memHighScores{saveErr: errors.New("disk full")},
		Logger:     newLogger(&buf),
	}

	h.Handle(snake.New(), core.StepResult{
		State:  core.GameState{Score: 1, HighScore: 1},
		Events: []core.Event{core.EventNewHighScore},
	})

	if !strings.Contains(buf.String(), "could not save high score") {
		t.Errorf("Expected warning in log, got %q", buf.String())
	}
}

func TestNilCollaborators(t *testing.T) {
	g := snake.New()
	g.Reset(core.DefaultConfig())
	res := core.StepResult{
		Events:     []core.Event{core.EventAte, core.EventNewHighScore, core.EventCrashed},
		FinalScore: 4,
	}

	(&Handler{Logger: newLogger(&bytes.Buffer{})}).Handle(g, res)
	(&Handler{}).Seed(g)

	var h *Handler
	h.Handle(g, res)
	h.Seed(g)
}

// Drives a real game until it eats and checks the high score reaches storage.
func TestHandleRealGame(t *testing.T) {
	g := snake.New()
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 30
	cfg.Seed = 3
	g.Reset(cfg)

	hs := &memHighScores{}
	h := &Handler{HighScores: hs, Logger: newLogger(&bytes.Buffer{})}
	h.Seed(g)

	for i := 0; i < 5000 && g.State().Score == 0; i++ {
		h.Handle(g, g.Step(steerTowardsApple(g)))
	}

	if g.State().Score == 0 {
		t.Fatal("snake never ate an apple")
	}
	if hs.value != g.State().HighScore {
		t.Errorf("stored high score %d, game reports %d", hs.value, g.State().HighScore)
	}
}

func steerTowardsApple(g *snake.Game) core.InputFrame {
	in := core.NewInputFrame()
	apple, ok := g.Apple()
	if !ok {
		return in
	}
	head := g.Segments()[0]
	switch {
	case apple.X > head.X:
		in.Set(core.ActionRight)
	case apple.X < head.X:
		in.Set(core.ActionLeft)
	case apple.Y > head.Y:
		in.Set(core.ActionDown)
	case apple.Y < head.Y:
		in.Set(core.ActionUp)
	}
	return in
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
