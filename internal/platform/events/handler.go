// Package events turns the results of a game tick into side effects:
// persisting the high score, recording finished runs and playing sounds.
// Games stay pure; every frontend routes its StepResults through a Handler.
package events

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// HighScores loads and stores the all-time high score.
type HighScores interface {
	Load() (int, error)
	Save(score int) error
}

// Recorder keeps the history of finished runs.
type Recorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Sounds plays effects for game events.
type Sounds interface {
	PlayEat()
	PlayCrash()
}

// Handler reacts to game events. Any collaborator may be nil.
type Handler struct {
	HighScores HighScores
	Recorder   Recorder
	Sounds     Sounds
	Logger     *log.Logger
}

// Seed loads the stored high score into the game.
// A read failure is logged and the game starts from 0.
func (h *Handler) Seed(g registry.Game) {
	if h == nil || h.HighScores == nil {
		return
	}
	score, err := h.HighScores.Load()
	if err != nil {
		h.logger().Warn("could not load high score", "error", err)
	}
	g.SetHighScore(score)
}

// Handle applies the side effects of one tick. Persistence errors are
// logged and never interrupt the game.
func (h *Handler) Handle(g registry.Game, res core.StepResult) {
	if h == nil || len(res.Events) == 0 {
		return
	}
	logger := h.logger()

	for _, ev := range res.Events {
		switch ev {
		case core.EventAte:
			if h.Sounds != nil {
				h.Sounds.PlayEat()
			}

		case core.EventNewHighScore:
			high := res.State.HighScore
			logger.Debug("new high score", "game", g.ID(), "score", high)
			if h.HighScores != nil {
				if err := h.HighScores.Save(high); err != nil {
					logger.Warn("could not save high score", "score", high, "error", err)
				}
			}

		case core.EventCrashed:
			logger.Info("run ended", "game", g.ID(), "score", res.FinalScore)
			if h.Sounds != nil {
				h.Sounds.PlayCrash()
			}
			if h.Recorder != nil && res.FinalScore > 0 {
				if _, err := h.Recorder.SaveScore(g.ID(), res.FinalScore); err != nil {
					logger.Warn("could not record run", "game", g.ID(), "error", err)
				}
			}
		}
	}
}

func (h *Handler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}
