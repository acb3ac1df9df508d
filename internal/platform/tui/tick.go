// Package tui runs snake in the terminal with Bubble Tea, locally or over SSH.
// It handles the tick loop, input mapping, menus and the scoreboard.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the game model that scheduled it, so ticks still in
// flight when a game is replaced do not drive the next one.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

func nextLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after the
// interval implied by tickRate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
