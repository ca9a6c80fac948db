// Package tui provides the Bubble Tea integration for Pong.
// It handles the terminal UI loop, input mapping, replay capture and playback.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the tick loop
// that scheduled it; ticks from an earlier loop are dropped so at most one
// loop runs at a time.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// loopGen hands out tick loop generations, unique across models so a session
// that starts a new match never sees ticks from the previous one.
var loopGen atomic.Int64

func nextGen() int {
	return int(loopGen.Add(1))
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// tick interval.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
