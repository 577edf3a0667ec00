// Package tui provides the Bubble Tea integration for the minigames platform.
// It handles the terminal UI loop, input mapping, menus, the scoreboard
// and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// model that scheduled it, so a model that was replaced stops ticking.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out model generations.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
