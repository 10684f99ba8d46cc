package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/cord/internal/sonify"
)

type tickMsg time.Time

type snapshotSavedMsg struct {
	path string
	err  error
}

type recordingSavedMsg struct {
	path    string
	seconds float64
	err     error
}

type positionsCopiedMsg struct {
	count int
	err   error
}

type audioOpenedMsg struct {
	out *sonify.Output
	err error
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
