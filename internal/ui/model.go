package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/olivier-w/cord/internal/config"
	"github.com/olivier-w/cord/internal/render"
	"github.com/olivier-w/cord/internal/sim"
	"github.com/olivier-w/cord/internal/sonify"
)

const (
	// The canvas starts on the fourth line, indented by two columns.
	canvasTop  = 3
	canvasLeft = 2

	chromeRows   = 8
	graphRows    = 8
	energyPoints = 120
	messageTTL   = 5 * time.Second
)

type dragState struct {
	active bool
	last   sim.Vec
}

// Model is the Bubbletea model for the cord TUI. It owns the simulation;
// every mutation happens inside Update.
type Model struct {
	cfg    config.Config
	cord   *sim.Cord
	canvas *render.Braille
	voice  *sonify.Voice
	keys   keyMap
	help   help.Model
	meter  rateMeter

	frame      int
	paused     bool
	showEnergy bool
	energy     []float64
	drag       dragState
	width      int
	height     int
	quitting   bool

	// audioPending is set while an open command is in flight; soundWanted
	// records whether its result should be attached or closed.
	audioPending bool
	soundWanted  bool

	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// New creates a Model for cfg. dark selects the palette for a dark terminal
// background.
func New(cfg config.Config, dark bool) Model {
	c := cfg.NewCord()
	if dark {
		c.Palette = sim.DarkPalette()
	}
	m := Model{
		cfg:   cfg,
		cord:  c,
		voice: sonify.NewVoice(cfg.Tone, cfg.Volume),
		keys:  defaultKeyMap(),
		help:  help.New(),
		meter: newRateMeter(int(cfg.Sim.FrameRate)),
	}
	if cfg.Sound {
		m.audioPending, m.soundWanted = true, true
	}
	m.resize(80, 24)
	return m
}

// Cord exposes the simulation, mainly for tests.
func (m Model) Cord() *sim.Cord { return m.cord }

func (m Model) frameInterval() time.Duration {
	return time.Duration(float64(time.Second) / m.cfg.Sim.FrameRate)
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.frameInterval()), tea.SetWindowTitle("cord")}
	if m.cfg.Sound {
		cmds = append(cmds, openAudioCmd(m.voice))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		if !m.paused {
			m.meter.observe(time.Time(msg))
			m.step()
		}
		if m.statusMsg != "" && time.Since(m.statusTime) > messageTTL {
			m.statusMsg = ""
		}
		return m, tickCmd(m.frameInterval())

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case snapshotSavedMsg:
		if msg.err != nil {
			log.Printf("snapshot: %v", msg.err)
			m.setStatus(fmt.Sprintf("Snapshot failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Saved %s", msg.path), false)
		}
		return m, nil

	case recordingSavedMsg:
		if msg.err != nil {
			log.Printf("recording: %v", msg.err)
			m.setStatus(fmt.Sprintf("Recording failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Saved %.1fs to %s", msg.seconds, msg.path), false)
		}
		return m, nil

	case positionsCopiedMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Copied %d points", msg.count), false)
		}
		return m, nil

	case audioOpenedMsg:
		m.audioPending = false
		if msg.err != nil {
			log.Printf("audio: %v", msg.err)
			m.setStatus(fmt.Sprintf("Sound unavailable: %v", msg.err), true)
			return m, nil
		}
		if !m.soundWanted || m.quitting {
			if err := msg.out.Close(); err != nil {
				log.Printf("audio: %v", err)
			}
			return m, nil
		}
		m.voice.Attach(msg.out)
		m.setStatus("Sound on", false)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.voice.Live() {
			if err := m.voice.Detach(); err != nil {
				log.Printf("audio: %v", err)
			}
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.meter.pause()

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.step()
		}

	case key.Matches(msg, m.keys.Reset):
		m.cord.Reset()
		m.frame = 0
		m.energy = m.energy[:0]
		m.drag = dragState{}

	case key.Matches(msg, m.keys.Color):
		m.cord.Palette.Mode = m.cord.Palette.Mode.Next()

	case key.Matches(msg, m.keys.Energy):
		m.showEnergy = !m.showEnergy
		m.resize(m.width, m.height)

	case key.Matches(msg, m.keys.Snapshot):
		return m, saveSnapshotCmd(m.cord.Clone(), m.cfg, m.frame)

	case key.Matches(msg, m.keys.Copy):
		return m, copyPositionsCmd(m.cord.Positions())

	case key.Matches(msg, m.keys.Sound):
		if m.voice.Live() {
			if err := m.voice.Detach(); err != nil {
				log.Printf("audio: %v", err)
			}
			m.soundWanted = false
			m.setStatus("Sound off", false)
			return m, nil
		}
		if m.audioPending {
			m.soundWanted = !m.soundWanted
			if m.soundWanted {
				m.setStatus("Opening sound...", false)
			} else {
				m.setStatus("Sound off", false)
			}
			return m, nil
		}
		m.audioPending, m.soundWanted = true, true
		m.setStatus("Opening sound...", false)
		return m, openAudioCmd(m.voice)

	case key.Matches(msg, m.keys.Record):
		if !m.voice.Recording() {
			m.voice.StartRecording()
			m.setStatus("Recording...", false)
			return m, nil
		}
		samples := m.voice.StopRecording()
		return m, saveRecordingCmd(samples, m.cfg.SnapshotDir, m.frame)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse turns left-button drags into cord drag events. Bubbletea only
// reports absolute cells, so the delta is taken from the previous event.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := m.canvas.CellToWorld(msg.X-canvasLeft, msg.Y-canvasTop)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = dragState{active: true, last: pos}
		}
	case tea.MouseActionMotion:
		if !m.drag.active {
			return
		}
		dx, dy := pos.X-m.drag.last.X, pos.Y-m.drag.last.Y
		if dx != 0 || dy != 0 {
			m.cord.Drag(pos.X, pos.Y, dx, dy)
		}
		m.drag.last = pos
	case tea.MouseActionRelease:
		m.drag = dragState{}
	}
}

func (m *Model) step() {
	m.cord.Update()
	m.frame++
	m.voice.Feed(m.cord.Excitation(), 1/m.cfg.Sim.FrameRate)

	every := max(int(m.cfg.Sim.FrameRate/20), 1)
	if m.frame%every == 0 {
		m.energy = append(m.energy, m.cord.Energy())
		if len(m.energy) > energyPoints {
			m.energy = m.energy[len(m.energy)-energyPoints:]
		}
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}
	m.width, m.height = width, height
	m.help.Width = max(width-4, 10)

	rows := height - chromeRows
	if m.showEnergy {
		rows -= graphRows
	}
	m.canvas = render.FitBraille(m.cfg.Width, m.cfg.Height, max(width-2*canvasLeft, 4), max(rows, 4))
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg = s
	m.statusErr = isErr
	m.statusTime = time.Now()
}

func (m Model) simTime() time.Duration {
	return time.Duration(float64(m.frame) / m.cfg.Sim.FrameRate * float64(time.Second))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Fill(m.cord.Palette.Background)
	m.cord.Draw(m.canvas)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("cord"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d points  %s", m.cord.Len(), m.cord.Palette.Mode)))
	b.WriteString("\n\n")
	b.WriteString(indentBlock(m.canvas.String(), strings.Repeat(" ", canvasLeft)))
	b.WriteString("\n")

	if m.showEnergy && len(m.energy) > 1 {
		graph := asciigraph.Plot(m.energy,
			asciigraph.Height(graphRows-3),
			asciigraph.Width(max(m.width-16, 10)),
			asciigraph.Caption("energy"),
		)
		b.WriteString(indentBlock(graphStyle.Render(graph), "  "))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	if m.statusMsg != "" {
		style := dimStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	icon, state := "▶", "running"
	if m.paused {
		icon, state = "❚❚", "paused"
	}
	parts := []string{
		fmt.Sprintf("%s  %s", icon, state),
		fmt.Sprintf("frame %d", m.frame),
		formatSimTime(m.simTime()),
		renderRate(m.meter.Rate()),
	}
	if m.voice.Live() {
		parts = append(parts, "[sound]")
	}
	if m.voice.Recording() {
		parts = append(parts, "[rec]")
	}
	return strings.Join(parts, "  ")
}

func saveSnapshotCmd(c *sim.Cord, cfg config.Config, frame int) tea.Cmd {
	return func() tea.Msg {
		mode := c.Palette.Mode
		c.Palette = sim.LightPalette()
		c.Palette.Mode = mode

		path, err := render.SnapshotPath(cfg.SnapshotDir, frame)
		if err != nil {
			return snapshotSavedMsg{err: err}
		}
		caption := fmt.Sprintf("frame %d", frame)
		err = render.SavePNG(c, path, cfg.Width, cfg.Height, cfg.SnapshotDPI, caption)
		return snapshotSavedMsg{path: path, err: err}
	}
}

func saveRecordingCmd(samples []int16, dir string, frame int) tea.Cmd {
	return func() tea.Msg {
		path, err := sonify.RecordingPath(dir, frame)
		if err != nil {
			return recordingSavedMsg{err: err}
		}
		err = sonify.WriteWAV(path, samples)
		return recordingSavedMsg{
			path:    path,
			seconds: float64(len(samples)) / sonify.SampleRate,
			err:     err,
		}
	}
}

func copyPositionsCmd(pts []sim.Vec) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(formatPositions(pts))
		return positionsCopiedMsg{count: len(pts), err: err}
	}
}

func openAudioCmd(v *sonify.Voice) tea.Cmd {
	return func() tea.Msg {
		out, err := sonify.Open(v.Source())
		return audioOpenedMsg{out: out, err: err}
	}
}
