// Package splash implements the one-time animated loading screen shown
// before the main app mounts.
//
// The screen is a small state machine:
//
//	Init -> FactsCycling -> NameTyping -> Done
//
// Every transition schedules its own tick. Ticks carry the id of the model
// that scheduled them, and a stopped model drops every tick it receives, so
// stopping the model (unmounting it) leaves no live timers behind.
package splash

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sproutly/internal/styles"
)

type State int

const (
	StateInit State = iota
	StateFactsCycling
	StateNameTyping
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateFactsCycling:
		return "facts-cycling"
	case StateNameTyping:
		return "name-typing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

const (
	// Amplitude of the bobbing motion in animation units
	Amplitude = 15.0
	// UnitsPerRow converts animation units to terminal rows
	UnitsPerRow = 5.0
)

type Timings struct {
	FactInterval  time.Duration
	NameDelay     time.Duration
	TypeInterval  time.Duration
	FinishDelay   time.Duration
	FrameInterval time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		FactInterval:  4000 * time.Millisecond,
		NameDelay:     3000 * time.Millisecond,
		TypeInterval:  150 * time.Millisecond,
		FinishDelay:   1500 * time.Millisecond,
		FrameInterval: 50 * time.Millisecond,
	}
}

// MinDuration is the earliest the screen can finish for a label
func (t Timings) MinDuration(label string) time.Duration {
	n := len([]rune(label))
	return t.NameDelay + time.Duration(n)*t.TypeInterval + t.FinishDelay
}

// Scheduler delivers the message built by fn after d. tea.Tick is the default.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// FinishedMsg is emitted exactly once, when the screen reaches Done
type FinishedMsg struct {
	ID int
}

type (
	factMsg   struct{ id int }
	nameMsg   struct{ id int }
	typeMsg   struct{ id int }
	finishMsg struct{ id int }
	frameMsg  struct {
		id int
		at time.Time
	}
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type Model struct {
	id       int
	state    State
	timings  Timings
	schedule Scheduler

	facts   []string
	factIdx int

	label []rune
	typed int

	start   time.Time
	elapsed time.Duration
	offset  float64

	fired   bool
	stopped bool

	theme  styles.Theme
	width  int
	height int
}

func New(facts []string, label string, timings Timings) Model {
	return Model{
		id:       nextID(),
		state:    StateInit,
		timings:  timings,
		schedule: tea.Tick,
		facts:    facts,
		label:    []rune(label),
		theme:    styles.LightTheme,
	}
}

// WithScheduler replaces the tick source
func (m Model) WithScheduler(s Scheduler) Model {
	if s != nil {
		m.schedule = s
	}
	return m
}

func (m Model) WithTheme(t styles.Theme) Model {
	m.theme = t
	return m
}

func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

func (m Model) ID() int           { return m.id }
func (m Model) State() State      { return m.state }
func (m Model) Stopped() bool     { return m.stopped }
func (m Model) Offset() float64   { return m.offset }
func (m Model) Typed() string     { return string(m.label[:m.typed]) }
func (m Model) FactIndex() int    { return m.factIdx }
func (m Model) NameVisible() bool { return m.state == StateNameTyping || m.state == StateDone }

func (m Model) Fact() string {
	if len(m.facts) == 0 {
		return ""
	}
	return m.facts[m.factIdx]
}

// Start enters FactsCycling and schedules the fact rotation, the name
// reveal and the frame loop. It only has an effect on a fresh model.
func (m Model) Start(now time.Time) (Model, tea.Cmd) {
	if m.state != StateInit || m.stopped {
		return m, nil
	}
	m.state = StateFactsCycling
	m.start = now

	var cmds []tea.Cmd
	if len(m.facts) > 1 {
		cmds = append(cmds, m.tickFact())
	}
	cmds = append(cmds,
		m.schedule(m.timings.NameDelay, func(time.Time) tea.Msg { return nameMsg{id: m.id} }),
		m.tickFrame(),
	)
	return m, tea.Batch(cmds...)
}

// Stop unmounts the screen. Every tick still in flight becomes inert.
func (m Model) Stop() Model {
	m.stopped = true
	return m
}

func (m Model) tickFact() tea.Cmd {
	id := m.id
	return m.schedule(m.timings.FactInterval, func(time.Time) tea.Msg { return factMsg{id: id} })
}

func (m Model) tickType() tea.Cmd {
	id := m.id
	return m.schedule(m.timings.TypeInterval, func(time.Time) tea.Msg { return typeMsg{id: id} })
}

func (m Model) tickFinish() tea.Cmd {
	id := m.id
	return m.schedule(m.timings.FinishDelay, func(time.Time) tea.Msg { return finishMsg{id: id} })
}

func (m Model) tickFrame() tea.Cmd {
	id := m.id
	return m.schedule(m.timings.FrameInterval, func(t time.Time) tea.Msg { return frameMsg{id: id, at: t} })
}

func (m Model) live(id int) bool {
	return id == m.id && !m.stopped
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case factMsg:
		if !m.live(msg.id) || len(m.facts) == 0 {
			return m, nil
		}
		m.factIdx = (m.factIdx + 1) % len(m.facts)
		return m, m.tickFact()

	case nameMsg:
		if !m.live(msg.id) || m.state != StateFactsCycling {
			return m, nil
		}
		m.state = StateNameTyping
		if len(m.label) == 0 {
			return m, m.tickFinish()
		}
		return m, m.tickType()

	case typeMsg:
		if !m.live(msg.id) || m.state != StateNameTyping || m.typed >= len(m.label) {
			return m, nil
		}
		m.typed++
		if m.typed < len(m.label) {
			return m, m.tickType()
		}
		return m, m.tickFinish()

	case finishMsg:
		if !m.live(msg.id) || m.state != StateNameTyping || m.typed < len(m.label) {
			return m, nil
		}
		m.state = StateDone
		if m.fired {
			return m, nil
		}
		m.fired = true
		id := m.id
		return m, func() tea.Msg { return FinishedMsg{ID: id} }

	case frameMsg:
		if !m.live(msg.id) {
			return m, nil
		}
		if !msg.at.IsZero() && !m.start.IsZero() {
			m.elapsed = msg.at.Sub(m.start)
		}
		m.offset = math.Sin(float64(m.elapsed.Milliseconds())/1000) * Amplitude
		return m, m.tickFrame()
	}
	return m, nil
}

// OffsetRows converts the bobbing offset into whole terminal rows
func (m Model) OffsetRows() int {
	return int(math.Round(m.offset / UnitsPerRow))
}
