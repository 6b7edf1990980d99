package termui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/notequiz/keyboard"
	"github.com/rapidmidiex/notequiz/keymap"
	"github.com/rapidmidiex/notequiz/quiz"
	"github.com/rapidmidiex/notequiz/stats"
	"github.com/rapidmidiex/notequiz/styles"
	"github.com/rapidmidiex/notequiz/widget"
)

// Lines taken by the status bar below the canvas.
const statusLines = 1

type (
	Model struct {
		widget *widget.Widget
		canvas *Canvas
		// Terminal size from the last WindowSizeMsg.
		width, height int

		keys     keymap.Mapping
		bindings keyboard.KeyMap
		help     help.Model

		// When the current note was first shown.
		shownAt time.Time
		// Time taken by every answer so far.
		answerTimes []time.Duration
		stats       stats.CalcMsg
		correct     int
		wrong       int
		last        widget.Event

		now func() time.Time
		log *log.Logger
	}
)

func New(w *widget.Widget, logger *log.Logger) Model {
	return Model{
		widget:      w,
		canvas:      NewCanvas(styles.Width, styles.Height),
		keys:        keymap.DefaultMapping,
		bindings:    keyboard.Bindings(widget.Anchor),
		help:        help.New(),
		shownAt:     time.Now(),
		answerTimes: make([]time.Duration, 0),
		now:         time.Now,
		log:         logger,
	}
}

// WithClock replaces the clock used to time answers.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	m.shownAt = now()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()

	case tea.MouseMsg:
		if msg.Type != tea.MouseLeft {
			break
		}
		// Tap the centre of the clicked cell.
		ev := m.widget.PointerTapped(float64(msg.X)+0.5, float64(msg.Y)+0.5)
		cmd = m.handle(ev)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Reshuffle):
			m.widget.Quiz().Reshuffle()
			cmd = m.handle(widget.Event{Band: widget.LabelBand})
		case key.Matches(msg, m.keys.Reveal):
			m.widget.Quiz().ToggleReveal()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		default:
			if k, ok := m.bindings[msg.String()]; ok {
				cmd = m.handle(m.widget.Press(k))
			}
		}

	case stats.CalcMsg:
		m.stats = msg
	}

	return m, cmd
}

// handle records the result of an event and restarts the answer timer when
// the note changed.
func (m *Model) handle(ev widget.Event) tea.Cmd {
	now := m.now()
	switch ev.Band {
	case widget.NoBand, widget.StaffBand:
		return nil
	case widget.LabelBand:
		m.shownAt = now
		m.log.Printf("reshuffle: now %s", m.widget.Quiz().Current().Label())
		return nil
	}
	if ev.Outcome == quiz.NoAnswer {
		return nil
	}

	m.last = ev
	took := now.Sub(m.shownAt)
	m.shownAt = now
	m.answerTimes = append(m.answerTimes, took)
	if ev.Outcome == quiz.Correct {
		m.correct++
	} else {
		m.wrong++
	}
	m.log.Printf("answer %s: pressed %s in %v, now %s", ev.Outcome, ev.Key.Label(), took, m.widget.Quiz().Current().Label())
	return stats.CalcStats(took, m.answerTimes)
}

// layout gives the canvas every terminal row not taken by the status bar and
// help menu, so the canvas starts on the first row and mouse rows map to it.
func (m *Model) layout() {
	if m.height == 0 {
		return
	}
	m.canvas.Resize(m.width, m.height-statusLines-lipgloss.Height(m.helpView()))
}

func (m Model) View() string {
	m.canvas.Clear()
	m.widget.Draw(m.canvas, m.canvas.Bounds())

	doc := strings.Builder{}
	doc.WriteString(m.canvas.String())
	doc.WriteString("\n" + m.statusBar())
	doc.WriteString("\n" + m.helpView())
	return doc.String()
}

func (m Model) helpView() string {
	return styles.HelpMenu.Render(m.help.View(m.keys))
}

func (m Model) statusBar() string {
	width, _ := m.canvas.Size()

	var outcome string
	switch m.last.Outcome {
	case quiz.Correct:
		outcome = styles.CorrectStyle.Render("Correct")
	case quiz.Wrong:
		outcome = styles.WrongStyle.Render("Wrong")
	default:
		outcome = styles.StatusStyle.Render("Ready")
	}

	score := styles.StatusText.Render(fmt.Sprintf(" %d correct, %d wrong ", m.correct, m.wrong))
	timing := styles.StatsStyle.Render(fmt.Sprintf("last %v avg %v", m.stats.Latest.Round(time.Millisecond), m.stats.Avg))

	gap := width - lipgloss.Width(outcome) - lipgloss.Width(score) - lipgloss.Width(timing)
	if gap < 0 {
		gap = 0
	}
	filler := styles.StatusText.Render(strings.Repeat(" ", gap))
	return lipgloss.JoinHorizontal(lipgloss.Top, outcome, score, filler, timing)
}

// Score returns the number of correct and wrong answers so far.
func (m Model) Score() (correct, wrong int) {
	return m.correct, m.wrong
}

// AnswerTimes returns the time taken by every answer so far.
func (m Model) AnswerTimes() []time.Duration {
	return m.answerTimes
}
