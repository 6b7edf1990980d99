package notequiz

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/rapidmidiex/notequiz/config"
	"github.com/rapidmidiex/notequiz/keymap"
	"github.com/rapidmidiex/notequiz/quiz"
	"github.com/rapidmidiex/notequiz/render"
	"github.com/rapidmidiex/notequiz/styles"
	"github.com/rapidmidiex/notequiz/termui"
	"github.com/rapidmidiex/notequiz/widget"
)

type (
	mainModel struct {
		quiz      tea.Model
		sessionID uuid.UUID
		log       *log.Logger
	}
)

func NewModel(cfg config.Config, logger *log.Logger) mainModel {
	w := widget.New(newQuiz(cfg))
	return mainModel{
		quiz:      termui.New(w, logger),
		sessionID: uuid.New(),
		log:       logger,
	}
}

func (m mainModel) Init() tea.Cmd {
	m.log.Printf("session %s started", m.sessionID)
	return m.quiz.Init()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keymap.DefaultMapping.Quit) {
		m.log.Printf("session %s finished", m.sessionID)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.quiz, cmd = m.quiz.Update(msg)
	return m, cmd
}

func (m mainModel) View() string {
	return m.quiz.View()
}

// Run starts the interactive quiz and blocks until the user quits.
func Run(cfg config.Config) error {
	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "notequiz")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	p := tea.NewProgram(NewModel(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// Dump draws a single frame and writes it to w, either as plain text or as
// the JSON list of drawing commands.
func Dump(w io.Writer, cfg config.Config) error {
	width, height := cfg.Width, cfg.Height
	if width == 0 || height == 0 {
		width, height = frameSize()
	}
	bounds := render.Rect{W: float64(width), H: float64(height)}
	wg := widget.New(newQuiz(cfg))

	switch cfg.Dump {
	case "json":
		var rec render.Recorder
		wg.Draw(&rec, bounds)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec.Commands); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		canvas := termui.NewCanvas(width, height)
		wg.Draw(canvas, canvas.Bounds())
		if _, err := fmt.Fprintln(w, canvas.Plain()); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

func newQuiz(cfg config.Config) *quiz.State {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return quiz.New(rand.New(rand.NewSource(seed)), quiz.WithRange(cfg.Range))
}

// frameSize returns the terminal size, or the default size when stdout is
// not a terminal.
func frameSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return styles.Width, styles.Height
	}
	return width, height
}
