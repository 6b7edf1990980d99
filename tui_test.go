package notequiz_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/notequiz"
	"github.com/rapidmidiex/notequiz/config"
	"github.com/rapidmidiex/notequiz/pitch"
	"github.com/rapidmidiex/notequiz/render"
	"github.com/stretchr/testify/require"
)

var cfg = config.Config{
	Seed:   3,
	Range:  pitch.DefaultRange,
	Width:  70,
	Height: 48,
}

func TestDump(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		c := cfg
		c.Dump = "text"
		var buf bytes.Buffer
		require.NoError(t, notequiz.Dump(&buf, c))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 48)
		require.Contains(t, buf.String(), "─")
	})

	t.Run("json", func(t *testing.T) {
		c := cfg
		c.Dump = "json"
		var buf bytes.Buffer
		require.NoError(t, notequiz.Dump(&buf, c))

		var cmds []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &cmds))
		require.NotEmpty(t, cmds)
		require.Equal(t, "fillRect", cmds[0]["op"])
		require.Equal(t, "label", cmds[0]["color"])

		var frame []render.Command
		require.NoError(t, json.Unmarshal(buf.Bytes(), &frame))
		require.Len(t, frame, len(cmds))
		require.Equal(t, render.Label, frame[0].Color)
	})

	t.Run("same seed, same frame", func(t *testing.T) {
		c := cfg
		c.Dump = "json"
		var a, b bytes.Buffer
		require.NoError(t, notequiz.Dump(&a, c))
		require.NoError(t, notequiz.Dump(&b, c))
		require.Equal(t, a.String(), b.String())
	})
}

func TestQuit(t *testing.T) {
	m := notequiz.NewModel(cfg, log.New(io.Discard, "", 0))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
