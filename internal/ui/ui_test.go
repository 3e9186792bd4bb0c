package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"sproutly/internal/chatbot"
	"sproutly/internal/content"
	"sproutly/internal/market"
	"sproutly/internal/splash"
)

func newTestModel(t *testing.T, mutate ...func(*Options)) *Model {
	t.Helper()

	seed := content.MustLoad()
	catalog, err := market.Open(context.Background(), seed.Products)
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })

	opts := Options{
		SkipSplash: true,
		ReplyDelay: time.Millisecond,
		Bot:        chatbot.NewSeeded(1),
		Catalog:    catalog,
		Content:    seed,
		StartDir:   t.TempDir(),
		Scheduler: func(time.Duration, func(time.Time) tea.Msg) tea.Cmd {
			return nil
		},
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := NewModel(opts)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return m
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func writeImage(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func withSplash(o *Options) {
	o.SkipSplash = false
	o.Timings = splash.DefaultTimings()
}
