package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
)

func newTestBrowseModel() browseModel {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	m := newBrowseModel(context.Background(), runner, pipeline.Options{Resolution: 40}, 16)
	var next uint64
	m.nextSeed = func() uint64 {
		next++
		return next
	}
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step feeds msg to the model and runs the command it returns, if any.
func step(t *testing.T, m browseModel, msg tea.Msg) browseModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(browseModel)
	if cmd != nil {
		next, _ = m.Update(cmd())
		m = next.(browseModel)
	}
	return m
}

func TestBrowseInitGeneratesBoard(t *testing.T) {
	m := newTestBrowseModel()
	m = step(t, m, m.Init()())

	if m.err != nil {
		t.Fatal(m.err)
	}
	if m.result == nil || m.grid == nil {
		t.Fatal("first board should be loaded")
	}
	if m.seed != 1 {
		t.Errorf("seed = %d, want 1", m.seed)
	}
	if !strings.Contains(m.View(), m.result.Board.Style) {
		t.Error("view should name the style")
	}
}

func TestBrowseStyleCycling(t *testing.T) {
	m := newTestBrowseModel()
	m = step(t, m, m.Init()())

	m = step(t, m, key("s"))
	if want := layout.Names()[0]; m.result.Board.Style != want {
		t.Errorf("style = %s, want %s", m.result.Board.Style, want)
	}

	m = step(t, m, key("h"))
	if want := layout.Names()[len(layout.Names())-1]; m.result.Board.Style != want {
		t.Errorf("style after wrapping = %s, want %s", m.result.Board.Style, want)
	}

	m = step(t, m, key("a"))
	if m.style() != "" {
		t.Errorf("'a' should release the style, got %s", m.style())
	}
}

func TestBrowseRegenerateIsDeterministic(t *testing.T) {
	m := newTestBrowseModel()
	m = step(t, m, m.Init()())
	m = step(t, m, key("s"))
	first := m.result.Board.ID

	m = step(t, m, key("r"))
	if m.result.Board.ID != first {
		t.Error("regenerating the same seed and style should give the same board")
	}

	m = step(t, m, key("n"))
	if m.result.Board.ID == first {
		t.Error("next should draw a new seed")
	}
}

func TestBrowseIgnoresKeysWhileLoading(t *testing.T) {
	m := newTestBrowseModel()
	m.loading = true
	if _, cmd := m.Update(key("n")); cmd != nil {
		t.Error("no new generation while one is running")
	}
}

func TestBrowseQuit(t *testing.T) {
	m := newTestBrowseModel()
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", k)
		}
	}
}
