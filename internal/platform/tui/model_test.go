package tui

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/games/tetris"
	"github.com/vovakirdan/gridtris/internal/grid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyRouting(t *testing.T) {
	classic, err := NewGameKeyMap(config.DefaultClassicConfig())
	require.NoError(t, err)
	flashing, err := NewGameKeyMap(config.DefaultConfig())
	require.NoError(t, err)

	tests := []struct {
		name     string
		keys     GameKeyMap
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", classic, tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveUp},
		{"letter t", classic, runes("t"), core.ActionMoveUp},
		{"capital T", classic, runes("T"), core.ActionMoveUp},
		{"letter g", classic, runes("G"), core.ActionMoveDown},
		{"arrow left", classic, tea.KeyMsg{Type: tea.KeyLeft}, core.ActionDrop},
		{"letter x", classic, runes("x"), core.ActionDrop},
		{"letter f", classic, runes("f"), core.ActionRotateCCW},
		{"letter h", classic, runes("H"), core.ActionRotateCW},
		{"unbound letter", classic, runes("q"), core.ActionNone},
		{"unbound arrow", classic, tea.KeyMsg{Type: tea.KeyRight}, core.ActionNone},
		{"space", flashing, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop},
		{"enter", flashing, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRotateCW},
		{"letter A", flashing, runes("A"), core.ActionRotateCCW},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.keys.Action(tc.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km, err := NewGameKeyMap(config.DefaultClassicConfig())
	require.NoError(t, err)

	short := km.ShortHelp()
	require.Len(t, short, len(core.Actions)+2)
	assert.Equal(t, "up/t", short[0].Help().Key)
	assert.Len(t, km.FullHelp(), 2)
}

func newTestModel(t *testing.T, cfg config.Config, src Source) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:      cfg,
		Runtime:     core.RuntimeConfig{ScreenW: 120, ScreenH: 24, Seed: 7},
		Source:      src,
		SnapshotDir: t.TempDir(),
	})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestAdvanceTick(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	m := newTestModel(t, cfg, MemorySource(cfg.Layout()))
	x := m.Session().Piece().Blocks[0].X

	m, cmd := update(t, m, AdvanceMsg{Gen: m.gen})
	assert.NotNil(t, cmd, "advance timer reschedules itself")
	assert.Equal(t, x-1, m.Session().Piece().Blocks[0].X)

	m, cmd = update(t, m, AdvanceMsg{Gen: m.gen - 1})
	assert.Nil(t, cmd, "ticks from a replaced session are dropped")
	assert.Equal(t, x-1, m.Session().Piece().Blocks[0].X)
}

func TestReloadStartsFreshSession(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	m := newTestModel(t, cfg, MemorySource(cfg.Layout()))
	m, _ = update(t, m, runes("x"))
	require.Equal(t, 1, m.Session().Snapshot().Landed)

	oldID, oldGen := m.Session().ID(), m.gen
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.NotNil(t, cmd)
	assert.NotEqual(t, oldID, m.Session().ID())
	assert.Equal(t, oldGen+1, m.gen)
	assert.Equal(t, 0, m.Session().Snapshot().Landed)
}

func TestQuit(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	m := newTestModel(t, cfg, MemorySource(cfg.Layout()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestFlashTimer(t *testing.T) {
	cfg := config.DefaultConfig()
	var mem *grid.Memory
	src := Source{Name: "test", Open: func() (grid.Renderer, error) {
		mem = grid.NewMemory(cfg.Layout())
		for row := 0; row < cfg.Board.Rows; row++ {
			mem.SetLevel(row, 0, grid.LevelFilled)
		}
		return mem, nil
	}}
	m := newTestModel(t, cfg, src)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd, "landing next to a full column starts the flash timer")
	require.True(t, m.flashing)

	for i := 0; i < cfg.Timing.FlashToggles; i++ {
		m, cmd = update(t, m, FlashMsg{Gen: m.gen})
		require.NotNil(t, cmd, "flash %d", i)
	}
	m, cmd = update(t, m, FlashMsg{Gen: m.gen})
	assert.Nil(t, cmd)
	assert.False(t, m.flashing)
	assert.Equal(t, 1, m.Session().Snapshot().Cleared)
}

func TestGameOverModal(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	src := Source{Name: "test", Open: func() (grid.Renderer, error) {
		mem := grid.NewMemory(cfg.Layout())
		for row := 3; row <= 6; row++ {
			mem.SetLevel(row, 46, grid.LevelFilled)
		}
		return mem, nil
	}}
	m := newTestModel(t, cfg, src)

	require.Equal(t, tetris.StateOver, m.Session().State())
	assert.Contains(t, m.View(), "Game Over!")

	m, _ = update(t, m, runes("x"))
	assert.Equal(t, tetris.StateOver, m.Session().State(), "keys are ignored after game over")
}

func TestTooSmall(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestModel(t, cfg, MemorySource(cfg.Layout()))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.View(), "Terminal too small")
}

func calendarPage(rows, weeks int) []byte {
	var b strings.Builder
	b.WriteString("<html><body><table><tbody>")
	for r := 0; r < rows; r++ {
		b.WriteString("<tr>")
		for w := 0; w < weeks; w++ {
			fmt.Fprintf(&b, `<td class="ContributionCalendar-day" data-ix="%d" data-level="3"></td>`, w+1)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></body></html>")
	return []byte(b.String())
}

func TestPageSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestModel(t, cfg, PageSource("octocat", calendarPage(7, 52), cfg.PageOptions()))

	var buf bytes.Buffer
	require.NoError(t, m.WriteSnapshot(&buf))
	out := buf.String()
	assert.Contains(t, out, `data-level="4"`, "falling piece is on the page")
	assert.NotContains(t, out, `data-level="3"`, "page levels are reset")
	assert.Equal(t, "html", m.snapshotExt())
}

func TestSaveSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestModel(t, cfg, MemorySource(cfg.Layout()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, strings.HasPrefix(m.status, "saved "), m.status)

	path := strings.TrimPrefix(m.status, "saved ")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".txt"))
	assert.Contains(t, string(data), "gridtris")
}

func TestPageSourceNoCells(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := NewModel(Options{
		Config:  cfg,
		Runtime: core.DefaultConfig(),
		Source:  PageSource("empty", []byte("<html></html>"), cfg.PageOptions()),
	})
	require.ErrorIs(t, err, grid.ErrNoCells)
}
