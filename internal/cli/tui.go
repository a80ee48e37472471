package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Game view styles
var (
	gameScoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	gameOverStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	gameBoardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	gameSlotStyle     = lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1)
	gameSelectedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan).Padding(0, 1)
	gameBlockedStyle  = lipgloss.NewStyle().Foreground(colorRed)
	gameEmptyStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GameModel - Interactive game
// =============================================================================

// gameUI holds the terminal settings of a game.
type gameUI struct {
	AutoRestart  bool
	WipeInterval time.Duration
	Hints        bool
}

// wipeTickMsg advances the game-over wipe by one cell.
type wipeTickMsg struct{}

// GameModel is the bubbletea model for the interactive game. It owns the
// engine; all engine calls happen inside Update.
type GameModel struct {
	Engine *game.Engine
	UI     gameUI

	Slot int // selected selection slot
	X, Y int // ghost origin on the board

	Wiping   bool
	WipeStep int

	Last    game.Result
	Message string
}

// NewGameModel creates a game model with the first slot selected.
func NewGameModel(e *game.Engine, ui gameUI) GameModel {
	if ui.WipeInterval <= 0 {
		ui.WipeInterval = 30 * time.Millisecond
	}
	return GameModel{Engine: e, UI: ui}
}

func (m GameModel) Init() tea.Cmd {
	return nil
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wipeTickMsg:
		return m.wipeStep()
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.restart()
			return m, nil
		}
		if m.Wiping || m.Engine.IsGameOver() {
			return m, nil
		}
		switch key {
		case "up", "k":
			m.move(0, -1)
		case "down", "j":
			m.move(0, 1)
		case "left", "h":
			m.move(-1, 0)
		case "right", "l":
			m.move(1, 0)
		case "tab":
			m.cycle(1)
		case "shift+tab":
			m.cycle(-1)
		case "enter", " ":
			return m.drop()
		default:
			if n, err := strconv.Atoi(key); err == nil {
				m.selectSlot(n - 1)
			}
		}
	}
	return m, nil
}

// shape returns the shape in the selected slot; ok is false when it is
// consumed.
func (m GameModel) shape() (shape.Shape, bool) {
	s, ok, err := m.Engine.SlotShape(m.Slot)
	return s, ok && err == nil
}

// move shifts the ghost, keeping the selected shape on the board.
func (m *GameModel) move(dx, dy int) {
	m.X += dx
	m.Y += dy
	m.clamp()
}

func (m *GameModel) clamp() {
	w, h := 1, 1
	if s, ok := m.shape(); ok {
		w, h = s.Width(), s.Height()
	}
	n := m.Engine.Size()
	m.X = max(0, min(m.X, n-w))
	m.Y = max(0, min(m.Y, n-h))
}

// selectSlot selects slot i if it holds an active piece.
func (m *GameModel) selectSlot(i int) {
	if i < 0 || i >= m.Engine.Slots() {
		return
	}
	if _, ok, _ := m.Engine.SlotShape(i); !ok {
		return
	}
	m.Slot = i
	m.clamp()
}

// cycle selects the next active slot in direction dir.
func (m *GameModel) cycle(dir int) {
	n := m.Engine.Slots()
	for step := 1; step <= n; step++ {
		i := ((m.Slot+dir*step)%n + n) % n
		if _, ok, _ := m.Engine.SlotShape(i); ok {
			m.Slot = i
			m.clamp()
			return
		}
	}
}

func (m GameModel) drop() (tea.Model, tea.Cmd) {
	res, err := m.Engine.Place(m.Slot, m.X, m.Y)
	if err != nil {
		m.Message = errors.UserMessage(err)
		return m, nil
	}
	if !res.Placed {
		m.Message = "does not fit"
		return m, nil
	}
	m.Last = res
	m.Message = ""
	if res.Delta > 0 {
		m.Message = fmt.Sprintf("+%d", res.Delta)
	}
	if _, ok := m.shape(); !ok {
		m.cycle(1)
	}
	m.clamp()

	if res.GameOver && m.UI.AutoRestart {
		m.Wiping = true
		m.WipeStep = 0
		return m, m.wipeTick()
	}
	return m, nil
}

func (m GameModel) wipeTick() tea.Cmd {
	return tea.Tick(m.UI.WipeInterval, func(time.Time) tea.Msg { return wipeTickMsg{} })
}

// wipeStep blanks the next cell of the finished board in row-major order,
// then starts a new game once every cell is blank.
func (m GameModel) wipeStep() (tea.Model, tea.Cmd) {
	if !m.Wiping {
		return m, nil
	}
	m.WipeStep++
	n := m.Engine.Size()
	if m.WipeStep < n*n {
		return m, m.wipeTick()
	}
	m.restart()
	return m, nil
}

func (m *GameModel) restart() {
	m.Engine.Restart()
	m.Wiping = false
	m.WipeStep = 0
	m.Slot = 0
	m.Last = game.Result{}
	m.Message = ""
	m.clamp()
}

// wiped reports whether the cell at (x, y) has already been blanked by
// the wipe.
func (m GameModel) wiped(x, y int) bool {
	return m.Wiping && y*m.Engine.Size()+x < m.WipeStep
}

func (m GameModel) View() string {
	var b strings.Builder

	stats := m.Engine.Stats()
	b.WriteString(StyleTitle.Render("blocks"))
	b.WriteString("  ")
	b.WriteString(gameScoreStyle.Render(fmt.Sprintf("score %d", m.Engine.Score())))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  best %d  game %d", stats.Best, stats.Games)))
	if m.Message != "" {
		b.WriteString("  ")
		b.WriteString(StyleWarning.Render(m.Message))
	}
	b.WriteString("\n")

	b.WriteString(gameBoardStyle.Render(m.renderBoard()))
	b.WriteString("\n")
	b.WriteString(m.renderSlots())
	b.WriteString("\n")

	switch {
	case m.Wiping:
		b.WriteString(gameOverStyle.Render(fmt.Sprintf("GAME OVER  %d points", m.Engine.Score())))
	case m.Engine.IsGameOver():
		b.WriteString(gameOverStyle.Render(fmt.Sprintf("GAME OVER  %d points", m.Engine.Score())))
		b.WriteString(StyleDim.Render("  r restart  q quit"))
	default:
		b.WriteString(StyleDim.Render("1-9/tab select  ←↑↓→/hjkl move  ⏎ drop  r restart  q quit"))
	}
	return b.String()
}

// renderBoard draws the board with the ghost of the selected piece.
func (m GameModel) renderBoard() string {
	grid := m.Engine.BoardSnapshot()
	ghost := map[[2]int]bool{}
	var ghostStyle lipgloss.Style
	if s, ok := m.shape(); ok && !m.Wiping && !m.Engine.IsGameOver() {
		fits, _ := m.Engine.CanPlace(m.Slot, m.X, m.Y)
		ghostStyle = gameBlockedStyle
		if fits {
			ghostStyle = colorStyle(m.slotColor())
		}
		for dx, dy := range s.Cells() {
			ghost[[2]int{m.X + dx, m.Y + dy}] = true
		}
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, c := range row {
			switch {
			case ghost[[2]int{x, y}] && c == board.Empty:
				b.WriteString(ghostStyle.Render(cellGhost))
			case ghost[[2]int{x, y}]:
				b.WriteString(ghostStyle.Render(cellBlock))
			case c == board.Empty || m.wiped(x, y):
				b.WriteString(gameEmptyStyle.Render(cellEmpty))
			default:
				b.WriteString(colorStyle(c).Render(cellFilled))
			}
		}
	}
	return b.String()
}

func (m GameModel) slotColor() board.Color {
	for _, sl := range m.Engine.SelectionSnapshot() {
		if sl.Index == m.Slot {
			return sl.Piece.Color
		}
	}
	return board.Empty
}

// renderSlots draws the selection side by side. With hints enabled, pieces
// that fit nowhere are dimmed.
func (m GameModel) renderSlots() string {
	var cols []string
	for _, sl := range m.Engine.SelectionSnapshot() {
		style := gameSlotStyle
		if sl.Index == m.Slot && sl.Active {
			style = gameSelectedStyle
		}
		label := StyleDim.Render(strconv.Itoa(sl.Index + 1))
		if !sl.Active {
			cols = append(cols, style.Render(label+"\n"+StyleDim.Render("  ")))
			continue
		}
		s, _, err := m.Engine.SlotShape(sl.Index)
		if err != nil {
			continue
		}
		pieceStyle := colorStyle(sl.Piece.Color)
		if m.UI.Hints {
			if moves, _ := m.Engine.Moves(sl.Index); len(moves) == 0 {
				pieceStyle = gameEmptyStyle
			}
		}
		cols = append(cols, style.Render(label+"\n"+renderShape(s, pieceStyle)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
