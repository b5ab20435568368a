package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/tcalc/internal/calc"
	"github.com/yildizm/tcalc/internal/config"
)

// Options configures the keypad model
type Options struct {
	Theme         string
	Color         bool
	ShowHelp      bool
	FlashDuration time.Duration
	Logger        *slog.Logger
}

// OptionsFromConfig derives model options from the loaded configuration
func OptionsFromConfig(cfg *config.Config, noColor bool) Options {
	color := !noColor && !IsColorDisabled() && cfg.UI.ColorMode != "never"
	return Options{
		Theme:         cfg.UI.Theme,
		Color:         color,
		ShowHelp:      cfg.UI.ShowHelp,
		FlashDuration: cfg.UI.FlashDuration,
	}
}

// Model is the bubbletea model of the keypad. It is the button surface and
// display sink around a calc.Calculator.
type Model struct {
	calc   *calc.Calculator
	keys   keyMap
	help   help.Model
	styles *Styles
	color  bool
	logger *slog.Logger

	focusRow int
	focusCol int

	flashRow      int
	flashCol      int
	flashID       int
	flashing      bool
	flashDuration time.Duration

	showHelp bool
	width    int
	height   int
	quitting bool
}

// NewModel creates the keypad model around c
func NewModel(c *calc.Calculator, opts Options) *Model {
	theme, ok := ThemeByName(opts.Theme)
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !ok {
		logger.Warn("unknown theme, using default", "theme", opts.Theme)
	}

	return &Model{
		calc:          c,
		keys:          defaultKeyMap(),
		help:          help.New(),
		styles:        NewStyles(theme, opts.Color),
		color:         opts.Color,
		logger:        logger,
		focusRow:      1,
		focusCol:      0,
		flashDuration: opts.FlashDuration,
		showHelp:      opts.ShowHelp,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, col, ok := buttonAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.focusRow, m.focusCol = row, col
		return m, m.press(row, col)

	case flashEndMsg:
		if msg.id == m.flashID {
			m.flashing = false
		}

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)

	case ConfigErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.Err)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(0, 1)
	case key.Matches(msg, m.keys.Press):
		return m, m.press(m.focusRow, m.focusCol)
	}
	return m, nil
}

// moveFocus moves the focus cursor, wrapping around the keypad edges
func (m *Model) moveFocus(dRow, dCol int) {
	rows := len(calc.Keypad)
	m.focusRow = (m.focusRow + dRow + rows) % rows
	m.focusCol = (m.focusCol + dCol + keypadColumns) % keypadColumns
}

// press sends the label at row, col to the calculator and lights the button
func (m *Model) press(row, col int) tea.Cmd {
	label := calc.Keypad[row][col]
	display := m.calc.Press(label)
	m.logger.Debug("display updated", "label", label, "display", display)

	m.flashID++
	m.flashRow, m.flashCol = row, col
	if m.flashDuration <= 0 {
		m.flashing = false
		return nil
	}
	m.flashing = true
	id := m.flashID
	return tea.Tick(m.flashDuration, func(time.Time) tea.Msg {
		return flashEndMsg{id: id}
	})
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	theme, ok := ThemeByName(cfg.UI.Theme)
	if !ok {
		m.logger.Warn("unknown theme in reloaded config", "theme", cfg.UI.Theme)
		return
	}
	m.styles = NewStyles(theme, m.color)
	m.showHelp = cfg.UI.ShowHelp
	m.flashDuration = cfg.UI.FlashDuration
	m.logger.Info("config reloaded", "theme", theme.Name)
}

// Display returns the text the display currently shows
func (m *Model) Display() string {
	return m.calc.Display()
}

// Focused returns the label of the focused button
func (m *Model) Focused() string {
	return calc.Keypad[m.focusRow][m.focusCol]
}

// ThemeName returns the active theme
func (m *Model) ThemeName() string {
	return m.styles.Theme.Name
}

// View renders the keypad
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.styles.Title.Render("Calculator"),
		m.renderDisplay(),
		m.renderKeypad(),
	}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderDisplay() string {
	text := m.calc.Display()
	style := m.styles.Display
	if text == calc.ErrorText {
		style = m.styles.DisplayError
	}
	return style.Render(fitDisplay(text, displayWidth))
}

func (m *Model) renderKeypad() string {
	rows := make([]string, 0, len(calc.Keypad))
	for r, row := range calc.Keypad {
		cells := make([]string, 0, len(row))
		for c, label := range row {
			cells = append(cells, m.buttonStyle(r, c, label).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) buttonStyle(row, col int, label string) lipgloss.Style {
	switch {
	case m.flashing && row == m.flashRow && col == m.flashCol:
		return m.styles.Pressed
	case row == m.focusRow && col == m.focusCol:
		return m.styles.Focused
	case label == calc.LabelEquals:
		return m.styles.Accent
	case calc.ActionFor(label) != calc.ActionAppend || isOperatorLabel(label):
		return m.styles.Operator
	default:
		return m.styles.Button
	}
}

func isOperatorLabel(label string) bool {
	switch label {
	case "+", "-", "×", "÷":
		return true
	}
	return false
}
