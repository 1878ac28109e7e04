// Package bubble_adapter renders a notepad session as a Bubble Tea model.
// The session owns all editor state; the adapter translates terminal key
// events into logical ones and paints the frames the session computes.
package bubble_adapter

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notepad "github.com/ionut-t/gonotepad/core"
)

var (
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

type Model struct {
	session *notepad.Session
	keys    KeyMap

	width  int
	height int

	message string
	err     error

	// One style set per palette name, built lazily on first paint.
	styleCache map[string]map[notepad.StyleTag]lipgloss.Style
}

type clearMsg struct{}

func New(session *notepad.Session) Model {
	return Model{
		session:    session,
		keys:       DefaultKeyMap(),
		styleCache: make(map[string]map[notepad.StyleTag]lipgloss.Style),
	}
}

// Session returns the underlying session instance.
func (m Model) Session() *notepad.Session { return m.session }

// WithKeyMap replaces the default chord bindings.
func (m Model) WithKeyMap(keys KeyMap) Model {
	m.keys = keys
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) dispatchClearMsg() tea.Cmd {
	return tea.Tick(time.Second*3, func(t time.Time) tea.Msg {
		return clearMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case clearMsg:
		m.message = ""
		m.err = nil

	case tea.KeyMsg:
		signal := m.session.HandleKey(convertBubbleKey(msg, m.keys), m.height)

		switch signal := signal.(type) {
		case notepad.QuitSignal:
			return m, tea.Quit

		case notepad.SavedSignal:
			m.message = "Saved " + signal.Path
			m.err = nil
			return m, m.dispatchClearMsg()

		case notepad.ErrorSignal:
			m.message = ""
			m.err = signal.Err
			return m, m.dispatchClearMsg()
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	frame := m.session.Frame(m.width, m.height)
	styles := m.styles()

	// Tab bar, body rows, one spare row, then the status line on the last
	// terminal row.
	lines := make([]string, 0, len(frame.Rows)+3)
	lines = append(lines, m.renderTabBar(frame.Tabs, styles))

	for i, row := range frame.Rows {
		cursorCol := -1
		if frame.CursorRow == i+1 {
			cursorCol = frame.CursorCol
		}
		lines = append(lines, m.renderRow(row, cursorCol, styles))
	}

	lines = append(lines, "")
	lines = append(lines, m.renderStatus(frame, styles))

	return strings.Join(lines, "\n")
}

func (m Model) renderTabBar(tabs []notepad.TabEntry, styles map[notepad.StyleTag]lipgloss.Style) string {
	var b strings.Builder
	used := 0
	for _, tab := range tabs {
		style := styles[notepad.TagTabBar]
		if tab.Active {
			style = styles[notepad.TagActiveTab]
		}
		b.WriteString(style.Render(tab.Title))
		b.WriteString(" ")
		used += len([]rune(tab.Title)) + 1
	}
	if pad := m.width - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// renderRow paints one body row, truncated to the terminal width. The
// terminal cursor stays hidden under the alternate screen, so the cell at
// cursorCol is emulated with reverse video; cursorCol -1 means the cursor
// is not on this row.
func (m Model) renderRow(segs []notepad.Segment, cursorCol int, styles map[notepad.StyleTag]lipgloss.Style) string {
	var b strings.Builder
	col := 0
	for _, seg := range segs {
		if col >= m.width {
			break
		}
		runes := []rune(seg.Text)
		if col+len(runes) > m.width {
			runes = runes[:m.width-col]
		}
		style := styles[seg.Tag]
		if cursorCol >= col && cursorCol < col+len(runes) {
			i := cursorCol - col
			b.WriteString(style.Render(string(runes[:i])))
			b.WriteString(style.Reverse(true).Render(string(runes[i : i+1])))
			b.WriteString(style.Render(string(runes[i+1:])))
		} else {
			b.WriteString(style.Render(string(runes)))
		}
		col += len(runes)
	}
	if cursorCol >= col && cursorCol < m.width {
		if gap := cursorCol - col; gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(styles[notepad.TagText].Reverse(true).Render(" "))
	}
	return b.String()
}

// renderStatus paints the status line, letting a transient save message or
// error override the session's own status text until the clear timer fires.
func (m Model) renderStatus(frame notepad.Frame, styles map[notepad.StyleTag]lipgloss.Style) string {
	style := styles[notepad.TagStatusBar]

	text := frame.Status
	rendered := style.Render(text)

	switch {
	case m.err != nil:
		text = " " + m.err.Error()
		rendered = errorStyle.Render(text)
	case m.message != "":
		text = " " + m.message
		rendered = messageStyle.Render(text)
	default:
		// Prompt modes park the cursor right after the prompt text.
		if frame.CursorRow == m.height-1 {
			rendered += style.Reverse(true).Render(" ")
			text += " "
		}
	}

	if pad := m.width - len([]rune(text)); pad > 0 {
		rendered += style.Render(strings.Repeat(" ", pad))
	}
	return rendered
}

func (m Model) styles() map[notepad.StyleTag]lipgloss.Style {
	theme := m.session.Theme()
	if cached, ok := m.styleCache[theme.Name()]; ok {
		return cached
	}

	built := make(map[notepad.StyleTag]lipgloss.Style)
	for _, tag := range notepad.Tags() {
		pair := theme.Color(tag)
		style := lipgloss.NewStyle()
		if pair.FG != "" {
			style = style.Foreground(lipgloss.Color(pair.FG))
		}
		if pair.BG != "" {
			style = style.Background(lipgloss.Color(pair.BG))
		}
		built[tag] = style
	}
	m.styleCache[theme.Name()] = built
	return built
}

// Convert a Bubble Tea key to a logical notepad.KeyEvent.
func convertBubbleKey(msg tea.KeyMsg, keys KeyMap) notepad.KeyEvent {
	switch {
	case key.Matches(msg, keys.NewTab):
		return notepad.KeyEvent{Key: notepad.KeyNewTab}
	case key.Matches(msg, keys.Open):
		return notepad.KeyEvent{Key: notepad.KeyOpen}
	case key.Matches(msg, keys.Save):
		return notepad.KeyEvent{Key: notepad.KeySave}
	case key.Matches(msg, keys.CloseTab):
		return notepad.KeyEvent{Key: notepad.KeyCloseTab}
	case key.Matches(msg, keys.Quit):
		return notepad.KeyEvent{Key: notepad.KeyQuit}
	case key.Matches(msg, keys.Find):
		return notepad.KeyEvent{Key: notepad.KeyFind}
	case key.Matches(msg, keys.FindNext):
		return notepad.KeyEvent{Key: notepad.KeyFindNext}
	case key.Matches(msg, keys.GotoLine):
		return notepad.KeyEvent{Key: notepad.KeyGotoLine}
	case key.Matches(msg, keys.ToggleTheme):
		return notepad.KeyEvent{Key: notepad.KeyToggleTheme}
	case key.Matches(msg, keys.ToggleSyntax):
		return notepad.KeyEvent{Key: notepad.KeyToggleSyntax}
	case key.Matches(msg, keys.NextTab):
		return notepad.KeyEvent{Key: notepad.KeyNextTab}
	case key.Matches(msg, keys.PrevTab):
		return notepad.KeyEvent{Key: notepad.KeyPrevTab}
	}

	ev := notepad.KeyEvent{}

	if len(msg.Runes) > 0 {
		ev.Rune = msg.Runes[0]
	}

	switch msg.Type {
	case tea.KeyEnter:
		ev.Key = notepad.KeyEnter
	case tea.KeySpace:
		ev.Rune = ' '
	case tea.KeyEsc:
		ev.Key = notepad.KeyEscape
	case tea.KeyBackspace:
		ev.Key = notepad.KeyBackspace
	case tea.KeyDelete:
		ev.Key = notepad.KeyDelete
	case tea.KeyTab:
		ev.Key = notepad.KeyTab
	case tea.KeyUp:
		ev.Key = notepad.KeyUp
	case tea.KeyDown:
		ev.Key = notepad.KeyDown
	case tea.KeyLeft:
		ev.Key = notepad.KeyLeft
	case tea.KeyRight:
		ev.Key = notepad.KeyRight
	case tea.KeyHome:
		ev.Key = notepad.KeyHome
	case tea.KeyEnd:
		ev.Key = notepad.KeyEnd
	case tea.KeyPgUp:
		ev.Key = notepad.KeyPageUp
	case tea.KeyPgDown:
		ev.Key = notepad.KeyPageDown
	}

	return ev
}
