package core

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Mode is the session input mode. Normal is the initial mode and the only
// one the application can exit from; every other mode is a transient prompt
// that resolves back to Normal within the same interaction.
type Mode string

const (
	ModeNormal       Mode = "normal"
	ModeSearching    Mode = "search"
	ModeGoToLine     Mode = "goto"
	ModeOpenPrompt   Mode = "open"
	ModeSaveAsPrompt Mode = "save-as"
)

// reservedRows is the number of screen rows not available to the body:
// the tab bar and the status bar plus the cursor parking row above it.
const reservedRows = 3

// Session owns the ordered set of open buffers and interprets logical key
// events against the current mode. All editor state is mutated only from
// HandleKey, which keeps the single-mutator contract without locking.
type Session struct {
	tabs    []*Buffer
	current int
	mode    Mode
	prompt  string

	search        *SearchManager
	theme         *Theme
	syntaxEnabled bool
	quit          bool
}

// Option configures a new session.
type Option func(*Session)

// WithTheme selects the startup palette by name; unknown names keep the
// default.
func WithTheme(name string) Option {
	return func(s *Session) { s.theme.Set(name) }
}

// WithSyntaxDisabled starts the session with syntax highlighting off.
func WithSyntaxDisabled() Option {
	return func(s *Session) { s.syntaxEnabled = false }
}

// NewSession creates a session with one buffer per given path, or a single
// untitled buffer when no paths are given.
func NewSession(files []string, opts ...Option) *Session {
	s := &Session{
		mode:          ModeNormal,
		search:        NewSearchManager(),
		theme:         NewTheme(),
		syntaxEnabled: true,
	}
	for _, f := range files {
		s.tabs = append(s.tabs, NewBufferFromFile(f))
	}
	if len(s.tabs) == 0 {
		s.tabs = []*Buffer{NewBuffer()}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveBuffer returns the buffer of the active tab.
func (s *Session) ActiveBuffer() *Buffer { return s.tabs[s.current] }

// Tabs returns the open buffers in display order.
func (s *Session) Tabs() []*Buffer { return s.tabs }

// CurrentTab returns the active tab index.
func (s *Session) CurrentTab() int { return s.current }

func (s *Session) Mode() Mode { return s.mode }

// Prompt returns the inline input buffer of the active prompt mode.
func (s *Session) Prompt() string { return s.prompt }

func (s *Session) Theme() *Theme { return s.theme }

func (s *Session) SyntaxEnabled() bool { return s.syntaxEnabled }

// Search exposes the search state for rendering.
func (s *Session) Search() *SearchManager { return s.search }

// ShouldQuit reports whether the quit command has been processed.
func (s *Session) ShouldQuit() bool { return s.quit }

// AddTab appends a new buffer (bound to filename when non-empty) and makes
// it the active tab.
func (s *Session) AddTab(filename string) {
	if filename == "" {
		s.tabs = append(s.tabs, NewBuffer())
	} else {
		s.tabs = append(s.tabs, NewBufferFromFile(filename))
	}
	s.current = len(s.tabs) - 1
}

// CloseTab removes the active buffer. Closing the last remaining tab is a
// no-op. The active index keeps pointing at the same slot when possible
// and is re-clamped to the new last tab otherwise.
func (s *Session) CloseTab() {
	if len(s.tabs) <= 1 {
		return
	}
	s.tabs = append(s.tabs[:s.current], s.tabs[s.current+1:]...)
	if s.current >= len(s.tabs) {
		s.current = len(s.tabs) - 1
	}
}

// SwitchTab moves the active tab cyclically by direction (+1 or -1).
func (s *Session) SwitchTab(direction int) {
	if len(s.tabs) > 1 {
		s.current = (s.current + direction + len(s.tabs)) % len(s.tabs)
	}
}

func bodyHeight(height int) int {
	return max(1, height-reservedRows)
}

// HandleKey processes one logical key event against the current mode and
// returns a Signal for the UI layer when there is an outcome to surface.
// It is the sole entry point that mutates session state.
func (s *Session) HandleKey(ev KeyEvent, height int) Signal {
	switch s.mode {
	case ModeSearching:
		s.handleSearchKey(ev, bodyHeight(height))
	case ModeGoToLine:
		s.handleGotoKey(ev, bodyHeight(height))
	case ModeOpenPrompt:
		s.handleOpenKey(ev)
	case ModeSaveAsPrompt:
		return s.handleSaveAsKey(ev)
	default:
		return s.handleNormalKey(ev, bodyHeight(height))
	}
	return nil
}

func (s *Session) handleNormalKey(ev KeyEvent, body int) Signal {
	buf := s.ActiveBuffer()

	switch ev.Key {
	case KeyQuit:
		s.quit = true
		return QuitSignal{}

	case KeyNewTab:
		s.AddTab("")

	case KeyOpen:
		s.enterPrompt(ModeOpenPrompt)

	case KeySave:
		if buf.Filename() == "" {
			s.enterPrompt(ModeSaveAsPrompt)
			return nil
		}
		return s.saveActive("")

	case KeyCloseTab:
		s.CloseTab()

	case KeyFind:
		s.enterPrompt(ModeSearching)

	case KeyGotoLine:
		s.enterPrompt(ModeGoToLine)

	case KeyToggleTheme:
		s.theme.Next()

	case KeyToggleSyntax:
		s.syntaxEnabled = !s.syntaxEnabled

	case KeyFindNext:
		s.jumpToNextMatch(body)

	case KeyTab, KeyNextTab:
		s.SwitchTab(1)

	case KeyPrevTab:
		s.SwitchTab(-1)

	case KeyUp:
		buf.MoveCursor(0, -1, body)
	case KeyDown:
		buf.MoveCursor(0, 1, body)
	case KeyLeft:
		buf.MoveCursor(-1, 0, body)
	case KeyRight:
		buf.MoveCursor(1, 0, body)
	case KeyPageUp:
		buf.MoveCursor(0, -body, body)
	case KeyPageDown:
		buf.MoveCursor(0, body, body)
	case KeyHome:
		buf.CursorHome()
	case KeyEnd:
		buf.CursorEnd()

	case KeyBackspace:
		buf.DeleteBackward()
		buf.followCursor(body)
	case KeyDelete:
		buf.DeleteForward()
	case KeyEnter:
		buf.InsertNewline()
		buf.followCursor(body)

	default:
		if ev.Rune != 0 && unicode.IsPrint(ev.Rune) {
			buf.InsertRune(ev.Rune)
		}
	}
	return nil
}

func (s *Session) enterPrompt(mode Mode) {
	s.mode = mode
	s.prompt = ""
}

func (s *Session) leavePrompt() {
	s.mode = ModeNormal
	s.prompt = ""
}

// editPrompt applies a prompt keystroke shared by all prompt modes.
// accept filters which runes the prompt consumes.
func (s *Session) editPrompt(ev KeyEvent, accept func(rune) bool) {
	switch ev.Key {
	case KeyBackspace:
		if s.prompt != "" {
			runes := []rune(s.prompt)
			s.prompt = string(runes[:len(runes)-1])
		}
	default:
		if ev.Rune != 0 && accept(ev.Rune) {
			s.prompt += string(ev.Rune)
		}
	}
}

func isPrintable(r rune) bool { return unicode.IsPrint(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (s *Session) handleSearchKey(ev KeyEvent, body int) {
	switch ev.Key {
	case KeyEscape:
		s.leavePrompt()
	case KeyEnter:
		query := s.prompt
		s.leavePrompt()
		if query == "" {
			return
		}
		s.search.Search(s.ActiveBuffer().Lines(), query, false)
		s.jumpToNextMatch(body)
	default:
		s.editPrompt(ev, isPrintable)
	}
}

func (s *Session) handleGotoKey(ev KeyEvent, body int) {
	switch ev.Key {
	case KeyEscape:
		s.leavePrompt()
	case KeyEnter:
		target := s.prompt
		s.leavePrompt()
		n, err := strconv.Atoi(target)
		if err != nil {
			return // silent cancel on empty or non-numeric input
		}
		s.ActiveBuffer().GotoLine(n, body)
	default:
		s.editPrompt(ev, isDigit)
	}
}

func (s *Session) handleOpenKey(ev KeyEvent) {
	switch ev.Key {
	case KeyEscape:
		s.leavePrompt()
	case KeyEnter:
		path := strings.TrimSpace(s.prompt)
		s.leavePrompt()
		if path == "" {
			return
		}
		if _, err := os.Stat(path); err != nil {
			return // nonexistent paths are silently ignored
		}
		s.AddTab(path)
	default:
		s.editPrompt(ev, isPrintable)
	}
}

func (s *Session) handleSaveAsKey(ev KeyEvent) Signal {
	switch ev.Key {
	case KeyEscape:
		s.leavePrompt()
	case KeyEnter:
		name := strings.TrimSpace(s.prompt)
		s.leavePrompt()
		if name == "" {
			return nil
		}
		return s.saveActive(name)
	default:
		s.editPrompt(ev, isPrintable)
	}
	return nil
}

func (s *Session) saveActive(path string) Signal {
	buf := s.ActiveBuffer()
	if err := buf.Save(path); err != nil {
		if errors.Is(err, ErrNoFilename) {
			s.enterPrompt(ModeSaveAsPrompt)
			return nil
		}
		return ErrorSignal{Err: err}
	}
	return SavedSignal{Path: buf.Filename()}
}

// jumpToNextMatch moves the cursor to the first match strictly after it,
// wrapping around the document. Without matches it does nothing.
func (s *Session) jumpToNextMatch(body int) {
	buf := s.ActiveBuffer()
	x, y := buf.Cursor()
	m, ok := s.search.NextMatch(y, x)
	if !ok {
		return
	}
	buf.SetCursor(m.Line, m.Start)
	buf.MoveCursor(0, 0, body)
}
