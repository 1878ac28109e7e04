package core

import "fmt"

// KeyCode represents non-character keys and the editor's named control chords.
type KeyCode int

const (
	KeyNone KeyCode = iota // plain rune, see KeyEvent.Rune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab

	// Navigation keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Named control chords. The terminal layer decides which physical
	// chord maps to which command; the session only sees these.
	KeyNewTab
	KeyOpen
	KeySave
	KeyCloseTab
	KeyQuit
	KeyFind
	KeyGotoLine
	KeyToggleTheme
	KeyToggleSyntax
	KeyFindNext
	KeyNextTab
	KeyPrevTab
)

// KeyEvent represents a single logical keyboard input event.
type KeyEvent struct {
	Rune rune
	Key  KeyCode
}

var keyNames = map[KeyCode]string{
	KeyEnter:        "Enter",
	KeyEscape:       "Escape",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyTab:          "Tab",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyNewTab:       "NewTab",
	KeyOpen:         "Open",
	KeySave:         "Save",
	KeyCloseTab:     "CloseTab",
	KeyQuit:         "Quit",
	KeyFind:         "Find",
	KeyGotoLine:     "GotoLine",
	KeyToggleTheme:  "ToggleTheme",
	KeyToggleSyntax: "ToggleSyntax",
	KeyFindNext:     "FindNext",
	KeyNextTab:      "NextTab",
	KeyPrevTab:      "PrevTab",
}

// String returns a readable representation of the event, mainly for tests
// and debug logging.
func (k KeyEvent) String() string {
	if name, ok := keyNames[k.Key]; ok {
		return name
	}
	if k.Rune != 0 {
		return string(k.Rune)
	}
	return fmt.Sprintf("Unknown(%d)", k.Key)
}
