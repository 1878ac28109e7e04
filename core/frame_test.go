package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderRow(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func TestFrameRowCountMatchesBodyHeight(t *testing.T) {
	s := NewSession(nil)
	f := s.Frame(80, 24)
	assert.Len(t, f.Rows, 21)

	// Rows past the end of the document are nil, not empty segments.
	assert.Equal(t, []Segment{{Text: "", Tag: TagText}}, f.Rows[0])
	for _, row := range f.Rows[1:] {
		assert.Nil(t, row)
	}
}

func TestFrameTinyTerminalKeepsOneBodyRow(t *testing.T) {
	s := NewSession(nil)
	f := s.Frame(80, 2)
	assert.Len(t, f.Rows, 1)
}

func TestFrameTabTitles(t *testing.T) {
	s := NewSession(nil)
	s.AddTab("")
	f := s.Frame(80, 24)

	require.Len(t, f.Tabs, 2)
	assert.Equal(t, " Untitled ", f.Tabs[0].Title)
	assert.False(t, f.Tabs[0].Active)
	assert.True(t, f.Tabs[1].Active)
}

func TestFrameTabTitleTruncation(t *testing.T) {
	s := NewSession(nil)
	s.ActiveBuffer().filename = "a_very_long_filename.txt"
	f := s.Frame(80, 24)

	require.Len(t, f.Tabs, 1)
	assert.Equal(t, " a_very_long_... ", f.Tabs[0].Title)
}

func TestFrameTabBarStopsNearRightEdge(t *testing.T) {
	s := NewSession(nil)
	for i := 0; i < 10; i++ {
		s.AddTab("")
	}
	f := s.Frame(40, 24)
	assert.Less(t, len(f.Tabs), 11, "narrow terminals drop trailing tabs")
	assert.NotEmpty(t, f.Tabs)
}

func TestFrameStatusLineNormal(t *testing.T) {
	s := NewSession(nil)
	typeText(s, "abc")
	f := s.Frame(80, 24)
	assert.Equal(t, " Ln 1, Col 4 | Untitled [Modified] | TEXT | Theme: default", f.Status)
}

func TestFrameStatusLineNoSyntax(t *testing.T) {
	s := NewSession(nil, WithSyntaxDisabled())
	f := s.Frame(80, 24)
	assert.True(t, strings.HasSuffix(f.Status, " [No Syntax]"))
}

func TestFrameStatusLinePrompts(t *testing.T) {
	s := NewSession(nil)

	press(s, KeyFind)
	typeText(s, "abc")
	assert.Equal(t, " Search: abc", s.Frame(80, 24).Status)
	press(s, KeyEscape)

	press(s, KeyGotoLine)
	typeText(s, "12")
	assert.Equal(t, " Go to line: 12", s.Frame(80, 24).Status)
	press(s, KeyEscape)

	press(s, KeyOpen)
	assert.Equal(t, " Open file: ", s.Frame(80, 24).Status)
	press(s, KeyEscape)

	typeText(s, "x")
	press(s, KeySave)
	assert.Equal(t, " Save as: ", s.Frame(80, 24).Status)
}

func TestFrameSearchStatusShowsPosition(t *testing.T) {
	s := NewSession(nil)
	typeText(s, "foo foo foo")
	press(s, KeyFind)
	typeText(s, "foo")
	press(s, KeyEnter)

	// The commit wrapped to the first match; re-entering the prompt shows
	// the current iteration position.
	press(s, KeyFind)
	typeText(s, "f")
	assert.Equal(t, " Search: f (1/3)", s.Frame(80, 24).Status)

	press(s, KeyEscape)
	press(s, KeyFindNext)
	press(s, KeyFind)
	assert.Equal(t, " Search:  (2/3)", s.Frame(80, 24).Status)
}

func TestFrameSyntaxRows(t *testing.T) {
	s := NewSession(nil)
	s.ActiveBuffer().filename = "x.py"
	s.ActiveBuffer().fileType = FileTypePython
	typeText(s, "def f(): # hi")

	f := s.Frame(80, 24)
	row := f.Rows[0]
	assert.Equal(t, "def f(): # hi", renderRow(row))
	assert.Equal(t, TagKeyword, row[0].Tag)
	assert.Equal(t, "def", row[0].Text)
	assert.Equal(t, TagComment, row[len(row)-1].Tag)
}

func TestFrameSyntaxDisabledGivesPlainRows(t *testing.T) {
	s := NewSession(nil, WithSyntaxDisabled())
	s.ActiveBuffer().fileType = FileTypePython
	typeText(s, "def f():")

	f := s.Frame(80, 24)
	assert.Equal(t, []Segment{{Text: "def f():", Tag: TagText}}, f.Rows[0])
}

func TestFrameSearchHighlightOverlay(t *testing.T) {
	s := NewSession(nil)
	typeText(s, "one two three")
	s.ActiveBuffer().SetCursor(0, 0)
	press(s, KeyFind)
	typeText(s, "two")
	press(s, KeyEnter)

	f := s.Frame(80, 24)
	row := f.Rows[0]
	require.Equal(t, "one two three", renderRow(row))

	var hit *Segment
	for i := range row {
		if row[i].Tag == TagSearchHighlight {
			hit = &row[i]
		}
	}
	require.NotNil(t, hit)
	assert.Equal(t, "two", hit.Text)
}

func TestFrameOverlaySplitsMidSegment(t *testing.T) {
	segs := []Segment{{Text: "héllo world", Tag: TagText}}
	out := overlayMatch(segs, Match{Line: 0, Start: 1, End: 4})
	assert.Equal(t, []Segment{
		{Text: "h", Tag: TagText},
		{Text: "éll", Tag: TagSearchHighlight},
		{Text: "o world", Tag: TagText},
	}, out)
}

func TestFrameCursorNormalMode(t *testing.T) {
	s := NewSession(nil)
	typeText(s, "hello")
	f := s.Frame(80, 24)
	assert.Equal(t, 1, f.CursorRow, "body starts below the tab bar")
	assert.Equal(t, 5, f.CursorCol)
}

func TestFrameCursorClampsToWidth(t *testing.T) {
	s := NewSession(nil)
	typeText(s, strings.Repeat("a", 50))
	f := s.Frame(20, 24)
	assert.Equal(t, 19, f.CursorCol)
}

func TestFrameCursorFollowsScroll(t *testing.T) {
	s := NewSession(nil)
	for i := 0; i < 40; i++ {
		press(s, KeyEnter)
	}
	f := s.Frame(80, 24)
	_, y := s.ActiveBuffer().Cursor()
	assert.Equal(t, y-s.ActiveBuffer().ScrollY()+1, f.CursorRow)
	assert.Equal(t, 21, f.CursorRow, "cursor sits on the last body row")
}

func TestFrameCursorInPromptMode(t *testing.T) {
	s := NewSession(nil)
	press(s, KeyFind)
	typeText(s, "ab")
	f := s.Frame(80, 24)
	assert.Equal(t, 23, f.CursorRow)
	assert.Equal(t, len(" Search: ab"), f.CursorCol)
}
