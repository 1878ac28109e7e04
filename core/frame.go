package core

import (
	"fmt"
	"strings"
)

// TabEntry is one cell of the tab bar.
type TabEntry struct {
	Title  string
	Active bool
}

// Frame is one full-screen render pass: everything the terminal layer
// needs for a redraw. The terminal layer owns only the actual paint and
// cursor placement.
type Frame struct {
	Tabs   []TabEntry
	Rows   [][]Segment
	Status string

	// CursorRow/CursorCol are the intended screen coordinates: row 0 is
	// the tab bar, body rows follow, and prompt modes park the cursor at
	// the end of the status line.
	CursorRow int
	CursorCol int
}

// Frame computes the current render pass for a terminal of the given size.
func (s *Session) Frame(width, height int) Frame {
	buf := s.ActiveBuffer()
	body := bodyHeight(height)

	f := Frame{
		Tabs:   s.tabEntries(width),
		Status: s.statusLine(),
	}

	match, haveMatch := s.search.Current()
	for i := 0; i < body; i++ {
		lineNum := buf.ScrollY() + i
		if lineNum >= buf.LineCount() {
			f.Rows = append(f.Rows, nil)
			continue
		}
		line := buf.Line(lineNum)
		var segs []Segment
		if s.syntaxEnabled && buf.FileType() != FileTypeText {
			segs = Classify(line, buf.FileType())
		} else {
			segs = []Segment{{Text: line, Tag: TagText}}
		}
		if haveMatch && match.Line == lineNum {
			segs = overlayMatch(segs, match)
		}
		f.Rows = append(f.Rows, segs)
	}

	if s.mode == ModeNormal {
		x, y := buf.Cursor()
		f.CursorRow = y - buf.ScrollY() + 1
		f.CursorCol = min(x, max(0, width-1))
	} else {
		f.CursorRow = height - 1
		f.CursorCol = len([]rune(f.Status))
	}

	return f
}

// tabEntries builds the tab bar: titles truncated to 15 cells, the strip
// stops filling near the right edge.
func (s *Session) tabEntries(width int) []TabEntry {
	var entries []TabEntry
	x := 0
	for i, tab := range s.tabs {
		if x >= width-20 {
			break
		}
		name := []rune(tab.DisplayName())
		if len(name) > 15 {
			name = append(name[:12], []rune("...")...)
		}
		title := " " + string(name) + " "
		entries = append(entries, TabEntry{Title: title, Active: i == s.current})
		x += len([]rune(title)) + 1
	}
	return entries
}

func (s *Session) statusLine() string {
	switch s.mode {
	case ModeSearching:
		status := " Search: " + s.prompt
		if s.search.Count() > 0 && s.search.CurrentIndex() >= 0 {
			status += fmt.Sprintf(" (%d/%d)", s.search.CurrentIndex()+1, s.search.Count())
		}
		return status
	case ModeGoToLine:
		return " Go to line: " + s.prompt
	case ModeOpenPrompt:
		return " Open file: " + s.prompt
	case ModeSaveAsPrompt:
		return " Save as: " + s.prompt
	}

	buf := s.ActiveBuffer()
	x, y := buf.Cursor()

	var b strings.Builder
	fmt.Fprintf(&b, " Ln %d, Col %d", y+1, x+1)
	if buf.Filename() != "" {
		b.WriteString(" | " + buf.Filename())
	} else {
		b.WriteString(" | Untitled")
	}
	if buf.IsModified() {
		b.WriteString(" [Modified]")
	}
	b.WriteString(" | " + strings.ToUpper(string(buf.FileType())))
	b.WriteString(" | Theme: " + s.theme.Name())
	if !s.syntaxEnabled {
		b.WriteString(" [No Syntax]")
	}
	return b.String()
}

// overlayMatch re-tags the current search match span inside a row's
// segments, splitting segments at the match boundaries. Columns are runes,
// matching the search scan.
func overlayMatch(segs []Segment, m Match) []Segment {
	var out []Segment
	col := 0
	for _, seg := range segs {
		runes := []rune(seg.Text)
		segStart, segEnd := col, col+len(runes)
		col = segEnd

		if segEnd <= m.Start || segStart >= m.End {
			out = append(out, seg)
			continue
		}

		lo := max(m.Start, segStart) - segStart
		hi := min(m.End, segEnd) - segStart
		if lo > 0 {
			out = append(out, Segment{Text: string(runes[:lo]), Tag: seg.Tag})
		}
		out = append(out, Segment{Text: string(runes[lo:hi]), Tag: TagSearchHighlight})
		if hi < len(runes) {
			out = append(out, Segment{Text: string(runes[hi:]), Tag: seg.Tag})
		}
	}
	return out
}
