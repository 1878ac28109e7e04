package core

import "strings"

// Match is a single search hit: a line index plus the start (inclusive) and
// end (exclusive) columns of the matched text, in runes.
type Match struct {
	Line  int
	Start int
	End   int
}

// SearchManager holds the results of the most recent full-text scan and an
// iteration cursor over them. It is re-scoped to the active buffer on every
// Search call.
type SearchManager struct {
	query   string
	matches []Match
	current int
}

func NewSearchManager() *SearchManager {
	return &SearchManager{current: -1}
}

// Query returns the last search string.
func (s *SearchManager) Query() string { return s.query }

// Matches returns all hits of the last scan in document order.
func (s *SearchManager) Matches() []Match { return s.matches }

// Count returns the number of hits of the last scan.
func (s *SearchManager) Count() int { return len(s.matches) }

// CurrentIndex returns the index of the current match, or -1 when
// iteration has not started.
func (s *SearchManager) CurrentIndex() int { return s.current }

// Current returns the match the iteration cursor points at.
func (s *SearchManager) Current() (Match, bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return Match{}, false
	}
	return s.matches[s.current], true
}

// Search rebuilds the match list by scanning every line for every
// occurrence of query, overlapping occurrences included (the scan advances
// one column after each hit, not past it). Matches are ordered by
// (line, start). An empty query clears the results and is not an error.
func (s *SearchManager) Search(lines []string, query string, caseSensitive bool) {
	s.query = query
	s.matches = nil
	s.current = -1
	if query == "" {
		return
	}

	needle := []rune(query)
	if !caseSensitive {
		needle = []rune(strings.ToLower(query))
	}

	for lineNum, line := range lines {
		hay := []rune(line)
		if !caseSensitive {
			hay = []rune(strings.ToLower(line))
		}
		for col := 0; col+len(needle) <= len(hay); col++ {
			if runesEqual(hay[col:col+len(needle)], needle) {
				s.matches = append(s.matches, Match{Line: lineNum, Start: col, End: col + len(needle)})
			}
		}
	}
}

// NextMatch returns the first match strictly after (afterLine, afterCol) in
// document order, wrapping to the first match overall when none follows.
// It reports false only when there are no matches at all. A successful
// return moves the iteration cursor.
func (s *SearchManager) NextMatch(afterLine, afterCol int) (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	for i, m := range s.matches {
		if m.Line > afterLine || (m.Line == afterLine && m.Start > afterCol) {
			s.current = i
			return m, true
		}
	}
	s.current = 0
	return s.matches[0], true
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
