package core

import (
	"regexp"
	"sort"
)

// Segment is a styled slice of a line. The segments returned by Classify
// cover the whole line in order, with no gaps and no overlaps.
type Segment struct {
	Text string
	Tag  StyleTag
}

type highlightRule struct {
	pattern *regexp.Regexp
	tag     StyleTag
}

func rule(pattern string, tag StyleTag) highlightRule {
	return highlightRule{pattern: regexp.MustCompile(pattern), tag: tag}
}

// highlightRules is the per-file-type rule registry. It is built once at
// startup and never mutated afterwards; rule order is the discovery order
// used to break ties between spans starting at the same offset.
var highlightRules = map[FileType][]highlightRule{
	FileTypePython: {
		rule(`\b(def|class|if|elif|else|for|while|try|except|finally|with|import|from|return|yield|lambda|pass|break|continue|and|or|not|in|is|True|False|None)\b`, TagKeyword),
		rule(`#.*$`, TagComment),
		rule(`["'].*?["']`, TagString),
		rule(`\b\d+\b`, TagNumber),
		rule(`\b(self|cls)\b`, TagSpecial),
	},
	FileTypeJavaScript: {
		rule(`\b(function|var|let|const|if|else|for|while|do|switch|case|default|try|catch|finally|return|break|continue|true|false|null|undefined)\b`, TagKeyword),
		rule(`//.*$`, TagComment),
		rule(`/\*.*?\*/`, TagComment),
		rule(`["'].*?["']`, TagString),
		rule(`\b\d+\b`, TagNumber),
		rule(`\b(this|window|document)\b`, TagSpecial),
	},
	FileTypeC: {
		rule(`\b(int|char|float|double|void|if|else|for|while|do|switch|case|default|return|break|continue|struct|typedef|enum|static|extern|const|volatile)\b`, TagKeyword),
		rule(`//.*$`, TagComment),
		rule(`/\*.*?\*/`, TagComment),
		rule(`".*?"`, TagString),
		rule(`\b\d+\b`, TagNumber),
		rule(`#\w+`, TagSpecial),
	},
	FileTypeGo: {
		rule(`\b(func|package|import|type|struct|interface|map|chan|if|else|for|range|switch|case|default|return|break|continue|go|defer|select|var|const|fallthrough|goto|true|false|nil|iota)\b`, TagKeyword),
		rule(`//.*$`, TagComment),
		rule(`/\*.*?\*/`, TagComment),
		rule("[\"`].*?[\"`]", TagString),
		rule(`\b\d+\b`, TagNumber),
		rule(`\b(make|new|len|cap|append|copy|panic|recover)\b`, TagSpecial),
	},
	FileTypeHTML: {
		rule(`</?[^>]+>`, TagKeyword),
		rule(`<!--.*?-->`, TagComment),
		rule(`["'].*?["']`, TagString),
	},
	FileTypeCSS: {
		rule(`[.#]?\w+\s*\{`, TagKeyword),
		rule(`/\*.*?\*/`, TagComment),
		rule(`:\s*[^;]+;`, TagString),
		rule(`["'].*?["']`, TagString),
	},
	FileTypeMarkdown: {
		rule(`^#{1,6}\s.*$`, TagKeyword),
		rule(`\*\*.*?\*\*`, TagString),
		rule(`\*.*?\*`, TagNumber),
		rule("`.*?`", TagSpecial),
		rule(`\[.*?\]\(.*?\)`, TagKeyword),
	},
}

type highlightSpan struct {
	start, end int
	tag        StyleTag
}

// Classify splits a line into styled segments for the given file type.
//
// Every rule contributes all of its non-overlapping matches; the combined
// spans are stable-sorted by start offset and accepted in that order, a
// span being discarded when its start falls inside an already accepted
// one. Gaps are filled with TagText. File types without a rule set return
// the whole line as a single untagged segment. The concatenation of the
// returned segment texts is always exactly the input line.
func Classify(line string, ft FileType) []Segment {
	rules, ok := highlightRules[ft]
	if !ok {
		return []Segment{{Text: line, Tag: TagText}}
	}

	var spans []highlightSpan
	for _, r := range rules {
		for _, loc := range r.pattern.FindAllStringIndex(line, -1) {
			if loc[0] == loc[1] {
				continue
			}
			spans = append(spans, highlightSpan{start: loc[0], end: loc[1], tag: r.tag})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var accepted []highlightSpan
	for _, s := range spans {
		inside := false
		for _, a := range accepted {
			if s.start >= a.start && s.start < a.end {
				inside = true
				break
			}
		}
		if !inside {
			accepted = append(accepted, s)
		}
	}

	var segments []Segment
	pos := 0
	for _, s := range accepted {
		if s.start > pos {
			segments = append(segments, Segment{Text: line[pos:s.start], Tag: TagText})
		}
		segments = append(segments, Segment{Text: line[s.start:s.end], Tag: s.tag})
		pos = s.end
	}
	if pos < len(line) {
		segments = append(segments, Segment{Text: line[pos:], Tag: TagText})
	}
	if len(segments) == 0 {
		return []Segment{{Text: line, Tag: TagText}}
	}
	return segments
}
