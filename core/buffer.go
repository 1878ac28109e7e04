package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Buffer is one open document: its lines, cursor, scroll offset and file
// binding. A buffer always holds at least one line, and the cursor always
// satisfies 0 <= y < len(lines) and 0 <= x <= len(lines[y]) (the column may
// sit one past the last character). Columns count runes, not bytes.
type Buffer struct {
	filename string
	lines    []string
	cursorX  int
	cursorY  int
	scrollY  int
	modified bool
	fileType FileType
}

// NewBuffer creates an empty, untitled buffer.
func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}, fileType: FileTypeText}
}

// NewBufferFromFile creates a buffer bound to path. The file content is
// loaded when the path exists; a nonexistent path yields a fresh empty
// buffer that will be created on first save.
func NewBufferFromFile(path string) *Buffer {
	b := NewBuffer()
	if _, err := os.Stat(path); err == nil {
		b.Load(path)
	} else {
		b.filename = path
		b.fileType = FileTypeOf(path)
	}
	return b
}

// Filename returns the bound path, or "" for an untitled buffer.
func (b *Buffer) Filename() string { return b.filename }

// Lines returns the backing line slice. Callers must not mutate it.
func (b *Buffer) Lines() []string { return b.lines }

// Line returns the line at index i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Cursor returns the current (column, row) position.
func (b *Buffer) Cursor() (x, y int) { return b.cursorX, b.cursorY }

// ScrollY returns the first visible line index.
func (b *Buffer) ScrollY() int { return b.scrollY }

func (b *Buffer) IsModified() bool { return b.modified }

func (b *Buffer) FileType() FileType { return b.fileType }

// splitLines is the exact inverse of the newline join used by Save, so a
// save/load round trip reproduces the line sequence identically. An empty
// file is one empty line.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

// Load replaces the buffer content with the file at path and rebinds the
// buffer to it. A read failure is not fatal: the buffer content becomes a
// single synthetic line describing the error and stays fully editable.
// Load clears the modified flag either way.
func (b *Buffer) Load(path string) {
	b.filename = path
	b.fileType = FileTypeOf(path)
	b.cursorX, b.cursorY, b.scrollY = 0, 0, 0
	b.modified = false

	content, err := os.ReadFile(path)
	if err != nil {
		b.lines = []string{fmt.Sprintf("Error loading file: %v", err)}
		return
	}
	b.lines = splitLines(string(content))
}

// Save writes the buffer to disk as newline-joined UTF-8. A non-empty path
// rebinds the buffer (and re-derives its file type) before writing. Save
// returns ErrNoFilename when no path is available anywhere; on a write
// failure the modified flag is kept so the user can retry.
func (b *Buffer) Save(path string) error {
	if path != "" {
		b.filename = path
		b.fileType = FileTypeOf(path)
	}
	if b.filename == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(b.filename, []byte(strings.Join(b.lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", b.filename, err)
	}
	b.modified = false
	return nil
}

// InsertRune splices r into the current line at the cursor and advances the
// cursor one column.
func (b *Buffer) InsertRune(r rune) {
	line := []rune(b.lines[b.cursorY])
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:b.cursorX]...)
	next = append(next, r)
	next = append(next, line[b.cursorX:]...)
	b.lines[b.cursorY] = string(next)
	b.cursorX++
	b.modified = true
}

// DeleteBackward removes the character left of the cursor, merging the
// current line into the previous one when the cursor is at column zero.
// At the very start of the document it is a no-op.
func (b *Buffer) DeleteBackward() {
	if b.cursorX > 0 {
		line := []rune(b.lines[b.cursorY])
		b.lines[b.cursorY] = string(line[:b.cursorX-1]) + string(line[b.cursorX:])
		b.cursorX--
		b.modified = true
		return
	}
	if b.cursorY > 0 {
		prev := b.lines[b.cursorY-1]
		b.cursorX = len([]rune(prev))
		b.lines[b.cursorY-1] = prev + b.lines[b.cursorY]
		b.lines = append(b.lines[:b.cursorY], b.lines[b.cursorY+1:]...)
		b.cursorY--
		b.modified = true
	}
}

// DeleteForward removes the character under the cursor, merging the next
// line into the current one when the cursor sits at the line end. At the
// very end of the document it is a no-op.
func (b *Buffer) DeleteForward() {
	line := []rune(b.lines[b.cursorY])
	if b.cursorX < len(line) {
		b.lines[b.cursorY] = string(line[:b.cursorX]) + string(line[b.cursorX+1:])
		b.modified = true
		return
	}
	if b.cursorY < len(b.lines)-1 {
		b.lines[b.cursorY] += b.lines[b.cursorY+1]
		b.lines = append(b.lines[:b.cursorY+1], b.lines[b.cursorY+2:]...)
		b.modified = true
	}
}

// InsertNewline splits the current line at the cursor; the cursor moves to
// column zero of the new line.
func (b *Buffer) InsertNewline() {
	line := []rune(b.lines[b.cursorY])
	head, tail := string(line[:b.cursorX]), string(line[b.cursorX:])
	b.lines[b.cursorY] = head
	b.lines = append(b.lines, "")
	copy(b.lines[b.cursorY+2:], b.lines[b.cursorY+1:])
	b.lines[b.cursorY+1] = tail
	b.cursorY++
	b.cursorX = 0
	b.modified = true
}

// MoveCursor moves the cursor by (dx, dy), clamping the row first and then
// the column against the target line. The column is not sticky: moving onto
// a shorter line truncates it. Afterwards the scroll offset follows the
// cursor by the minimum amount needed to keep it inside a viewport of
// viewportHeight rows.
func (b *Buffer) MoveCursor(dx, dy, viewportHeight int) {
	y := clamp(b.cursorY+dy, 0, len(b.lines)-1)
	x := clamp(b.cursorX+dx, 0, len([]rune(b.lines[y])))
	b.cursorY, b.cursorX = y, x
	b.followCursor(viewportHeight)
}

// SetCursor places the cursor at (row, col), clamped into the valid range.
// The scroll offset is left alone; callers that need the cursor visible
// follow up with MoveCursor(0, 0, height).
func (b *Buffer) SetCursor(row, col int) {
	b.cursorY = clamp(row, 0, len(b.lines)-1)
	b.cursorX = clamp(col, 0, len([]rune(b.lines[b.cursorY])))
}

// CursorHome moves the cursor to column zero of the current line.
func (b *Buffer) CursorHome() { b.cursorX = 0 }

// CursorEnd moves the cursor one past the last character of the current line.
func (b *Buffer) CursorEnd() { b.cursorX = len([]rune(b.lines[b.cursorY])) }

// GotoLine moves to 1-based line n (clamped), column zero, and centers the
// viewport on it when there is room above.
func (b *Buffer) GotoLine(n, viewportHeight int) {
	target := clamp(n-1, 0, len(b.lines)-1)
	b.cursorY = target
	b.cursorX = 0
	if viewportHeight > 0 && target >= viewportHeight/2 {
		b.scrollY = target - viewportHeight/2
	} else {
		b.scrollY = 0
	}
}

// DisplayName is the tab title: the filename's basename or "Untitled",
// with a leading * while the buffer has unsaved changes.
func (b *Buffer) DisplayName() string {
	name := "Untitled"
	if b.filename != "" {
		name = filepath.Base(b.filename)
	}
	if b.modified {
		return "*" + name
	}
	return name
}

func (b *Buffer) followCursor(viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	if b.cursorY < b.scrollY {
		b.scrollY = b.cursorY
	} else if b.cursorY >= b.scrollY+viewportHeight {
		b.scrollY = b.cursorY - viewportHeight + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
