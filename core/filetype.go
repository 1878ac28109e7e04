package core

import (
	"path/filepath"
	"strings"
)

// FileType tags a buffer with the highlighter rule set that applies to it.
type FileType string

const (
	FileTypeText       FileType = "text"
	FileTypePython     FileType = "python"
	FileTypeJavaScript FileType = "javascript"
	FileTypeC          FileType = "c"
	FileTypeHTML       FileType = "html"
	FileTypeCSS        FileType = "css"
	FileTypeMarkdown   FileType = "markdown"
	FileTypeGo         FileType = "go"
)

var extensionTypes = map[string]FileType{
	".py":       FileTypePython,
	".js":       FileTypeJavaScript,
	".c":        FileTypeC,
	".h":        FileTypeC,
	".cpp":      FileTypeC,
	".hpp":      FileTypeC,
	".html":     FileTypeHTML,
	".htm":      FileTypeHTML,
	".css":      FileTypeCSS,
	".md":       FileTypeMarkdown,
	".markdown": FileTypeMarkdown,
	".go":       FileTypeGo,
}

// FileTypeOf determines the file type from a filename extension.
// Unknown extensions and untitled buffers map to FileTypeText.
func FileTypeOf(filename string) FileType {
	if filename == "" {
		return FileTypeText
	}
	if ft, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ft
	}
	return FileTypeText
}
