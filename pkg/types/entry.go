package types

import (
	"path/filepath"
	"strings"
	"time"
)

// Entry represents one filesystem object as shown in the browser.
// Entries are rebuilt on every directory read and never mutated.
type Entry struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	IsDir   bool      `json:"is_dir"`
	Size    int64     `json:"size"` // meaningful only when IsDir is false
	ModTime time.Time `json:"mod_time"`
	Kind    string    `json:"kind"`
	Hidden  bool      `json:"hidden"`
}

// Ext returns the entry's extension without the leading dot, lowercased.
func (e Entry) Ext() string {
	if e.IsDir {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
}

// kindLabels maps common extensions to a human-readable kind label.
var kindLabels = map[string]string{
	"txt":  "Plain text",
	"md":   "Markdown document",
	"pdf":  "PDF document",
	"doc":  "Word document",
	"docx": "Word document",
	"xls":  "Spreadsheet",
	"xlsx": "Spreadsheet",
	"csv":  "CSV document",
	"jpg":  "JPEG image",
	"jpeg": "JPEG image",
	"png":  "PNG image",
	"gif":  "GIF image",
	"svg":  "SVG image",
	"bmp":  "Bitmap image",
	"mp3":  "MP3 audio",
	"wav":  "WAV audio",
	"flac": "FLAC audio",
	"mp4":  "MPEG-4 video",
	"mkv":  "Matroska video",
	"mov":  "QuickTime video",
	"zip":  "ZIP archive",
	"tar":  "Tar archive",
	"gz":   "Gzip archive",
	"go":   "Go source",
	"py":   "Python source",
	"js":   "JavaScript source",
	"sh":   "Shell script",
	"json": "JSON document",
	"yaml": "YAML document",
	"yml":  "YAML document",
	"html": "HTML document",
	"css":  "Stylesheet",
}

// KindLabel derives the human-readable kind for a name. Directories are
// always "Folder"; unknown extensions fall back to "<EXT> file" and
// extensionless files to "Document".
func KindLabel(name string, isDir bool) string {
	if isDir {
		return "Folder"
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return "Document"
	}
	if label, ok := kindLabels[ext]; ok {
		return label
	}
	return strings.ToUpper(ext) + " file"
}
