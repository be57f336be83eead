package sessions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/strrl/wherewasi/pkg/models"
)

// IndexFileName is the precomputed per-project index written by newer assistant versions
const IndexFileName = "sessions-index.json"

// Mode selects which on-disk shape is read from a project directory
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeJSONL Mode = "jsonl"
	ModeIndex Mode = "index"
)

// ParseMode validates a mode name, empty meaning auto
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeJSONL:
		return ModeJSONL, nil
	case ModeIndex:
		return ModeIndex, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want auto, jsonl or index)", s)
	}
}

// Entry is one session together with the originating path it was recorded under
type Entry struct {
	Origin  string
	Session models.Session
}

// Reader extracts the sessions stored in one project directory.
// Failures are absorbed: an unreadable unit yields no entries.
type Reader interface {
	Read(dir string) []Entry
}

// ReaderFor picks the reader for dir
func ReaderFor(dir string, mode Mode) Reader {
	switch mode {
	case ModeJSONL:
		return jsonlReader{}
	case ModeIndex:
		return indexReader{}
	}
	if info, err := os.Stat(filepath.Join(dir, IndexFileName)); err == nil && !info.IsDir() {
		return indexReader{}
	}
	return jsonlReader{}
}

// ProjectName returns the final component of an originating path,
// or the path itself when it has none.
func ProjectName(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return path
	}
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
