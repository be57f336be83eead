package sessions

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/strrl/wherewasi/pkg/models"
)

// jsonlReader reads every *.jsonl file in a project directory as one session
type jsonlReader struct{}

func (jsonlReader) Read(dir string) []Entry {
	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return nil
	}
	sort.Strings(files)

	var entries []Entry
	for _, path := range files {
		entry, ok := readJSONLSession(path)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// record is a decoded log line, narrowed to the kinds the scan cares about
type record interface {
	timestamp() string
}

type baseRecord struct {
	ts string
}

func (r baseRecord) timestamp() string { return r.ts }

type summaryRecord struct {
	baseRecord
	summary string
}

type userRecord struct {
	baseRecord
	cwd    string
	prompt string // Empty when the message content is structured
}

type otherRecord struct {
	baseRecord
}

// decodeRecord returns nil for lines that are not JSON objects
func decodeRecord(line []byte) record {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil || raw == nil {
		return nil
	}

	base := baseRecord{ts: stringField(raw, "timestamp")}
	switch stringField(raw, "type") {
	case "summary":
		return summaryRecord{baseRecord: base, summary: stringField(raw, "summary")}
	case "user":
		return userRecord{
			baseRecord: base,
			cwd:        stringField(raw, "cwd"),
			prompt:     messageText(raw["message"]),
		}
	default:
		return otherRecord{baseRecord: base}
	}
}

// stringField returns raw[key] when it holds a JSON string
func stringField(raw map[string]json.RawMessage, key string) string {
	value, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return ""
	}
	return s
}

// messageText returns message.content when it is a plain string
func messageText(message json.RawMessage) string {
	if len(message) == 0 {
		return ""
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(message, &raw); err != nil {
		return ""
	}
	return stringField(raw, "content")
}

// sessionHead accumulates the first occurrences found in a log
type sessionHead struct {
	firstTimestamp string
	summary        string
	firstPrompt    string
	cwd            string
}

func (h *sessionHead) apply(rec record) {
	if h.firstTimestamp == "" {
		h.firstTimestamp = rec.timestamp()
	}
	switch r := rec.(type) {
	case summaryRecord:
		if h.summary == "" {
			h.summary = r.summary
		}
	case userRecord:
		if h.firstPrompt != "" {
			return
		}
		h.firstPrompt = r.prompt
		if h.cwd == "" {
			h.cwd = r.cwd
		}
	}
}

func (h *sessionHead) complete() bool {
	return h.firstTimestamp != "" && h.firstPrompt != "" && h.summary != ""
}

func readJSONLSession(path string) (Entry, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Entry{}, false
	}

	file, err := os.Open(path)
	if err != nil {
		return Entry{}, false
	}
	defer file.Close()

	head, err := scanHead(file)
	if err != nil || head.firstTimestamp == "" {
		return Entry{}, false
	}

	created, err := ParseTimestamp(head.firstTimestamp)
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		Origin: head.cwd,
		Session: models.Session{
			ID:          strings.TrimSuffix(filepath.Base(path), ".jsonl"),
			Summary:     head.summary,
			FirstPrompt: head.firstPrompt,
			Created:     created,
			Modified:    info.ModTime().UTC(),
			Source:      path,
		},
	}, true
}

// scanHead reads records until the head is complete or the log ends
func scanHead(r io.Reader) (sessionHead, error) {
	var head sessionHead
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if line = bytes.TrimSpace(line); len(line) > 0 {
			if rec := decodeRecord(line); rec != nil {
				head.apply(rec)
				if head.complete() {
					return head, nil
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return head, nil
		}
		if err != nil {
			return head, err
		}
	}
}
