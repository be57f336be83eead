package sessions

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/strrl/wherewasi/pkg/models"
)

// indexReader reads the sessions-index.json of a project directory
type indexReader struct{}

func (indexReader) Read(dir string) []Entry {
	indexPath := filepath.Join(dir, IndexFileName)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return nil
	}

	// Fields are decoded one by one so an odd entry cannot spoil the rest.
	var index map[string]json.RawMessage
	if err := json.Unmarshal(data, &index); err != nil {
		return nil
	}
	var rawEntries []json.RawMessage
	if err := json.Unmarshal(index["entries"], &rawEntries); err != nil || len(rawEntries) == 0 {
		return nil
	}

	indexEntries := make([]map[string]json.RawMessage, 0, len(rawEntries))
	for _, raw := range rawEntries {
		var e map[string]json.RawMessage
		if err := json.Unmarshal(raw, &e); err != nil || e == nil {
			continue
		}
		indexEntries = append(indexEntries, e)
	}
	if len(indexEntries) == 0 {
		return nil
	}

	origin := stringField(index, "originalPath")
	if origin == "" {
		origin = stringField(indexEntries[0], "projectPath")
	}
	if origin == "" {
		origin = filepath.Base(dir)
	}

	entries := make([]Entry, 0, len(indexEntries))
	for _, e := range indexEntries {
		source := stringField(e, "fullPath")
		if source == "" {
			source = indexPath
		}
		entries = append(entries, Entry{
			Origin: origin,
			Session: models.Session{
				ID:          stringField(e, "sessionId"),
				Summary:     stringField(e, "summary"),
				FirstPrompt: stringField(e, "firstPrompt"),
				Created:     parseTimestampOr(stringField(e, "created"), Epoch),
				Modified:    parseTimestampOr(stringField(e, "modified"), Epoch),
				Source:      source,
			},
		})
	}
	return entries
}
