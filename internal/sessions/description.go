package sessions

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDescriptionFile is looked up in each project's originating directory
const DefaultDescriptionFile = "CLAUDE.md"

const boilerplatePreamble = "This file provides guidance"

// ReadDescription returns the first descriptive line of the project's
// documentation file, or "" when there is none.
func ReadDescription(projectPath, fileName string) string {
	if projectPath == "" {
		return ""
	}
	if fileName == "" {
		fileName = DefaultDescriptionFile
	}

	file, err := os.Open(filepath.Join(projectPath, fileName))
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "# "):
			continue
		case strings.HasPrefix(line, boilerplatePreamble):
			continue
		case strings.HasPrefix(line, "## "):
			return strings.TrimSpace(line[3:])
		default:
			return strings.ToValidUTF8(line, "�")
		}
	}
	return ""
}
