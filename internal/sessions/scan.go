package sessions

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/strrl/wherewasi/internal/logging"
	"github.com/strrl/wherewasi/pkg/models"
)

// Scanner walks a projects directory and aggregates sessions by originating path
type Scanner struct {
	Root            string
	Mode            Mode
	DescriptionFile string
	Logger          *logrus.Entry
}

// NewScanner creates a scanner for root that auto-detects the storage shape
func NewScanner(root string) *Scanner {
	return &Scanner{
		Root:            root,
		Mode:            ModeAuto,
		DescriptionFile: DefaultDescriptionFile,
		Logger:          logging.NewLogger("scan"),
	}
}

// Scan is shorthand for NewScanner(root).Scan()
func Scan(root string) ([]models.Project, error) {
	return NewScanner(root).Scan()
}

// Scan returns the projects found under the root, most recently active first.
// A missing root yields an empty result; unreadable units are skipped.
func (s *Scanner) Scan() ([]models.Project, error) {
	log := s.Logger
	if log == nil {
		log = logging.NewLogger("scan")
	}

	dirs, err := os.ReadDir(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("root", s.Root).Debug("projects directory does not exist")
			return []models.Project{}, nil
		}
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	byOrigin := make(map[string]*models.Project)
	var order []string

	for _, d := range dirs {
		dir := filepath.Join(s.Root, d.Name())
		if !isDir(d, dir) {
			continue
		}

		entries := ReaderFor(dir, s.Mode).Read(dir)
		if len(entries) == 0 {
			log.WithField("dir", dir).Debug("no sessions in unit")
			continue
		}

		for _, entry := range entries {
			project, ok := byOrigin[entry.Origin]
			if !ok {
				project = &models.Project{
					Name: ProjectName(entry.Origin),
					Path: entry.Origin,
				}
				// Directory-name fallbacks are not real paths.
				if filepath.IsAbs(entry.Origin) {
					project.Description = ReadDescription(entry.Origin, s.DescriptionFile)
				}
				byOrigin[entry.Origin] = project
				order = append(order, entry.Origin)
			}
			project.Sessions = append(project.Sessions, entry.Session)
		}
	}

	projects := make([]models.Project, 0, len(order))
	for _, origin := range order {
		project := byOrigin[origin]
		slices.SortStableFunc(project.Sessions, func(a, b models.Session) int {
			return b.Modified.Compare(a.Modified)
		})
		project.LastActive = project.Sessions[0].Modified
		projects = append(projects, *project)
	}

	slices.SortStableFunc(projects, func(a, b models.Project) int {
		return b.LastActive.Compare(a.LastActive)
	})

	log.WithFields(logrus.Fields{
		"root":     s.Root,
		"projects": len(projects),
	}).Debug("scan complete")

	return projects, nil
}

// isDir follows symlinks so linked project directories are scanned too
func isDir(d os.DirEntry, path string) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
