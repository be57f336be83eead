package models

import "time"

// Session represents one recorded assistant session
type Session struct {
	ID          string
	Summary     string
	FirstPrompt string
	Created     time.Time
	Modified    time.Time
	Source      string // File the session was read from
}

// Project groups the sessions that share one originating path
type Project struct {
	Name        string
	Path        string
	Description string
	Sessions    []Session // Sorted by Modified, newest first
	LastActive  time.Time
}

// ProjectStats holds event counts aggregated from the raw session logs
type ProjectStats struct {
	Path         string
	SessionCount int
	EventCount   int
	FirstEvent   time.Time
	LastEvent    time.Time
}
