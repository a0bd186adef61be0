// Package model defines shared data structures.
package model

import "time"

// Options control text normalization before comparison.
type Options struct {
	IgnoreCase        bool
	IgnorePunctuation bool
}

// Stats summarizes an attempt scored against a reference.
type Stats struct {
	Accuracy   int // 0..100
	WordsTyped int
	TotalWords int
}

// WordState classifies a reference word against the attempt.
type WordState int

const (
	// WordPending means the word has not been reached yet.
	WordPending WordState = iota
	// WordMatched means the attempt word at the same position matches.
	WordMatched
	// WordMismatched means the attempt word at the same position differs.
	WordMismatched
)

// WordMark pairs a raw reference word with its classification.
type WordMark struct {
	Word  string
	State WordState
}

// Config defines practice settings.
type Config struct {
	Lang        string
	IgnoreCase  bool
	IgnorePunct bool
	MaskWords   bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionStats captures a completed practice run.
type SessionStats struct {
	StartedAt   time.Time
	EndedAt     time.Time
	Lang        string
	IgnoreCase  bool
	IgnorePunct bool
	TotalWords  int
	WordsTyped  int
	Accuracy    int
	DurationSec int
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID   int64
	EndedAt     time.Time
	TotalWords  int
	WordsTyped  int
	Accuracy    int
	DurationSec int
}
