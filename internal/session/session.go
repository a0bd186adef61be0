// Package session tracks the practice lifecycle: the editing/practicing
// state machine and the elapsed-seconds counter.
package session

import "github.com/verte-zerg/recite/internal/model"

// State identifies the session phase.
type State int

const (
	// StateEditing keeps the reference visible and editable, timer stopped.
	StateEditing State = iota
	// StatePracticing hides the reference and runs the timer.
	StatePracticing
)

// Session owns the reference and attempt texts, the comparison options, and
// the practice timer. All mutation happens through its methods so the
// reference stays editable only while editing.
type Session struct {
	state      State
	reference  string
	attempt    string
	options    model.Options
	elapsedSec int
	generation int
}

// New returns a session in the editing state.
func New(reference string, opts model.Options) *Session {
	return &Session{reference: reference, options: opts}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Reference returns the reference text.
func (s *Session) Reference() string {
	return s.reference
}

// Attempt returns the attempt text.
func (s *Session) Attempt() string {
	return s.attempt
}

// Options returns the comparison options.
func (s *Session) Options() model.Options {
	return s.options
}

// SetOptions replaces the comparison options.
func (s *Session) SetOptions(opts model.Options) {
	s.options = opts
}

// ElapsedSeconds returns the elapsed practice time in whole seconds.
func (s *Session) ElapsedSeconds() int {
	return s.elapsedSec
}

// Generation returns the current tick generation. Every transition bumps it,
// so a tick scheduled before the transition can be recognized and dropped.
func (s *Session) Generation() int {
	return s.generation
}

// SetReference updates the reference text. Rejected unless editing.
func (s *Session) SetReference(text string) bool {
	if s.state != StateEditing {
		return false
	}
	s.reference = text
	return true
}

// SetAttempt updates the attempt text. Allowed in any state.
func (s *Session) SetAttempt(text string) {
	s.attempt = text
}

// Start hides the reference and begins timing: the attempt is cleared and
// elapsed time restarts from zero. No-op unless editing.
func (s *Session) Start() bool {
	if s.state != StateEditing {
		return false
	}
	s.state = StatePracticing
	s.attempt = ""
	s.elapsedSec = 0
	s.generation++
	return true
}

// Reveal shows the reference again and freezes the timer at its last value.
// Texts are kept. No-op unless practicing.
func (s *Session) Reveal() bool {
	if s.state != StatePracticing {
		return false
	}
	s.state = StateEditing
	s.generation++
	return true
}

// ResetAll clears both texts and the elapsed time and returns to editing,
// regardless of the current state.
func (s *Session) ResetAll() {
	s.state = StateEditing
	s.reference = ""
	s.attempt = ""
	s.elapsedSec = 0
	s.generation++
}

// Tick advances the timer by one second. A tick carrying a stale generation,
// or arriving outside practicing, is dropped.
func (s *Session) Tick(generation int) bool {
	if s.state != StatePracticing || generation != s.generation {
		return false
	}
	s.elapsedSec++
	return true
}
