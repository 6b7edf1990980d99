// Package quiz holds the state of a sight-reading quiz and its transitions.
package quiz

import (
	"github.com/rapidmidiex/notequiz/pitch"
)

type (
	// Rand is the source of random keys. *math/rand.Rand satisfies it.
	Rand interface {
		Intn(n int) int
	}

	Outcome int

	// State is the quiz: the note to find and whether every octave of it is shown.
	State struct {
		current   pitch.Key
		revealAll bool
		keys      pitch.Range
		rng       Rand
		// set by WithCurrent
		placed bool
	}

	Option func(*State)
)

const (
	NoAnswer Outcome = iota
	Correct
	Wrong
)

// MaxDraws bounds the rejection sampling in Reshuffle. With at least two
// octaves in range a single draw repeats the pitch class with probability
// at most 1/8, so all of them failing has probability under 2^-96.
const MaxDraws = 32

// WithRange sets the working range. It should satisfy pitch.Range.Validate,
// otherwise a correct answer may move the note out of it.
func WithRange(r pitch.Range) Option {
	return func(s *State) {
		s.keys = r
	}
}

// WithCurrent starts the quiz on k instead of a random note.
func WithCurrent(k pitch.Key) Option {
	return func(s *State) {
		s.current = k
		s.placed = true
	}
}

// New creates a quiz on a random note in range unless WithCurrent is given.
func New(rng Rand, opts ...Option) *State {
	s := &State{
		keys: pitch.DefaultRange,
		rng:  rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.placed {
		s.current = s.draw()
	}
	return s
}

func (s *State) Current() pitch.Key { return s.current }
func (s *State) RevealAll() bool    { return s.revealAll }
func (s *State) Range() pitch.Range { return s.keys }

// Reshuffle picks a new note of a different pitch class, keeping the clef
// of the previous note.
func (s *State) Reshuffle() {
	prev := s.current
	next := prev
	for i := 0; i < MaxDraws && next.SamePitchClass(prev); i++ {
		next = s.draw()
	}
	if next.SamePitchClass(prev) {
		// A neighbouring key is always a different pitch class.
		if s.keys.Contains(next + 1) {
			next++
		} else {
			next--
		}
	}
	s.current = s.place(prev, next)
}

// ToggleReveal switches between showing the current note and showing every
// octave of it.
func (s *State) ToggleReveal() {
	s.revealAll = !s.revealAll
}

// Answer evaluates a guess. Guessing the right pitch class, in any octave,
// moves the note to the other clef. A wrong guess becomes the new note, on
// the same clef as before and inside the range.
func (s *State) Answer(guess pitch.Key) Outcome {
	if guess.SamePitchClass(s.current) {
		s.current = s.current.FlipClef()
		return Correct
	}
	s.current = s.place(s.current, guess)
	return Wrong
}

// Visible returns the notes to draw, lowest first. In reveal mode that is
// every key in range sharing the current pitch class and clef. Middle C
// shows on both clefs.
func (s *State) Visible() []pitch.Key {
	if !s.revealAll {
		return []pitch.Key{s.current}
	}

	clef := s.current.Clef()
	notes := make([]pitch.Key, 0)
	k := s.keys.Low + pitch.Key((s.current-s.keys.Low).PitchClass())
	for ; k <= s.keys.High; k += pitch.PitchClassCount {
		if k.Clef() == clef || k == pitch.MiddleReference {
			notes = append(notes, k)
		}
	}
	return notes
}

func (s *State) draw() pitch.Key {
	return s.keys.Low + pitch.Key(s.rng.Intn(s.keys.Len()))
}

// place moves next back to prev's clef if it landed on the other one, then
// by whole octaves into range. A range that passes Validate keeps both moves
// on the same clef.
func (s *State) place(prev, next pitch.Key) pitch.Key {
	if next.Clef() != prev.Clef() {
		next = next.FlipClef()
	}
	for next > s.keys.High && next-pitch.PitchClassCount >= s.keys.Low {
		next -= pitch.PitchClassCount
	}
	for next < s.keys.Low && next+pitch.PitchClassCount <= s.keys.High {
		next += pitch.PitchClassCount
	}
	return next
}

func (o Outcome) String() string {
	switch o {
	case NoAnswer:
		return "none"
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	}
	return "unknown"
}
