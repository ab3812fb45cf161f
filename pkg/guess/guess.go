// Package guess implements the "guess the number" game.
//
// The game state is an immutable Session value: every Guess returns the
// session for the next turn instead of mutating shared state.
package guess

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	MinNumber = 0
	MaxNumber = 1000
	// DefaultScore is the score budget a game starts with.
	DefaultScore = 10
)

var (
	ErrOutOfRange = fmt.Errorf("the value must be an integer between %d and %d", MinNumber, MaxNumber)
	ErrGameOver   = errors.New("the game is over")
)

// Result is an outcome of a single guess.
type Result int

const (
	// Higher means the secret is higher than the guess.
	Higher Result = iota
	// Lower means the secret is lower than the guess.
	Lower
	// Found means the guess was correct.
	Found
)

func (r Result) String() string {
	switch r {
	case Higher:
		return "The number you should find is higher than this."
	case Lower:
		return "The number you should find is lower than this."
	case Found:
		return "Well done, you found the number!"
	}

	return "unknown result"
}

// Session is a state of a single game.
type Session struct {
	secret int
	score  int
	found  bool
}

// NewSession starts a game with a random secret.
func NewSession() Session {
	return NewSessionWith(MinNumber+rand.Intn(MaxNumber-MinNumber+1), DefaultScore)
}

// NewSessionWith starts a game with the secret and score given.
func NewSessionWith(secret, score int) Session {
	return Session{secret: secret, score: score}
}

func (s Session) Score() int {
	return s.score
}

// Won reports whether the secret was found.
func (s Session) Won() bool {
	return s.found
}

// Lost reports whether the score budget is exhausted.
func (s Session) Lost() bool {
	return !s.found && s.score <= 0
}

// Over reports whether no more guesses are accepted.
func (s Session) Over() bool {
	return s.Won() || s.Lost()
}

// Guess plays a single turn. A wrong guess costs one point; guesses out of
// range are rejected without cost.
func (s Session) Guess(n int) (Result, Session, error) {
	if s.Over() {
		return 0, s, ErrGameOver
	}

	if n < MinNumber || n > MaxNumber {
		return 0, s, ErrOutOfRange
	}

	switch {
	case n < s.secret:
		s.score--
		return Higher, s, nil
	case n > s.secret:
		s.score--
		return Lower, s, nil
	}

	s.found = true

	return Found, s, nil
}
