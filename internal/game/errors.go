package game

import "errors"

// ErrDeckExhausted indicates an attempted draw exceeded the remaining deck
// size. It signals a configuration/deck-size mismatch, not game randomness.
var ErrDeckExhausted = errors.New("deck exhausted")
