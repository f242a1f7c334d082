package scheduler

import "errors"

// ErrInvalidQuantum is returned by RoundRobin when the time quantum is not positive.
var ErrInvalidQuantum = errors.New("invalid time quantum")
