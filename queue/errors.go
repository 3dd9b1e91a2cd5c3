package queue

import "errors"

// ErrFull is returned by Push when the ring has no free slot. It is a
// control-flow signal, not a failure: callers retry with backoff rather than
// treating it as an operational error.
var ErrFull = errors.New("queue: full")

// ErrEmpty is returned by Pop when the ring currently has nothing ready.
var ErrEmpty = errors.New("queue: empty")

// IsWouldBlock reports whether err is ErrFull or ErrEmpty, i.e. whether the
// operation simply could not proceed immediately rather than having failed.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrFull) || errors.Is(err, ErrEmpty)
}
