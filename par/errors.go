package par

import "errors"

// ErrInvalidRange is returned when a ParallelFor range has from >= to.
var ErrInvalidRange = errors.New("par: invalid range: from must be < to")

// ErrInvalidChunkSize is returned when an explicit chunk size is not
// positive.
var ErrInvalidChunkSize = errors.New("par: chunk size must be >= 1")
