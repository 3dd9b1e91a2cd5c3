//go:build !race

package queue

// raceEnabled is false when the race detector is not active.
const raceEnabled = false
