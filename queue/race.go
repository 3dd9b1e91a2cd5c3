//go:build race

package queue

// raceEnabled is true when the race detector is active. No test in this
// module currently consults it.
const raceEnabled = true
