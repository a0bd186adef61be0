package session

import (
	"fmt"
	"math"
)

// WPM derives words-per-minute from typed words and elapsed time. The
// denominator never drops below one second's worth of a minute, so the first
// second cannot divide by zero.
func WPM(wordsTyped, elapsedSeconds int) int {
	minutes := float64(elapsedSeconds) / 60.0
	if minutes < 1.0/60.0 {
		minutes = 1.0 / 60.0
	}
	return int(math.Round(float64(wordsTyped) / minutes))
}

// FormatTime renders elapsed seconds as mm:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
