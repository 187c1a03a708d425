// Package timefmt formats playback positions and durations for display.
package timefmt

import "fmt"

// MMSS renders a millisecond offset as "mm:ss". Negative values render as
// "00:00". Minutes are not capped at 59; long recordings read "75:04".
func MMSS(ms int64) string {
	if ms < 0 {
		return "00:00"
	}
	minutes := (ms / 1000) / 60
	seconds := (ms / 1000) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
