// Package progress implements a terminal progress bar and duration
// estimation helpers for long-running operations, used by the benchmark
// command to report scrypt throughput as it samples.
package progress

import (
	"fmt"
	"time"
)

// Bar renders a simple progress bar for a long-running operation with a
// known total.
type Bar struct {
	total     uint64
	current   uint64
	startTime time.Time
	lastPrint time.Time
	width     int
}

// New creates a new progress bar for the given total.
func New(total uint64) *Bar {
	return &Bar{
		total:     total,
		startTime: time.Now(),
		lastPrint: time.Now(),
		width:     50,
	}
}

// Update sets the current progress and redraws, throttled to once every
// 100ms so it doesn't flood the terminal.
func (b *Bar) Update(current uint64) {
	b.current = current

	now := time.Now()
	if now.Sub(b.lastPrint) < 100*time.Millisecond && current < b.total {
		return
	}
	b.lastPrint = now
	b.print()
}

// Finish draws the bar at 100% and starts a new line.
func (b *Bar) Finish() {
	b.current = b.total
	b.print()
	fmt.Println()
}

func (b *Bar) print() {
	percentage := float64(b.current) / float64(b.total) * 100
	filled := int(float64(b.width) * float64(b.current) / float64(b.total))

	elapsed := time.Since(b.startTime)
	var eta time.Duration
	if b.current > 0 {
		eta = time.Duration(float64(elapsed)*(float64(b.total)/float64(b.current)) - float64(elapsed))
	}

	bar := "["
	for i := 0; i < b.width; i++ {
		switch {
		case i < filled:
			bar += "="
		case i == filled:
			bar += ">"
		default:
			bar += " "
		}
	}
	bar += "]"

	fmt.Printf("\r%s %.1f%% (%d/%d) Elapsed: %v ETA: %v",
		bar, percentage, b.current, b.total,
		elapsed.Round(time.Second), eta.Round(time.Second))
}

// EstimateTime estimates how long a given number of operations will take
// at the given throughput.
func EstimateTime(operations uint64, opsPerSecond float64) time.Duration {
	if opsPerSecond <= 0 {
		return 0
	}
	seconds := float64(operations) / opsPerSecond
	return time.Duration(seconds * float64(time.Second))
}

// FormatDuration renders a duration in whichever unit (seconds, minutes,
// hours, days) keeps the number readable.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1fh", d.Hours())
	default:
		return fmt.Sprintf("%.1fd", d.Hours()/24)
	}
}
