// Package stats contains tools for calculating stats on answer times.
package stats

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	CalcMsg struct {
		Latest time.Duration
		Avg    time.Duration
		Min    time.Duration
		Max    time.Duration
	}
)

// CalcStats reports the latest answer time along with the stats of all of them.
func CalcStats(latest time.Duration, all []time.Duration) tea.Cmd {
	avg := Avg(all).Round(time.Millisecond)
	return func() tea.Msg {
		return CalcMsg{
			Latest: latest,
			Avg:    avg,
			Max:    Max(all),
			Min:    Min(all),
		}
	}
}

// Min returns the fastest answer time, or 0 when there are none.
func Min(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	fastest := times[0]
	for _, t := range times[1:] {
		if t < fastest {
			fastest = t
		}
	}
	return fastest
}

// Max returns the slowest answer time, or 0 when there are none.
func Max(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	slowest := times[0]
	for _, t := range times[1:] {
		if t > slowest {
			slowest = t
		}
	}
	return slowest
}

func Avg(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, t := range times {
		sum = sum + t
	}
	return sum / time.Duration(len(times))
}
