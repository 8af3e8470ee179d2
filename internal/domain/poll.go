package domain

import "time"

// PollStats holds statistics about one group poll cycle.
type PollStats struct {
	GroupID   string
	Channels  int
	Checked   int
	Cooldown  int
	Fallbacks int
	Updates   int
	Published int
	Errors    int
	Duration  time.Duration
}
