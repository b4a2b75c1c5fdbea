package models

import "time"

// Record represents one tracked activity span
type Record struct {
	ID     string `json:"id"`
	Name   string `json:"taskname"`
	Sector string `json:"sector"`

	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	Duration int64     `json:"duration"` // milliseconds, 0 while active
	Done     bool      `json:"done"`     // false means the record is currently running
}

// Active reports whether the record is still being timed
func (r Record) Active() bool {
	return !r.Done
}

// Elapsed returns the live duration for an active record and the stored one otherwise
func (r Record) Elapsed(now time.Time) time.Duration {
	if r.Active() {
		return now.Sub(r.Begin)
	}
	return time.Duration(r.Duration) * time.Millisecond
}

// DurationMillis computes end - begin in milliseconds
func DurationMillis(begin, end time.Time) int64 {
	return end.Sub(begin).Milliseconds()
}
