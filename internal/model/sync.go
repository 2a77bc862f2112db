package model

// SyncStats counts the effects of one reconciliation run. Items identical on
// both sides move no counter, so a run over an unchanged pair of calendars
// reports all zeros.
type SyncStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
}
