package models

import "time"

// Edition is the daily batch record newly ingested scoops are attached to.
type Edition struct {
	ID        string
	Date      time.Time
	CreatedAt time.Time
}
