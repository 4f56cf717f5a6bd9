package types

import "time"

type MuseumEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	DateCreated time.Time `json:"date_created"`
}
