package types

import "time"

type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	PublishDate time.Time `json:"publish_date"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image"`
	DateCreated time.Time `json:"date_created"`
}
