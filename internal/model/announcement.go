package model

import "time"

type Announcement struct {
	ID        int64     `json:"announcement_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
