package model

import "time"

type Event struct {
	ID          int64     `json:"event_id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"event_date"`
	Time        string    `json:"event_time"` // "19:00"
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
