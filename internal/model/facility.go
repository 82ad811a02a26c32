package model

import "time"

type Facility struct {
	ID          int64     `json:"facility_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"` // максимум одновременных броней на один слот
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
