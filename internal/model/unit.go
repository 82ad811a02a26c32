package model

type Unit struct {
	ID     int64  `json:"unit_id"`
	Number string `json:"unit_no"`
}
