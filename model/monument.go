package model

import "time"

type Monument struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	BuildYear   *int      `json:"buildYear,omitempty"`
	Picture     *string   `json:"picture,omitempty"`
	Description *string   `json:"description,omitempty"`
	Created     time.Time `json:"created"`
}
