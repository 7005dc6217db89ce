package model

import "time"

// ChatMessage is one entry in a monument room's in-memory history.
type ChatMessage struct {
	User    string    `json:"user"`
	Role    string    `json:"role"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
