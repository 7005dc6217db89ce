package model

import "time"

type Favorite struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	MonumentID int       `json:"monumentId"`
	Created    time.Time `json:"created"`
}
