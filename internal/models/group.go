package models

import "time"

// Group is the tenant boundary: every user and movement belongs to exactly one.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
