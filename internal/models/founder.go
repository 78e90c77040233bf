package models

import "time"

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Founder represents a startup founder profile created through the
// application form. Email is the de facto primary key.
type Founder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Industry    string    `json:"industry"`
	Stage       string    `json:"stage"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	FundingGoal string    `json:"fundingGoal"`
	Avatar      string    `json:"avatar"`
	Status      string    `json:"status"`
	Favorites   []string  `json:"favorites"`
	CreatedAt   time.Time `json:"createdAt"`
}
