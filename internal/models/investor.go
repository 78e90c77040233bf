package models

import "time"

// Investor represents an investor profile. Industries and Stages hold the
// sectors and funding stages the investor is open to.
type Investor struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Firm            string    `json:"firm"`
	Industries      []string  `json:"industries"`
	Stages          []string  `json:"stages"`
	InvestmentRange string    `json:"investmentRange"`
	Location        string    `json:"location"`
	Bio             string    `json:"bio"`
	Portfolio       []string  `json:"portfolio"`
	DealsCompleted  int       `json:"dealsCompleted"`
	Avatar          string    `json:"avatar"`
	Status          string    `json:"status"`
	Favorites       []string  `json:"favorites"`
	CreatedAt       time.Time `json:"createdAt"`
}
