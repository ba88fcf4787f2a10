package models

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
