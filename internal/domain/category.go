package domain

import "time"

// MaxCategoryNameLen is the longest category name the API accepts.
const MaxCategoryNameLen = 120

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
