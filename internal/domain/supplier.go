package domain

import "time"

type Supplier struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Code       string     `json:"code"`
	Categories []Category `json:"categories"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
}
