package model

import "time"

type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ItemRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Notes string `json:"notes" binding:"max=2000"`
}
