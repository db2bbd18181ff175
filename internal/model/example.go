package model

import "time"

// Example is a user-owned reference text consumed read-only by the AI
// composition step to enrich prompts.
type Example struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExampleRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}
