package model

import "time"

type Tip struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      int       `json:"amount"`
	Currency    string    `json:"currency"`
	ContextType string    `json:"context_type"`
	ContextID   string    `json:"context_id"`
	CheckoutID  string    `json:"checkout_id"`
	CreatedAt   time.Time `json:"created_at"`
}
