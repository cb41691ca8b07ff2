package model

import "time"

type Report struct {
	ID          string    `json:"id"`
	ReporterID  string    `json:"reporter_id"`
	ContextType string    `json:"context_type"`
	ContextID   string    `json:"context_id"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}
