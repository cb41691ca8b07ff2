package model

import "time"

// BoardPostStatus is the answered-state of a Q&A post.
type BoardPostStatus string

const (
	BoardPostOpen     BoardPostStatus = "open"
	BoardPostAnswered BoardPostStatus = "answered"
)

// NormalizeBoardStatus maps unknown or empty stored values to "open".
func NormalizeBoardStatus(s string) BoardPostStatus {
	if s == string(BoardPostAnswered) {
		return BoardPostAnswered
	}
	return BoardPostOpen
}

type BoardPost struct {
	ID          string          `json:"id"`
	AuthorID    string          `json:"author_id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	LocationTag *string         `json:"location_tag"`
	Status      BoardPostStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type BoardReply struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
