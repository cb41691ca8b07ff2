package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayeon/seoulite/internal/model"
)

// BoardPageSize is the fixed page length of the Q&A feed.
const BoardPageSize = 20

type BoardService struct {
	db DB
}

func NewBoardService(db DB) *BoardService {
	return &BoardService{db: db}
}

// BoardPage is one page of the feed, newest first.
type BoardPage struct {
	Posts      []model.BoardPost `json:"posts"`
	HasMore    bool              `json:"hasMore"`
	NextOffset int               `json:"nextOffset"`
}

// ListPosts returns a page of posts ordered by created_at desc, id desc.
// The id tiebreak keeps pagination stable for posts created in the same
// instant.
func (s *BoardService) ListPosts(ctx context.Context, offset, limit int) (*BoardPage, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, author_id, title, body, location_tag, status, created_at
		 FROM board_posts
		 ORDER BY created_at DESC, id DESC
		 OFFSET $1 LIMIT $2`, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list board posts: %w", err)
	}
	defer rows.Close()

	posts := []model.BoardPost{}
	for rows.Next() {
		var p model.BoardPost
		var status string
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.LocationTag, &status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan board post: %w", err)
		}
		p.Status = model.NormalizeBoardStatus(status)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list board posts: %w", err)
	}

	return &BoardPage{
		Posts:      posts,
		HasMore:    len(posts) == limit,
		NextOffset: offset + len(posts),
	}, nil
}

// CreatePost inserts a new open question.
func (s *BoardService) CreatePost(ctx context.Context, authorID, title, body string, locationTag *string) (*model.BoardPost, error) {
	var p model.BoardPost
	var status string
	err := s.db.QueryRow(ctx,
		`INSERT INTO board_posts (author_id, title, body, location_tag)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, author_id, title, body, location_tag, status, created_at`,
		authorID, title, body, locationTag,
	).Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.LocationTag, &status, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create board post: %w", err)
	}
	p.Status = model.NormalizeBoardStatus(status)
	return &p, nil
}

// GetPost returns a post with its replies, oldest reply first.
func (s *BoardService) GetPost(ctx context.Context, id string) (*model.BoardPost, []model.BoardReply, error) {
	var p model.BoardPost
	var status string
	err := s.db.QueryRow(ctx,
		`SELECT id, author_id, title, body, location_tag, status, created_at
		 FROM board_posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.LocationTag, &status, &p.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get board post %s: %w", id, err)
	}
	p.Status = model.NormalizeBoardStatus(status)

	rows, err := s.db.Query(ctx,
		`SELECT id, post_id, author_id, body, created_at
		 FROM board_replies WHERE post_id = $1 ORDER BY created_at`, id,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("list replies for %s: %w", id, err)
	}
	defer rows.Close()

	replies := []model.BoardReply{}
	for rows.Next() {
		var rep model.BoardReply
		if err := rows.Scan(&rep.ID, &rep.PostID, &rep.AuthorID, &rep.Body, &rep.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("scan reply: %w", err)
		}
		replies = append(replies, rep)
	}
	return &p, replies, rows.Err()
}

// CreateReply adds an answer to a post.
func (s *BoardService) CreateReply(ctx context.Context, postID, authorID, body string) (*model.BoardReply, error) {
	var rep model.BoardReply
	err := s.db.QueryRow(ctx,
		`INSERT INTO board_replies (post_id, author_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, post_id, author_id, body, created_at`,
		postID, authorID, body,
	).Scan(&rep.ID, &rep.PostID, &rep.AuthorID, &rep.Body, &rep.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	return &rep, nil
}

// MarkAnswered flips a post to answered.
func (s *BoardService) MarkAnswered(ctx context.Context, postID string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE board_posts SET status = 'answered' WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("mark post answered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	return nil
}
