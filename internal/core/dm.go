package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayeon/seoulite/internal/model"
)

// DMService manages the single private thread each user has with the site
// owner.
type DMService struct {
	db DB
}

func NewDMService(db DB) *DMService {
	return &DMService{db: db}
}

// GetThread returns the user's thread and its messages, or a nil thread
// when none has been opened yet.
func (s *DMService) GetThread(ctx context.Context, ownerID string) (*model.DMThread, []model.DMMessage, error) {
	var t model.DMThread
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, created_at FROM dm_threads WHERE owner_id = $1`, ownerID,
	).Scan(&t.ID, &t.OwnerID, &t.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get dm thread: %w", err)
	}

	messages, err := s.listMessages(ctx, t.ID)
	if err != nil {
		return nil, nil, err
	}
	return &t, messages, nil
}

// OpenThread creates the user's thread with its first message, or appends
// to the existing thread when one is already open.
func (s *DMService) OpenThread(ctx context.Context, ownerID, message string) (*model.DMThread, error) {
	var t model.DMThread
	err := s.db.QueryRow(ctx,
		`INSERT INTO dm_threads (owner_id) VALUES ($1)
		 ON CONFLICT (owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
		 RETURNING id, owner_id, created_at`, ownerID,
	).Scan(&t.ID, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("open dm thread: %w", err)
	}

	if _, err := s.addMessage(ctx, t.ID, ownerID, message); err != nil {
		return nil, err
	}
	return &t, nil
}

// SendMessage appends a message to the user's existing thread.
func (s *DMService) SendMessage(ctx context.Context, ownerID, body string) (*model.DMMessage, error) {
	var threadID string
	err := s.db.QueryRow(ctx,
		`SELECT id FROM dm_threads WHERE owner_id = $1`, ownerID,
	).Scan(&threadID)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("no thread open")
	}
	if err != nil {
		return nil, fmt.Errorf("get dm thread: %w", err)
	}

	return s.addMessage(ctx, threadID, ownerID, body)
}

func (s *DMService) addMessage(ctx context.Context, threadID, senderID, body string) (*model.DMMessage, error) {
	var m model.DMMessage
	err := s.db.QueryRow(ctx,
		`INSERT INTO dm_messages (thread_id, sender_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, thread_id, sender_id, body, created_at`,
		threadID, senderID, body,
	).Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.Body, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add dm message: %w", err)
	}
	return &m, nil
}

func (s *DMService) listMessages(ctx context.Context, threadID string) ([]model.DMMessage, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, thread_id, sender_id, body, created_at
		 FROM dm_messages WHERE thread_id = $1 ORDER BY created_at`, threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("list dm messages: %w", err)
	}
	defer rows.Close()

	messages := []model.DMMessage{}
	for rows.Next() {
		var m model.DMMessage
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dm message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
