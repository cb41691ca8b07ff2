package core

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayeon/seoulite/internal/model"
)

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = row[i].(string)
		case **string:
			if row[i] == nil {
				*v = nil
			} else {
				s := row[i].(string)
				*v = &s
			}
		case *time.Time:
			*v = row[i].(time.Time)
		}
	}
	return nil
}

type fakeDB struct {
	rows     *fakeRows
	queryErr error
	execTag  pgconn.CommandTag
	execErr  error
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return db.rows, db.queryErr
}

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return db.execTag, db.execErr
}

func postRow(id string, created time.Time) []any {
	return []any{id, "author-1", "Where to eat near Mangwon?", "Looking for a quiet place for lunch.", nil, "open", created}
}

func TestListPosts_ShortPageHasNoMore(t *testing.T) {
	now := time.Now()
	svc := NewBoardService(&fakeDB{rows: &fakeRows{rows: [][]any{
		postRow("p2", now),
		postRow("p1", now.Add(-time.Hour)),
	}}})

	page, err := svc.ListPosts(context.Background(), 20, BoardPageSize)
	require.NoError(t, err)

	assert.Len(t, page.Posts, 2)
	assert.False(t, page.HasMore)
	assert.Equal(t, 22, page.NextOffset)
	assert.Equal(t, model.BoardPostOpen, page.Posts[0].Status)
	assert.Nil(t, page.Posts[0].LocationTag)
}

func TestListPosts_FullPageHasMore(t *testing.T) {
	now := time.Now()
	rows := [][]any{}
	for i := 0; i < BoardPageSize; i++ {
		rows = append(rows, postRow("p", now))
	}
	svc := NewBoardService(&fakeDB{rows: &fakeRows{rows: rows}})

	page, err := svc.ListPosts(context.Background(), 0, BoardPageSize)
	require.NoError(t, err)

	assert.True(t, page.HasMore)
	assert.Equal(t, BoardPageSize, page.NextOffset)
}

func TestListPosts_EmptyPage(t *testing.T) {
	svc := NewBoardService(&fakeDB{rows: &fakeRows{}})

	page, err := svc.ListPosts(context.Background(), 0, BoardPageSize)
	require.NoError(t, err)

	assert.Empty(t, page.Posts)
	assert.False(t, page.HasMore)
	assert.Equal(t, 0, page.NextOffset)
}

func TestMarkAnswered_NotFound(t *testing.T) {
	svc := NewBoardService(&fakeDB{execTag: pgconn.NewCommandTag("UPDATE 0")})

	err := svc.MarkAnswered(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAnswered_Updated(t *testing.T) {
	svc := NewBoardService(&fakeDB{execTag: pgconn.NewCommandTag("UPDATE 1")})

	require.NoError(t, svc.MarkAnswered(context.Background(), "p1"))
}
