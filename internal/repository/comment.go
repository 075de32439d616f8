package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (event_id, author_id, text, state, created)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		c.EventID, c.AuthorID, c.Text, c.State, c.Created,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	if err = row.Scan(&c.ID); err != nil {
		return fmt.Errorf("scan comment id: %w", err)
	}

	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `SELECT id, event_id, author_id, text, state, created, published
			  FROM comments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	var c domain.Comment
	if err = row.Scan(&c.ID, &c.EventID, &c.AuthorID, &c.Text, &c.State, &c.Created, &c.Published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}

	return &c, nil
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	query := `UPDATE comments
			  SET text = $2, state = $3, published = $4
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.Text, c.State, c.Published)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("comment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCommentNotFound
	}

	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("comment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCommentNotFound
	}

	return nil
}

func (r *CommentRepository) ListPublishedByEvent(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	query := `SELECT id, event_id, author_id, text, state, created, published
			  FROM comments
			  WHERE event_id = $1 AND state = $2
			  ORDER BY created`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.CommentStatePublished)
	if err != nil {
		return nil, fmt.Errorf("list comments by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.EventID, &c.AuthorID, &c.Text, &c.State, &c.Created, &c.Published); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
