package ports

import (
	"context"

	"github.com/mshevelin/afisha/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	Update(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id int64) error
	ListPublishedByEvent(ctx context.Context, eventID int64) ([]*domain.Comment, error)
}
