package ports

import (
	"context"

	"github.com/mshevelin/afisha/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, ids []int64, from, size int) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepo interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, from, size int) ([]*domain.Category, error)
}
