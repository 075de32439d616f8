package ports

import (
	"context"

	"github.com/mshevelin/afisha/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetByIDAndInitiator(ctx context.Context, id, initiatorID int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	ListByInitiator(ctx context.Context, initiatorID int64, from, size int) ([]*domain.Event, error)
	SearchAdmin(ctx context.Context, f domain.AdminEventFilter) ([]*domain.Event, error)
	SearchPublic(ctx context.Context, f domain.PublicEventFilter) ([]*domain.Event, error)
	ExistsByCategory(ctx context.Context, categoryID int64) (bool, error)
}
