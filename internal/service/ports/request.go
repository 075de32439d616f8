package ports

import (
	"context"

	"github.com/mshevelin/afisha/internal/domain"
)

type RequestRepo interface {
	// Create проверяет лимит участников и вставляет заявку в одной транзакции.
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ParticipationStatus) error
	ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Request, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Request, error)
	ConfirmedCount(ctx context.Context, eventID int64) (int64, error)
	ConfirmedCounts(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
	// ModerateBatch атомарно распределяет вакансии по заявкам в порядке requestIDs.
	ModerateBatch(ctx context.Context, eventID int64, requestIDs []int64, target domain.ParticipationStatus) (*domain.ModerationResult, error)
	RejectStale(ctx context.Context) ([]*domain.Request, error)
}
