package ports

import (
	"context"

	"github.com/mshevelin/afisha/internal/domain"
)

type RequestNotifier interface {
	NotifyRequestConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestRejected(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventPublished(ctx context.Context, user *domain.User, event *domain.Event)
}
