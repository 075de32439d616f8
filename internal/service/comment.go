package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CommentService struct {
	commentRepo ports.CommentRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	logger      logger.Logger
}

func NewCommentService(
	commentRepo ports.CommentRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Add создает комментарий на модерации. Комментировать можно только
// опубликованные события.
func (s *CommentService) Add(ctx context.Context, authorID, eventID int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotPublished
	}

	comment := &domain.Comment{
		EventID:  eventID,
		AuthorID: authorID,
		Text:     text,
		State:    domain.CommentStatePending,
		Created:  time.Now().UTC(),
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// Update правит собственный комментарий; после правки он всегда возвращается
// на модерацию. Опубликованный комментарий можно править не дольше 24 часов.
func (s *CommentService) Update(ctx context.Context, authorID, commentID int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment.AuthorID != authorID {
		return nil, domain.ErrCommentNotFound
	}

	if err = comment.ApplyEdit(text, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, authorID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if comment.AuthorID != authorID {
		return domain.ErrCommentNotFound
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// Moderate — решение администратора. Предусловий на текущее состояние нет:
// администратор может пересмотреть прежнее решение.
func (s *CommentService) Moderate(ctx context.Context, commentID int64, action domain.AdminCommentAction) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	switch action {
	case domain.AdminPublishComment:
		comment.Publish(time.Now().UTC())
	case domain.AdminRejectComment:
		comment.Reject()
	default:
		return nil, fmt.Errorf("%w: unknown comment action %q", domain.ErrValidation, action)
	}

	if err = s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.logger.Info("comment moderated",
		logger.Int64("comment_id", commentID),
		logger.String("state", string(comment.State)),
	)

	return comment, nil
}

func (s *CommentService) ListPublishedByEvent(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	return s.commentRepo.ListPublishedByEvent(ctx, eventID)
}
