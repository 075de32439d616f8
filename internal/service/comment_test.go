package service

import (
	"context"
	"testing"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceMocks struct {
	commentRepo *mocks.MockCommentRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
}

func newCommentService(t *testing.T) (*CommentService, *commentServiceMocks) {
	t.Helper()
	m := &commentServiceMocks{
		commentRepo: mocks.NewMockCommentRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
	}
	svc := NewCommentService(m.commentRepo, m.eventRepo, m.userRepo, newTestLogger(t))
	return svc, m
}

func TestCommentService_Add_Success(t *testing.T) {
	svc, m := newCommentService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Event{ID: 7, State: domain.EventStatePublished}, nil)
	m.commentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.Add(context.Background(), 2, 7, "Отличное событие")

	require.NoError(t, err)
	assert.Equal(t, domain.CommentStatePending, comment.State)
	assert.Nil(t, comment.Published)
}

func TestCommentService_Add_EventNotPublished(t *testing.T) {
	svc, m := newCommentService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Event{ID: 7, State: domain.EventStatePending}, nil)

	_, err := svc.Add(context.Background(), 2, 7, "Отличное событие")

	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
}

func TestCommentService_Add_EmptyText(t *testing.T) {
	svc, _ := newCommentService(t)

	_, err := svc.Add(context.Background(), 2, 7, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommentService_Update_ResetsToPending(t *testing.T) {
	svc, m := newCommentService(t)

	published := time.Now().UTC().Add(-time.Hour)
	comment := &domain.Comment{
		ID: 3, AuthorID: 2, Text: "старый текст",
		State: domain.CommentStatePublished, Published: &published,
	}
	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(comment, nil)
	m.commentRepo.EXPECT().Update(mock.Anything, comment).Return(nil)

	updated, err := svc.Update(context.Background(), 2, 3, "новый текст")

	require.NoError(t, err)
	assert.Equal(t, "новый текст", updated.Text)
	assert.Equal(t, domain.CommentStatePending, updated.State)
	assert.Nil(t, updated.Published)
}

func TestCommentService_Update_WindowExpired(t *testing.T) {
	svc, m := newCommentService(t)

	published := time.Now().UTC().Add(-25 * time.Hour)
	comment := &domain.Comment{
		ID: 3, AuthorID: 2, Text: "старый текст",
		State: domain.CommentStatePublished, Published: &published,
	}
	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(comment, nil)

	_, err := svc.Update(context.Background(), 2, 3, "новый текст")

	assert.ErrorIs(t, err, domain.ErrCommentEditExpired)
}

func TestCommentService_Update_ForeignComment(t *testing.T) {
	svc, m := newCommentService(t)

	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).
		Return(&domain.Comment{ID: 3, AuthorID: 2}, nil)

	_, err := svc.Update(context.Background(), 9, 3, "новый текст")

	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestCommentService_Delete_ForeignComment(t *testing.T) {
	svc, m := newCommentService(t)

	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).
		Return(&domain.Comment{ID: 3, AuthorID: 2}, nil)

	err := svc.Delete(context.Background(), 9, 3)

	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestCommentService_Moderate_Publish(t *testing.T) {
	svc, m := newCommentService(t)

	comment := &domain.Comment{ID: 3, State: domain.CommentStatePending}
	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(comment, nil)
	m.commentRepo.EXPECT().Update(mock.Anything, comment).Return(nil)

	moderated, err := svc.Moderate(context.Background(), 3, domain.AdminPublishComment)

	require.NoError(t, err)
	assert.Equal(t, domain.CommentStatePublished, moderated.State)
	assert.NotNil(t, moderated.Published)
}

func TestCommentService_Moderate_RevisesDecision(t *testing.T) {
	svc, m := newCommentService(t)

	published := time.Now().UTC()
	comment := &domain.Comment{ID: 3, State: domain.CommentStatePublished, Published: &published}
	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(comment, nil)
	m.commentRepo.EXPECT().Update(mock.Anything, comment).Return(nil)

	moderated, err := svc.Moderate(context.Background(), 3, domain.AdminRejectComment)

	require.NoError(t, err)
	assert.Equal(t, domain.CommentStateRejected, moderated.State)
}

func TestCommentService_Moderate_UnknownAction(t *testing.T) {
	svc, m := newCommentService(t)

	m.commentRepo.EXPECT().GetByID(mock.Anything, int64(3)).
		Return(&domain.Comment{ID: 3}, nil)

	_, err := svc.Moderate(context.Background(), 3, "DELETE_COMMENT")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
