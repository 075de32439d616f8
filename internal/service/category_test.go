package service

import (
	"context"
	"testing"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Delete_InUse(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewCategoryService(repo, eventRepo)

	repo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Category{ID: 2}, nil)
	eventRepo.EXPECT().ExistsByCategory(mock.Anything, int64(2)).Return(true, nil)

	err := svc.Delete(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrCategoryNotEmpty)
}

func TestCategoryService_Delete_Unused(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewCategoryService(repo, eventRepo)

	repo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Category{ID: 2}, nil)
	eventRepo.EXPECT().ExistsByCategory(mock.Anything, int64(2)).Return(false, nil)
	repo.EXPECT().Delete(mock.Anything, int64(2)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 2))
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	svc := NewCategoryService(mocks.NewMockCategoryRepo(t), mocks.NewMockEventRepo(t))

	_, err := svc.Create(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_InvalidEmail(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Аня", Email: "not-an-email"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Аня", Email: "anya@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "anya@example.com", user.Email)
}
