package service

import (
	"context"
	"fmt"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports"
)

type CategoryService struct {
	repo      ports.CategoryRepo
	eventRepo ports.EventRepo
}

func NewCategoryService(repo ports.CategoryRepo, eventRepo ports.EventRepo) *CategoryService {
	return &CategoryService{repo: repo, eventRepo: eventRepo}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	category := &domain.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	category.Name = name
	if err = s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	return category, nil
}

// Delete запрещен, пока на категорию ссылается хотя бы одно событие.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	used, err := s.eventRepo.ExistsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("check category usage: %w", err)
	}
	if used {
		return domain.ErrCategoryNotEmpty
	}

	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, from, size int) ([]*domain.Category, error) {
	return s.repo.List(ctx, from, size)
}
