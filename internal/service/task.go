package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/task-manager-cli/internal/model"
	"github.com/BuzzLyutic/task-manager-cli/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrNoFields   = fmt.Errorf("%w: at least one field must be provided", ErrValidation)
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, title string, description *string) (model.Task, error) {
	if err := s.validateTitle(title); err != nil { // Валидация до обращения к репозиторию
		return model.Task{}, err
	}
	if description != nil && *description == "" {
		description = nil
	}
	return s.repo.Create(ctx, title, description)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.IsEmpty() {
		return model.Task{}, ErrNoFields
	}
	if patch.Title != nil {
		if err := s.validateTitle(*patch.Title); err != nil {
			return model.Task{}, err
		}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) SetCompleted(ctx context.Context, id int64, value bool) error {
	return s.repo.SetCompleted(ctx, id, value)
}

func (s *TaskService) GetStats(ctx context.Context) (model.Stats, error) {
	return s.repo.GetStats(ctx)
}

func (s *TaskService) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
