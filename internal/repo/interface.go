package repo

import (
	"context"

	"github.com/BuzzLyutic/task-manager-cli/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, title string, description *string) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	SetCompleted(ctx context.Context, id int64, value bool) error
	GetStats(ctx context.Context) (model.Stats, error)
}
