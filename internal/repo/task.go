package repo

import (
	"context"
	"errors"

	"github.com/BuzzLyutic/task-manager-cli/internal/model"
)

var (
	ErrorNotFound        = errors.New("not found")
	ErrorInvalidArgument = errors.New("invalid argument")
)

// TaskRepo keeps tasks in memory in creation order. It is not safe for
// concurrent use; the interpreter goroutine is its only caller.
type TaskRepo struct {
	tasks  []model.Task
	nextID int64
}

func NewTaskRepo() *TaskRepo { // Конструктор
	return &TaskRepo{
		tasks:  make([]model.Task, 0),
		nextID: 1,
	}
}

func (r *TaskRepo) Create(ctx context.Context, title string, description *string) (model.Task, error) {
	if title == "" {
		return model.Task{}, ErrorInvalidArgument
	}

	t := model.Task{
		ID:          r.nextID,
		Title:       title,
		Description: cloneString(description),
	}
	r.tasks = append(r.tasks, t)
	r.nextID++ // Счетчик только растет, ID не переиспользуются

	return clone(t), nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	return clone(r.tasks[i]), nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, clone(t))
	}
	return tasks, nil
}

func (r *TaskRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}

	t := &r.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = cloneString(patch.Description)
	}
	return clone(*t), nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrorNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

func (r *TaskRepo) SetCompleted(ctx context.Context, id int64, value bool) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrorNotFound
	}
	r.tasks[i].Completed = value
	return nil
}

func (r *TaskRepo) GetStats(ctx context.Context) (model.Stats, error) {
	stats := model.Stats{Total: len(r.tasks)}
	for _, t := range r.tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats, nil
}

// indexOf returns the slice position of the task with the given ID, or -1.
func (r *TaskRepo) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(t model.Task) model.Task {
	t.Description = cloneString(t.Description)
	return t
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
