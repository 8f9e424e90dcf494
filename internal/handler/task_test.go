package handler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-manager-cli/internal/model"
	"github.com/BuzzLyutic/task-manager-cli/internal/repo"
	"github.com/BuzzLyutic/task-manager-cli/internal/service"
)

func setupHandler(t *testing.T) (*TaskHandler, *repo.TaskRepo) {
	t.Helper()

	taskRepo := repo.NewTaskRepo()
	taskService := service.NewTaskService(taskRepo)
	logger := zap.NewNop()
	return NewTaskHandler(taskService, logger), taskRepo
}

type commandFunc func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, args []string)

var (
	add        commandFunc = func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, a []string) { h.Add(ctx, w, a) }
	list       commandFunc = func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, a []string) { h.List(ctx, w, a) }
	del        commandFunc = func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, a []string) { h.Delete(ctx, w, a) }
	complete   commandFunc = func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, a []string) { h.Complete(ctx, w, a) }
	incomplete commandFunc = func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, a []string) { h.Incomplete(ctx, w, a) }
	stats      commandFunc = func(h *TaskHandler, ctx context.Context, w *bytes.Buffer, a []string) { h.Stats(ctx, w, a) }
)

func TestTaskHandler_Add(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      string
		wantTasks []model.Task
	}{
		{
			name:      "title only",
			args:      []string{"Buy milk"},
			want:      "Task added successfully with ID 1\n",
			wantTasks: []model.Task{{ID: 1, Title: "Buy milk"}},
		},
		{
			name:      "with description",
			args:      []string{"Walk dog", "evening"},
			want:      "Task added successfully with ID 1\n",
			wantTasks: []model.Task{{ID: 1, Title: "Walk dog", Description: strPtr("evening")}},
		},
		{
			name:      "missing title",
			args:      nil,
			want:      "Usage: add \"title\" [\"description\"]\n",
			wantTasks: []model.Task{},
		},
		{
			name:      "too many args",
			args:      []string{"a", "b", "c"},
			want:      "Usage: add \"title\" [\"description\"]\n",
			wantTasks: []model.Task{},
		},
		{
			name:      "empty title",
			args:      []string{""},
			want:      "Error: Title cannot be empty\n",
			wantTasks: []model.Task{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, r := setupHandler(t)
			var w bytes.Buffer

			h.Add(context.Background(), &w, tt.args)

			assert.Equal(t, tt.want, w.String())
			tasks, err := r.List(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantTasks, tasks)
		})
	}
}

func TestTaskHandler_IDCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  commandFunc
		args []string
		want string
	}{
		{name: "delete ok", cmd: del, args: []string{"1"}, want: "Task 1 deleted successfully\n"},
		{name: "delete unknown", cmd: del, args: []string{"9"}, want: "Error: Task with ID 9 not found\n"},
		{name: "delete non-numeric", cmd: del, args: []string{"abc"}, want: "Error: Task ID must be a number\n"},
		{name: "delete no args", cmd: del, args: nil, want: "Usage: delete <id>\n"},
		{name: "delete extra args", cmd: del, args: []string{"1", "2"}, want: "Usage: delete <id>\n"},
		{name: "complete ok", cmd: complete, args: []string{"1"}, want: "Task 1 marked as complete\n"},
		{name: "complete unknown", cmd: complete, args: []string{"5"}, want: "Error: Task with ID 5 not found\n"},
		{name: "complete non-numeric", cmd: complete, args: []string{"x"}, want: "Error: Task ID must be a number\n"},
		{name: "complete no args", cmd: complete, args: nil, want: "Usage: complete <id>\n"},
		{name: "incomplete ok", cmd: incomplete, args: []string{"1"}, want: "Task 1 marked as incomplete\n"},
		{name: "incomplete unknown", cmd: incomplete, args: []string{"-1"}, want: "Error: Task with ID -1 not found\n"},
		{name: "incomplete no args", cmd: incomplete, args: nil, want: "Usage: incomplete <id>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, r := setupHandler(t)
			_, err := r.Create(context.Background(), "Buy milk", nil)
			require.NoError(t, err)

			var w bytes.Buffer
			tt.cmd(h, context.Background(), &w, tt.args)
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestTaskHandler_Update(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     string
		wantTask model.Task
	}{
		{
			name:     "title and description",
			args:     []string{"1", "New title", "New desc"},
			want:     "Task 1 updated successfully\n",
			wantTask: model.Task{ID: 1, Title: "New title", Description: strPtr("New desc")},
		},
		{
			name:     "title only keeps description",
			args:     []string{"1", "New title"},
			want:     "Task 1 updated successfully\n",
			wantTask: model.Task{ID: 1, Title: "New title", Description: strPtr("old desc")},
		},
		{
			name:     "description only keeps title",
			args:     []string{"1", "", "New desc"},
			want:     "Task 1 updated successfully\n",
			wantTask: model.Task{ID: 1, Title: "Old title", Description: strPtr("New desc")},
		},
		{
			name:     "no fields",
			args:     []string{"1", "", ""},
			want:     "Error: At least one field (title or description) must be provided for update\n",
			wantTask: model.Task{ID: 1, Title: "Old title", Description: strPtr("old desc")},
		},
		{
			name:     "id only",
			args:     []string{"1"},
			want:     "Usage: update <id> [\"new_title\"] [\"new_description\"]\n",
			wantTask: model.Task{ID: 1, Title: "Old title", Description: strPtr("old desc")},
		},
		{
			name:     "non-numeric id",
			args:     []string{"one", "x"},
			want:     "Error: Task ID must be a number\n",
			wantTask: model.Task{ID: 1, Title: "Old title", Description: strPtr("old desc")},
		},
		{
			name:     "unknown id checked before fields",
			args:     []string{"2", ""},
			want:     "Error: Task with ID 2 not found\n",
			wantTask: model.Task{ID: 1, Title: "Old title", Description: strPtr("old desc")},
		},
		{
			name:     "blank title",
			args:     []string{"1", "   "},
			want:     "Error: Title cannot be empty\n",
			wantTask: model.Task{ID: 1, Title: "Old title", Description: strPtr("old desc")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, r := setupHandler(t)
			ctx := context.Background()
			_, err := r.Create(ctx, "Old title", strPtr("old desc"))
			require.NoError(t, err)

			var w bytes.Buffer
			h.Update(ctx, &w, tt.args)
			assert.Equal(t, tt.want, w.String())

			got, err := r.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTask, got)
		})
	}
}

func TestTaskHandler_List(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	var w bytes.Buffer
	list(h, ctx, &w, nil)
	assert.Equal(t, "No tasks found.\n", w.String())

	w.Reset()
	list(h, ctx, &w, []string{"all"})
	assert.Equal(t, "Usage: list\n", w.String())

	add(h, ctx, &bytes.Buffer{}, []string{"Buy milk"})
	add(h, ctx, &bytes.Buffer{}, []string{"Walk dog", "evening"})
	complete(h, ctx, &bytes.Buffer{}, []string{"1"})

	w.Reset()
	list(h, ctx, &w, nil)
	want := strings.Join([]string{
		"ID   | Title                | Description                    | Status",
		strings.Repeat("-", 65),
		"1    | Buy milk             |                                | [x]",
		"2    | Walk dog             | evening                        | [ ]",
	}, "\n") + "\n"
	assert.Equal(t, want, w.String())
}

func TestTaskHandler_Stats(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	add(h, ctx, &bytes.Buffer{}, []string{"a"})
	add(h, ctx, &bytes.Buffer{}, []string{"b"})
	complete(h, ctx, &bytes.Buffer{}, []string{"2"})

	var w bytes.Buffer
	stats(h, ctx, &w, nil)
	assert.Equal(t, "Total: 2, Completed: 1, Pending: 1\n", w.String())

	w.Reset()
	stats(h, ctx, &w, []string{"x"})
	assert.Equal(t, "Usage: stats\n", w.String())
}

func TestTaskHandler_HelpAndExit(t *testing.T) {
	h, _ := setupHandler(t)

	var w bytes.Buffer
	h.Help(&w, nil)
	assert.Contains(t, w.String(), "Available commands:")
	assert.Contains(t, w.String(), "incomplete <id>")

	w.Reset()
	h.Help(&w, []string{"add"})
	assert.Equal(t, "Usage: help\n", w.String())

	w.Reset()
	assert.False(t, h.Exit(&w, []string{"now"}))
	assert.Equal(t, "Usage: exit or quit\n", w.String())

	w.Reset()
	assert.True(t, h.Exit(&w, nil))
	assert.Equal(t, "Goodbye!\n", w.String())
}

// brokenRepo fails every listing so the internal error path can be exercised.
type brokenRepo struct {
	*repo.TaskRepo
}

func (brokenRepo) List(ctx context.Context) ([]model.Task, error) {
	return nil, errors.New("storage unavailable")
}

func TestTaskHandler_InternalError(t *testing.T) {
	h := NewTaskHandler(service.NewTaskService(brokenRepo{repo.NewTaskRepo()}), zap.NewNop())

	var w bytes.Buffer
	h.List(context.Background(), &w, nil)
	assert.Equal(t, "Error: internal error\n", w.String())
}

func strPtr(s string) *string { return &s }
