package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-manager-cli/internal/model"
	"github.com/BuzzLyutic/task-manager-cli/internal/repo"
	"github.com/BuzzLyutic/task-manager-cli/internal/service"
	"github.com/BuzzLyutic/task-manager-cli/pkg/respond"
)

const (
	usageAdd        = `add "title" ["description"]`
	usageList       = "list"
	usageUpdate     = `update <id> ["new_title"] ["new_description"]`
	usageDelete     = "delete <id>"
	usageComplete   = "complete <id>"
	usageIncomplete = "incomplete <id>"
	usageStats      = "stats"
	usageHelp       = "help"
	usageExit       = "exit or quit"
)

const helpText = `Available commands:
  add "title" ["description"]    - Add a new task
  list                           - List all tasks
  update <id> ["title"] ["desc"] - Update a task
  delete <id>                    - Delete a task
  complete <id>                  - Mark task as complete
  incomplete <id>                - Mark task as incomplete
  stats                          - Show task counts
  help                           - Show this help message
  exit/quit                      - Exit the application
`

// errBadID is reported when a task ID argument is not an integer.
var errBadID = errors.New("task ID must be a number")

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) Add(ctx context.Context, w io.Writer, args []string) {
	if len(args) < 1 || len(args) > 2 {
		respond.Usage(w, usageAdd)
		return
	}

	var description *string
	if len(args) == 2 {
		description = &args[1]
	}

	task, err := h.service.Create(ctx, args[0], description)
	if err != nil {
		h.handleErrors(w, 0, err)
		return
	}

	h.logger.Debug("task created", zap.Int64("task_id", task.ID))
	respond.Message(w, "Task added successfully with ID %d", task.ID)
}

func (h *TaskHandler) List(ctx context.Context, w io.Writer, args []string) {
	if len(args) != 0 {
		respond.Usage(w, usageList)
		return
	}

	tasks, err := h.service.List(ctx)
	if err != nil {
		h.handleErrors(w, 0, err)
		return
	}

	if len(tasks) == 0 {
		respond.Message(w, "No tasks found.")
		return
	}
	respond.Table(w, tasks)
}

func (h *TaskHandler) Update(ctx context.Context, w io.Writer, args []string) {
	if len(args) < 2 || len(args) > 3 {
		respond.Usage(w, usageUpdate)
		return
	}

	id, err := parseID(args[0])
	if err != nil {
		h.handleErrors(w, 0, err)
		return
	}

	// Сначала проверяем, что задача существует
	if _, err := h.service.Get(ctx, id); err != nil {
		h.handleErrors(w, id, err)
		return
	}

	var patch model.TaskPatch
	if args[1] != "" {
		patch.Title = &args[1]
	}
	if len(args) > 2 && args[2] != "" {
		patch.Description = &args[2]
	}

	if _, err := h.service.Update(ctx, id, patch); err != nil {
		h.handleErrors(w, id, err)
		return
	}

	h.logger.Debug("task updated", zap.Int64("task_id", id))
	respond.Message(w, "Task %d updated successfully", id)
}

func (h *TaskHandler) Delete(ctx context.Context, w io.Writer, args []string) {
	if len(args) != 1 {
		respond.Usage(w, usageDelete)
		return
	}

	id, err := parseID(args[0])
	if err != nil {
		h.handleErrors(w, 0, err)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.handleErrors(w, id, err)
		return
	}

	h.logger.Debug("task deleted", zap.Int64("task_id", id))
	respond.Message(w, "Task %d deleted successfully", id)
}

func (h *TaskHandler) Complete(ctx context.Context, w io.Writer, args []string) {
	h.setCompleted(ctx, w, args, true)
}

func (h *TaskHandler) Incomplete(ctx context.Context, w io.Writer, args []string) {
	h.setCompleted(ctx, w, args, false)
}

func (h *TaskHandler) setCompleted(ctx context.Context, w io.Writer, args []string, value bool) {
	usage, state := usageIncomplete, "incomplete"
	if value {
		usage, state = usageComplete, "complete"
	}

	if len(args) != 1 {
		respond.Usage(w, usage)
		return
	}

	id, err := parseID(args[0])
	if err != nil {
		h.handleErrors(w, 0, err)
		return
	}

	if err := h.service.SetCompleted(ctx, id, value); err != nil {
		h.handleErrors(w, id, err)
		return
	}

	h.logger.Debug("task status changed", zap.Int64("task_id", id), zap.Bool("completed", value))
	respond.Message(w, "Task %d marked as %s", id, state)
}

func (h *TaskHandler) Stats(ctx context.Context, w io.Writer, args []string) {
	if len(args) != 0 {
		respond.Usage(w, usageStats)
		return
	}

	stats, err := h.service.GetStats(ctx)
	if err != nil {
		h.handleErrors(w, 0, err)
		return
	}
	respond.Message(w, "Total: %d, Completed: %d, Pending: %d", stats.Total, stats.Completed, stats.Pending)
}

func (h *TaskHandler) Help(w io.Writer, args []string) {
	if len(args) != 0 {
		respond.Usage(w, usageHelp)
		return
	}
	fmt.Fprint(w, helpText)
}

// Exit reports whether the session should end.
func (h *TaskHandler) Exit(w io.Writer, args []string) bool {
	if len(args) != 0 {
		respond.Usage(w, usageExit)
		return false
	}
	respond.Message(w, "Goodbye!")
	return true
}

func (h *TaskHandler) handleErrors(w io.Writer, id int64, err error) {
	switch {
	case errors.Is(err, errBadID):
		respond.Error(w, "Task ID must be a number")
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, fmt.Sprintf("Task with ID %d not found", id))
	case errors.Is(err, service.ErrNoFields):
		respond.Error(w, "At least one field (title or description) must be provided for update")
	case errors.Is(err, service.ErrEmptyTitle), errors.Is(err, repo.ErrorInvalidArgument):
		respond.Error(w, "Title cannot be empty")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, "validation error")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, "internal error")
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadID, s)
	}
	return id, nil
}
