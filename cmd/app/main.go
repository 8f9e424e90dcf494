package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-manager-cli/internal/config"
	"github.com/BuzzLyutic/task-manager-cli/internal/handler"
	"github.com/BuzzLyutic/task-manager-cli/internal/repl"
	"github.com/BuzzLyutic/task-manager-cli/internal/repo"
	"github.com/BuzzLyutic/task-manager-cli/internal/service"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tasks",
		Short:        "Interactive in-memory task manager",
		Long:         `tasks starts an interactive session for adding, listing, updating, completing and deleting tasks. Tasks live in memory and are gone when the session ends.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// Загрузка конфигурации
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger = logger.With(zap.String("session", uuid.NewString()))

	// Ctrl+C завершает сессию так же, как exit
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	taskRepo := repo.NewTaskRepo()
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handler.NewTaskHandler(taskService, logger)
	interpreter := repl.NewInterpreter(taskHandler, in, out, logger)

	logger.Info("session started")
	if err := interpreter.Run(ctx); err != nil {
		logger.Error("session failed", zap.Error(err))
		return err
	}
	logger.Info("session finished")
	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
