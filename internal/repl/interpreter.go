package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-manager-cli/internal/handler"
	"github.com/BuzzLyutic/task-manager-cli/pkg/respond"
)

const (
	prompt     = "> "
	maxLineLen = 1024 * 1024
)

// Interpreter is the read-eval-print loop. It is driven by a single goroutine
// and is the only caller of the handler, and through it, of the task store.
type Interpreter struct {
	handler *handler.TaskHandler
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	running bool
}

func NewInterpreter(h *handler.TaskHandler, in io.Reader, out io.Writer, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		handler: h,
		in:      in,
		out:     out,
		logger:  logger,
		running: true,
	}
}

// Running reports whether the loop will read another line.
func (i *Interpreter) Running() bool {
	return i.running
}

// Run reads and executes lines until exit, end of input or ctx cancellation.
// Only a failed read is reported as an error.
func (i *Interpreter) Run(ctx context.Context) error {
	respond.Message(i.out, "Welcome to the task manager!")
	respond.Message(i.out, "Type 'help' for available commands or 'exit' to quit.")

	done := make(chan struct{})
	defer close(done)
	lines, errc := i.readLines(done)

	for i.running {
		fmt.Fprint(i.out, prompt)

		select {
		case <-ctx.Done():
			i.logger.Info("interrupted", zap.Error(ctx.Err()))
			respond.Message(i.out, "\nExiting...")
			i.running = false
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				i.logger.Info("end of input")
				respond.Message(i.out, "\nExiting...")
				i.running = false
				continue
			}
			i.Execute(ctx, line)
		}
	}
	return nil
}

// Execute runs a single input line.
func (i *Interpreter) Execute(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		respond.Message(i.out, "Invalid command format. Type 'help' for available commands.")
		return
	}

	name, args := strings.ToLower(tokens[0]), tokens[1:]
	cmd := ParseCommand(name)
	i.logger.Debug("dispatch", zap.Stringer("command", cmd), zap.Int("args", len(args)))

	switch cmd {
	case CmdAdd:
		i.handler.Add(ctx, i.out, args)
	case CmdList:
		i.handler.List(ctx, i.out, args)
	case CmdUpdate:
		i.handler.Update(ctx, i.out, args)
	case CmdDelete:
		i.handler.Delete(ctx, i.out, args)
	case CmdComplete:
		i.handler.Complete(ctx, i.out, args)
	case CmdIncomplete:
		i.handler.Incomplete(ctx, i.out, args)
	case CmdStats:
		i.handler.Stats(ctx, i.out, args)
	case CmdHelp:
		i.handler.Help(i.out, args)
	case CmdExit:
		if i.handler.Exit(i.out, args) {
			i.running = false
		}
	default:
		respond.Message(i.out, "Unknown command: %s. Type 'help' for available commands.", name)
	}
}

// readLines feeds input lines to the loop. The goroutine only reads; it
// never touches interpreter state. errc receives the scanner error before
// lines is closed.
func (i *Interpreter) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(i.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
