package respond

import (
	"fmt"
	"io"
	"strings"

	"github.com/BuzzLyutic/task-manager-cli/internal/model"
)

const (
	titleWidth       = 20
	descriptionWidth = 30
	ellipsis         = "..."
)

func Message(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func Error(w io.Writer, message string) {
	Message(w, "Error: %s", message)
}

func Usage(w io.Writer, usage string) {
	Message(w, "Usage: %s", usage)
}

// Truncate shortens s to width runes, replacing the tail with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-len(ellipsis)]) + ellipsis
}

// Table renders tasks as a fixed-width table in the given order.
func Table(w io.Writer, tasks []model.Task) {
	fmt.Fprintf(w, "%-4s | %-*s | %-*s | %s\n", "ID", titleWidth, "Title", descriptionWidth, "Description", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 65))

	for _, t := range tasks {
		status := "[ ]"
		if t.Completed {
			status = "[x]"
		}
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		fmt.Fprintf(w, "%-4d | %-*s | %-*s | %s\n",
			t.ID,
			titleWidth, Truncate(t.Title, titleWidth),
			descriptionWidth, Truncate(desc, descriptionWidth),
			status,
		)
	}
}
