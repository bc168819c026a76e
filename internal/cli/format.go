package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jyang234/todo/internal/tasks"
)

const (
	detailsWidth = 30
	detailsCut   = 27
)

// writeTaskTable prints tasks as a fixed-width table
func writeTaskTable(w io.Writer, list []tasks.Task) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	fmt.Fprintf(w, "%-4s %-20s %-30s %-10s\n", "ID", "Name", "Details", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, t := range list {
		fmt.Fprintf(w, "%-4d %-20s %-30s %-10s\n", t.ID, t.Name, truncateDetails(t.Details), statusLabel(t.Status))
	}
}

func truncateDetails(s string) string {
	if utf8.RuneCountInString(s) <= detailsWidth {
		return s
	}
	return string([]rune(s)[:detailsCut]) + "..."
}

func statusLabel(s tasks.Status) string {
	if s == tasks.StatusDone {
		return "✓ Done"
	}
	return "○ Pending"
}
