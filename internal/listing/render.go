package listing

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/termfolio/internal/model"
)

const minDescWidth = 12

// RenderProjects writes a project table sized to width.
func RenderProjects(w io.Writer, records []model.ProjectRecord, width int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No projects found.")
		return err
	}
	headers := []string{"Title", "Year", "Category", "Status", "Stack"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Title,
			r.Year,
			r.Category,
			string(r.Status),
			strings.Join(r.Stack, ", "),
		})
	}
	lines := FormatTable(headers, fitLastColumn(headers, rows, width), nil)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// RenderMessages writes the outbox table sized to width.
func RenderMessages(w io.Writer, entries []model.OutboxEntry, width int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No messages found.")
		return err
	}
	headers := []string{"When", "Status", "Name", "Email", "Message"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := "sent"
		if !e.Delivered {
			status = "failed"
		}
		rows = append(rows, []string{
			e.CreatedAt.Local().Format(time.DateTime),
			status,
			e.Name,
			e.Email,
			strings.Join(strings.Fields(e.Message), " "),
		})
	}
	lines := FormatTable(headers, fitLastColumn(headers, rows, width), nil)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// fitLastColumn truncates the last column so each row fits width.
func fitLastColumn(headers []string, rows [][]string, width int) [][]string {
	if width <= 0 || len(headers) == 0 {
		return rows
	}
	last := len(headers) - 1
	used := 0
	for i := 0; i < last; i++ {
		colWidth := displayWidth(headers[i])
		for _, row := range rows {
			if w := displayWidth(row[i]); w > colWidth {
				colWidth = w
			}
		}
		used += colWidth + 2
	}
	avail := width - used
	if avail < minDescWidth {
		avail = minDescWidth
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		next := append([]string(nil), row...)
		next[last] = Truncate(next[last], avail)
		out[i] = next
	}
	return out
}
