package listing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/termfolio/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Title", "Year", "Count"}
	rows := [][]string{
		{"a", "2025", "12"},
		{"longer", "23", "3"},
	}
	rightAlign := map[int]bool{2: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Title   Year  Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a       2025     12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "longer  23        3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := FormatTable([]string{"A", "B"}, [][]string{{"∞∞", "x"}, {"日本", "y"}}, nil)
	if lines[2] != "日本  y" {
		t.Fatalf("expected double-width runes padded by cells: %q", lines[2])
	}
}

func TestRenderProjectsTruncatesStack(t *testing.T) {
	records := []model.ProjectRecord{{
		Title:    "Honeypot",
		Year:     "2025",
		Category: "AI/ML",
		Status:   model.StatusInProgress,
		Stack:    []string{"Python", "Machine Learning", "Network Security", "AI"},
	}}
	var buf bytes.Buffer
	if err := RenderProjects(&buf, records, 60); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d", len(lines))
	}
	for _, line := range lines {
		if displayWidth(line) > 60 {
			t.Fatalf("line wider than 60 cells: %q", line)
		}
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected truncated stack column: %q", lines[1])
	}
}

func TestRenderMessagesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMessages(&buf, nil, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No messages found.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
