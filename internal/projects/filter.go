// Package projects filters the project gallery.
package projects

import "github.com/verte-zerg/termfolio/internal/model"

// Filter returns the records in category, preserving order.
// CategoryAll returns records unchanged.
func Filter(category string, records []model.ProjectRecord) []model.ProjectRecord {
	if category == model.CategoryAll {
		return records
	}
	out := make([]model.ProjectRecord, 0, len(records))
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// NextCategory cycles through categories by delta, wrapping at both ends.
// An unknown current value starts from the first category.
func NextCategory(categories []string, current string, delta int) string {
	count := len(categories)
	if count == 0 {
		return model.CategoryAll
	}
	idx := -1
	for i, c := range categories {
		if c == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		return categories[0]
	}
	next := ((idx+delta)%count + count) % count
	return categories[next]
}
