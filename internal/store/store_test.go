package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/termfolio/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "termfolio.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestRecordAndListMessages(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for i, name := range []string{"first", "second", "third"} {
		entry := model.OutboxEntry{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Name:      name,
			Email:     name + "@example.com",
			Message:   "hi",
			Delivered: i != 1,
		}
		if i == 1 {
			entry.Error = "network down"
		}
		id, err := st.RecordMessage(ctx, entry)
		if err != nil {
			t.Fatalf("record message: %v", err)
		}
		if id == "" {
			t.Fatalf("expected generated id")
		}
	}

	entries, err := st.ListMessages(ctx, 2)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "third" || entries[1].Name != "second" {
		t.Fatalf("unexpected order: %q, %q", entries[0].Name, entries[1].Name)
	}
	if entries[1].Delivered || entries[1].Error != "network down" {
		t.Fatalf("unexpected failed entry: %+v", entries[1])
	}
	if !entries[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("unexpected timestamp %v", entries[0].CreatedAt)
	}

	all, err := st.ListMessages(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
}

func TestCounters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	v, err := st.Counter(ctx, CounterCoffee)
	if err != nil || v != 0 {
		t.Fatalf("expected 0 for unset counter, got %d (%v)", v, err)
	}
	for want := int64(1); want <= 3; want++ {
		got, err := st.IncrementCounter(ctx, CounterCoffee)
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
	v, err = st.Counter(ctx, CounterCoffee)
	if err != nil || v != 3 {
		t.Fatalf("expected 3, got %d (%v)", v, err)
	}
}
