package storage

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestInterventionStore_LogCompletion(t *testing.T) {
	ctx := context.Background()
	s := NewInterventionStore(t.TempDir())
	s.now = func() time.Time { return time.Date(2024, 5, 2, 18, 30, 0, 0, time.UTC) }

	entry, err := s.LogCompletion(ctx, "alice", "Box Breathing")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(entry.ID); err != nil {
		t.Errorf("id %q is not a uuid: %v", entry.ID, err)
	}
	if entry.Date != "2024-05-02" {
		t.Errorf("date = %s", entry.Date)
	}

	if _, err := s.LogCompletion(ctx, "alice", "Box Breathing"); err != nil {
		t.Fatal(err)
	}

	logs, err := s.Logs(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].ID == logs[1].ID {
		t.Error("log ids are not unique")
	}
}

func TestInterventionStore_PlanHasNoDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewInterventionStore(t.TempDir())

	for _, name := range []string{"Desk Yoga Sequence", "Gratitude Journaling", "Desk Yoga Sequence"} {
		if _, err := s.AddToPlan(ctx, "bob", name); err != nil {
			t.Fatal(err)
		}
	}

	plan, err := s.Plan(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Desk Yoga Sequence", "Gratitude Journaling"}
	if !reflect.DeepEqual(plan, want) {
		t.Errorf("plan = %v, want %v", plan, want)
	}

	added, err := s.AddToPlan(ctx, "bob", "Gratitude Journaling")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("duplicate reported as added")
	}

	if err := s.DeleteAll(ctx, "bob"); err != nil {
		t.Fatal(err)
	}
	plan, _ = s.Plan(ctx, "bob")
	if len(plan) != 0 {
		t.Errorf("plan after DeleteAll = %v", plan)
	}
}
