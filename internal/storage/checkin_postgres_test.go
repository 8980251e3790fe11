package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://localhost/db", "pgx5://localhost/db"},
		{"pgx5://localhost/db", "pgx5://localhost/db"},
	}
	for _, tt := range tests {
		if got := migrateURL(tt.in); got != tt.want {
			t.Errorf("migrateURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Runs only against a disposable database named by MINDGUARD_TEST_POSTGRES_DSN.
func TestPostgresCheckInStore(t *testing.T) {
	dsn := os.Getenv("MINDGUARD_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("MINDGUARD_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	if err := Migrate(dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()

	s := NewPostgresCheckInStore(pool)
	user := "pg-test-" + time.Now().Format("150405.000000")
	defer s.DeleteAll(ctx, user)

	created, err := s.Upsert(ctx, user, sampleCheckIn("2024-03-01", 6))
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("first upsert should create")
	}
	created, err = s.Upsert(ctx, user, sampleCheckIn("2024-03-01", 9))
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second upsert should update")
	}
	if _, err := s.Upsert(ctx, user, sampleCheckIn("2024-03-04", 4)); err != nil {
		t.Fatal(err)
	}

	all, err := s.All(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].MoodScore != 9 || all[1].Date != "2024-03-04" {
		t.Fatalf("All = %+v", all)
	}

	if err := s.ClearNotes(ctx, user); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, user, "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if got.MoodNotes != "" || len(got.Symptoms) != 0 {
		t.Errorf("notes not cleared: %+v", got)
	}

	removed, err := s.DeleteBefore(ctx, user, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}
