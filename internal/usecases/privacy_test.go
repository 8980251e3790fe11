package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"mindguard/internal/models"
	"mindguard/internal/prediction"
	"mindguard/internal/storage"
)

type privacyFixture struct {
	svc           *PrivacyService
	checkins      *storage.CheckInFileStore
	interventions *storage.InterventionStore
	models        *storage.ModelStore
}

func newPrivacyFixture(t *testing.T) privacyFixture {
	t.Helper()
	dir := t.TempDir()
	f := privacyFixture{
		checkins:      storage.NewCheckInFileStore(dir, 2),
		interventions: storage.NewInterventionStore(dir),
		models:        storage.NewModelStore(dir),
	}
	f.svc = NewPrivacyService(f.checkins, f.interventions, f.models)
	f.svc.now = fixedClock
	f.svc.intake.now = fixedClock
	return f
}

func TestSummary(t *testing.T) {
	f := newPrivacyFixture(t)
	ctx := context.Background()

	empty, err := f.svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if empty.TotalEntries != 0 || empty.Averages.Mood != nil {
		t.Errorf("empty summary = %+v", empty)
	}

	for _, c := range []models.CheckIn{
		{Date: "2024-03-01", MoodScore: 4, StressLevel: 6, SleepHours: 6.5, MoodNotes: "tired"},
		{Date: "2024-03-02", MoodScore: 7, StressLevel: 3, SleepHours: 8},
		{Date: "2024-03-05", MoodScore: 6, StressLevel: 5, SleepHours: 7.25},
	} {
		if _, err := f.checkins.Upsert(ctx, "alice", c); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}
	if _, err := f.interventions.AddToPlan(ctx, "alice", "Gratitude Journaling"); err != nil {
		t.Fatalf("AddToPlan: %v", err)
	}

	sum, err := f.svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalEntries != 3 || sum.FirstDate != "2024-03-01" || sum.LastDate != "2024-03-05" {
		t.Errorf("summary = %+v", sum)
	}
	if sum.DataTypes.Notes != 1 || sum.DataTypes.MoodScores != 3 {
		t.Errorf("data types = %+v", sum.DataTypes)
	}
	if *sum.Averages.Mood != 5.7 || *sum.Averages.Stress != 4.7 || *sum.Averages.Sleep != 7.3 {
		t.Errorf("averages = %v %v %v", *sum.Averages.Mood, *sum.Averages.Stress, *sum.Averages.Sleep)
	}
	if sum.PlannedItems != 1 {
		t.Errorf("planned = %d", sum.PlannedItems)
	}
}

func seedForExport(t *testing.T, f privacyFixture) {
	t.Helper()
	for _, req := range []CheckInRequest{
		{Date: ptr("2024-03-08"), MoodScore: ptr(6), MoodNotes: ptr("long, busy day"), Symptoms: []string{"Headache", "Fatigue"}},
		{Date: ptr("2024-03-09"), MoodScore: ptr(8), SleepHours: ptr(8.5)},
	} {
		if _, err := f.svc.intake.Submit(context.Background(), "alice", req); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
}

func TestExportCSV(t *testing.T) {
	f := newPrivacyFixture(t)
	seedForExport(t, f)

	var buf bytes.Buffer
	if err := f.svc.Export(context.Background(), "alice", FormatCSV, false, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "user_id" || rows[1][0] != "alice" {
		t.Errorf("user column = %q / %q", rows[0][0], rows[1][0])
	}
	if rows[1][12] != "long, busy day" || rows[1][13] != "Headache, Fatigue" {
		t.Errorf("notes/symptoms = %q / %q", rows[1][12], rows[1][13])
	}
}

func TestExportAnonymized(t *testing.T) {
	f := newPrivacyFixture(t)
	seedForExport(t, f)

	var csvBuf, jsonBuf bytes.Buffer
	if err := f.svc.Export(context.Background(), "alice", FormatCSV, true, &csvBuf); err != nil {
		t.Fatalf("Export csv: %v", err)
	}
	if err := f.svc.Export(context.Background(), "alice", FormatJSON, true, &jsonBuf); err != nil {
		t.Fatalf("Export json: %v", err)
	}

	if strings.Contains(csvBuf.String(), "alice") || strings.Contains(csvBuf.String(), "user_id") {
		t.Errorf("anonymised CSV leaks the user:\n%s", csvBuf.String())
	}

	var out []map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("records = %d", len(out))
	}
	if _, ok := out[0]["user_id"]; ok {
		t.Error("anonymised JSON has user_id")
	}
	if out[1]["date"] != "2024-03-09" {
		t.Errorf("second date = %v", out[1]["date"])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	f := newPrivacyFixture(t)
	if err := f.svc.Export(context.Background(), "alice", "xlsx", false, &bytes.Buffer{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, format := range []string{FormatCSV, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			src := newPrivacyFixture(t)
			seedForExport(t, src)
			var buf bytes.Buffer
			if err := src.svc.Export(context.Background(), "alice", format, false, &buf); err != nil {
				t.Fatalf("Export: %v", err)
			}

			dst := newPrivacyFixture(t)
			res, err := dst.svc.Import(context.Background(), "bob", format, &buf)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if res.Created != 2 || res.Updated != 0 || len(res.Errors) != 0 {
				t.Fatalf("result = %+v", res)
			}

			want, _ := src.checkins.All(context.Background(), "alice")
			got, _ := dst.checkins.All(context.Background(), "bob")
			for i := range want {
				w, g := want[i], got[i]
				if w.Date != g.Date || w.MoodScore != g.MoodScore || w.SleepHours != g.SleepHours ||
					w.MoodNotes != g.MoodNotes || strings.Join(w.Symptoms, "|") != strings.Join(g.Symptoms, "|") {
					t.Errorf("record %d = %+v, want %+v", i, g, w)
				}
			}
		})
	}
}

func TestImportReportsBadRows(t *testing.T) {
	f := newPrivacyFixture(t)
	in := strings.Join([]string{
		"date,mood_score,stress_level,sleep_hours",
		"2024-03-01,7,4,7.5",
		"2024-03-02,eleven,4,7",
		"2024-03-03,12,4,7",
		"2030-01-01,5,5,7",
		"2024-03-04,5,5,NaN",
		"2024-03-05,5,Inf,7",
		"2024-03-01,8,3,8",
	}, "\n")

	res, err := f.svc.Import(context.Background(), "alice", FormatCSV, strings.NewReader(in))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Created != 1 || res.Updated != 1 {
		t.Errorf("created/updated = %d/%d, want 1/1", res.Created, res.Updated)
	}
	rows := []int{}
	for _, e := range res.Errors {
		rows = append(rows, e.Row)
	}
	slices.Sort(rows)
	if !slices.Equal(rows, []int{2, 3, 4, 5, 6}) {
		t.Fatalf("errors = %+v, want rows 2 to 6", res.Errors)
	}
	if _, err := f.checkins.Get(context.Background(), "alice", "2024-03-04"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("NaN row stored: err = %v", err)
	}

	c, err := f.checkins.Get(context.Background(), "alice", "2024-03-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.MoodScore != 8 {
		t.Errorf("mood = %d, want the later row to win", c.MoodScore)
	}
}

func TestImportRejectsMalformedFiles(t *testing.T) {
	f := newPrivacyFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Import(ctx, "alice", FormatJSON, strings.NewReader("{not json")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("json err = %v", err)
	}
	if _, err := f.svc.Import(ctx, "alice", FormatCSV, strings.NewReader("mood_score\n5\n")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("csv without date err = %v", err)
	}
}

func TestDeleteScopes(t *testing.T) {
	ctx := context.Background()
	seed := func(t *testing.T) privacyFixture {
		f := newPrivacyFixture(t)
		for _, d := range []string{"2023-11-01", "2024-01-20", "2024-03-05", "2024-03-09"} {
			c := models.CheckIn{Date: d, MoodScore: 5, StressLevel: 5, MoodNotes: "note", Symptoms: []string{"Anxiety"}}
			if _, err := f.checkins.Upsert(ctx, "alice", c); err != nil {
				t.Fatalf("Upsert: %v", err)
			}
		}
		return f
	}

	tests := []struct {
		scope   string
		days    int
		removed int
		left    int
	}{
		{ScopeOlderThan, 90, 1, 3},
		{ScopeOlderThan, 30, 2, 2},
		{ScopeKeepRecent, 0, 2, 2},
		{ScopeNotes, 0, 0, 4},
		{ScopeAll, 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			f := seed(t)
			res, err := f.svc.Delete(ctx, "alice", tt.scope, tt.days)
			if err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if res.Removed != tt.removed {
				t.Errorf("removed = %d, want %d", res.Removed, tt.removed)
			}
			left, _ := f.checkins.All(ctx, "alice")
			if len(left) != tt.left {
				t.Errorf("left = %d, want %d", len(left), tt.left)
			}
			if tt.scope == ScopeNotes {
				for _, c := range left {
					if c.MoodNotes != "" || len(c.Symptoms) != 0 {
						t.Errorf("%s still has notes", c.Date)
					}
				}
			}
		})
	}
}

func TestDeleteAllRemovesEverything(t *testing.T) {
	ctx := context.Background()
	f := newPrivacyFixture(t)
	seedHistory(t, f.checkins, "alice", 10)
	if _, err := f.interventions.LogCompletion(ctx, "alice", "Gratitude Journaling"); err != nil {
		t.Fatalf("LogCompletion: %v", err)
	}
	m := prediction.NewStressModel()
	records, _ := f.checkins.All(ctx, "alice")
	if err := m.Train(records, testNow); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if err := f.models.Save(ctx, "alice", m.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := f.svc.Delete(ctx, "alice", ScopeAll, 0); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	logs, _ := f.interventions.Logs(ctx, "alice")
	if len(logs) != 0 {
		t.Errorf("logs survived: %v", logs)
	}
	if _, err := f.models.Load(ctx, "alice", prediction.TargetStress); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("model load err = %v, want ErrNotFound", err)
	}
}

func TestDeleteValidation(t *testing.T) {
	f := newPrivacyFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Delete(ctx, "alice", "everything", 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown scope err = %v", err)
	}
	if _, err := f.svc.Delete(ctx, "alice", ScopeOlderThan, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("older_than without days err = %v", err)
	}
}

func TestPrune(t *testing.T) {
	f := newPrivacyFixture(t)
	ctx := context.Background()
	seedHistory(t, f.checkins, "alice", 10)

	n, err := f.svc.Prune(ctx, "alice", 0)
	if err != nil || n != 0 {
		t.Errorf("disabled prune = %d, %v", n, err)
	}

	n, err = f.svc.Prune(ctx, "alice", 5)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 4 {
		t.Errorf("pruned = %d, want 4", n)
	}
}
