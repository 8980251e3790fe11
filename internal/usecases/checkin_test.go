package usecases

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"mindguard/internal/mocks"
	"mindguard/internal/models"
	"mindguard/internal/storage"
)

var testNow = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func ptr[T any](v T) *T { return &v }

func fieldNames(err error) []string {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	out := []string{}
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestCheckInRequestDefaults(t *testing.T) {
	c, err := CheckInRequest{}.CheckIn(testNow)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	want := models.CheckIn{
		Date:              "2024-03-10",
		MoodScore:         5,
		StressLevel:       5,
		EnergyLevel:       5,
		SleepHours:        7,
		ExerciseMinutes:   0,
		WorkHours:         8,
		SocialInteraction: models.SocialNone,
		Symptoms:          []string{},
	}
	if c.Date != want.Date || c.MoodScore != want.MoodScore || c.StressLevel != want.StressLevel ||
		c.EnergyLevel != want.EnergyLevel || c.SleepHours != want.SleepHours || c.WorkHours != want.WorkHours ||
		c.ExerciseMinutes != want.ExerciseMinutes || c.SocialInteraction != want.SocialInteraction ||
		c.CaffeineIntake != 0 || c.AlcoholIntake != 0 || c.MeditationMinutes != 0 || len(c.Symptoms) != 0 {
		t.Errorf("defaults = %+v, want %+v", c, want)
	}
}

func TestCheckInRequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   CheckInRequest
		field string
	}{
		{"mood below range", CheckInRequest{MoodScore: ptr(0)}, "mood_score"},
		{"stress above range", CheckInRequest{StressLevel: ptr(11)}, "stress_level"},
		{"energy above range", CheckInRequest{EnergyLevel: ptr(12)}, "energy_level"},
		{"sleep above a day", CheckInRequest{SleepHours: ptr(25.0)}, "sleep_hours"},
		{"negative work", CheckInRequest{WorkHours: ptr(-1.0)}, "work_hours"},
		{"sleep not a number", CheckInRequest{SleepHours: ptr(math.NaN())}, "sleep_hours"},
		{"infinite work", CheckInRequest{WorkHours: ptr(math.Inf(1))}, "work_hours"},
		{"exercise over 12h", CheckInRequest{ExerciseMinutes: ptr(721)}, "exercise_minutes"},
		{"caffeine", CheckInRequest{CaffeineIntake: ptr(21)}, "caffeine_intake"},
		{"alcohol", CheckInRequest{AlcoholIntake: ptr(-1)}, "alcohol_intake"},
		{"meditation", CheckInRequest{MeditationMinutes: ptr(481)}, "meditation_minutes"},
		{"social level", CheckInRequest{SocialInteraction: ptr("Lots")}, "social_interaction"},
		{"unknown symptom", CheckInRequest{Symptoms: []string{"Nausea"}}, "symptoms"},
		{"future date", CheckInRequest{Date: ptr("2024-03-11")}, "date"},
		{"malformed date", CheckInRequest{Date: ptr("10/03/2024")}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.CheckIn(testNow)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if got := fieldNames(err); !slices.Equal(got, []string{tt.field}) {
				t.Errorf("fields = %v, want [%s]", got, tt.field)
			}
		})
	}
}

func TestCheckInRequestCollectsAllFields(t *testing.T) {
	_, err := CheckInRequest{MoodScore: ptr(0), StressLevel: ptr(0), SleepHours: ptr(30.0)}.CheckIn(testNow)
	got := fieldNames(err)
	want := []string{"mood_score", "stress_level", "sleep_hours"}
	if !slices.Equal(got, want) {
		t.Errorf("fields = %v, want %v", got, want)
	}
}

func TestCheckInRequestSymptoms(t *testing.T) {
	c, err := CheckInRequest{Symptoms: []string{"Headache", " Fatigue ", "Headache"}}.CheckIn(testNow)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if !slices.Equal(c.Symptoms, []string{"Headache", "Fatigue"}) {
		t.Errorf("symptoms = %v", c.Symptoms)
	}

	c, err = CheckInRequest{Symptoms: []string{"Headache", "None"}}.CheckIn(testNow)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if len(c.Symptoms) != 0 {
		t.Errorf("None left symptoms %v", c.Symptoms)
	}
}

func TestCheckInRequestPastDate(t *testing.T) {
	c, err := CheckInRequest{Date: ptr("2024-03-01")}.CheckIn(testNow)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if c.Date != "2024-03-01" {
		t.Errorf("date = %s", c.Date)
	}
}

func TestQuickInsights(t *testing.T) {
	tests := []struct {
		name string
		c    models.CheckIn
		want []string
	}{
		{
			name: "stressed short sleeper",
			c:    models.CheckIn{StressLevel: 8, SleepHours: 5, ExerciseMinutes: 0},
			want: []string{"warning", "warning", "info"},
		},
		{
			name: "relaxed and active",
			c:    models.CheckIn{StressLevel: 3, SleepHours: 8, ExerciseMinutes: 45},
			want: []string{"success", "success", "success"},
		},
		{
			name: "middle of the road",
			c:    models.CheckIn{StressLevel: 5, SleepHours: 7, ExerciseMinutes: 10},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, in := range QuickInsights(tt.c) {
				got = append(got, in.Level)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("levels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmitStampsAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckInRepository(ctrl)

	repo.EXPECT().
		Upsert(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, c models.CheckIn) (bool, error) {
			if !c.Timestamp.Equal(testNow) {
				t.Errorf("timestamp = %v, want %v", c.Timestamp, testNow)
			}
			if c.StressLevel != 8 {
				t.Errorf("stress = %d, want 8", c.StressLevel)
			}
			return true, nil
		})

	s := NewCheckInService(repo)
	s.now = fixedClock

	res, err := s.Submit(context.Background(), "alice", CheckInRequest{StressLevel: ptr(8)})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Created {
		t.Error("created = false, want true")
	}
	if len(res.Insights) == 0 || res.Insights[0].Level != "warning" {
		t.Errorf("insights = %+v", res.Insights)
	}
}

func TestSubmitRejectsBeforeStoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckInRepository(ctrl)

	s := NewCheckInService(repo)
	s.now = fixedClock

	_, err := s.Submit(context.Background(), "alice", CheckInRequest{MoodScore: ptr(42)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSubmitRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckInRepository(ctrl)
	boom := errors.New("disk full")
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)

	s := NewCheckInService(repo)
	s.now = fixedClock

	if _, err := s.Submit(context.Background(), "alice", CheckInRequest{}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestSubmitSameDayUpdates(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewCheckInFileStore(t.TempDir(), 10)
	s := NewCheckInService(repo)
	s.now = fixedClock

	first, err := s.Submit(ctx, "alice", CheckInRequest{MoodScore: ptr(4)})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := s.Submit(ctx, "alice", CheckInRequest{MoodScore: ptr(7)})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !first.Created || second.Created {
		t.Errorf("created = %v, %v; want true, false", first.Created, second.Created)
	}

	all, err := s.List(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].MoodScore != 7 {
		t.Errorf("records = %+v, want one with mood 7", all)
	}

	today, err := s.Today(ctx, "alice")
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if today.MoodScore != 7 {
		t.Errorf("today mood = %d", today.MoodScore)
	}
}

func TestGetRejectsMalformedDate(t *testing.T) {
	s := NewCheckInService(mocks.NewMockCheckInRepository(gomock.NewController(t)))
	if _, err := s.Get(context.Background(), "alice", "yesterday"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckInRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "alice", "2024-03-09").Return(nil, storage.ErrNotFound)

	s := NewCheckInService(repo)
	if _, err := s.Get(context.Background(), "alice", "2024-03-09"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckInRepository(ctrl)
	repo.EXPECT().
		Since(gomock.Any(), "alice", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)).
		Return([]models.CheckIn{
			{Date: "2024-03-08", MoodScore: 4, StressLevel: 7},
			{Date: "2024-03-09", MoodScore: 6, StressLevel: 6},
			{Date: "2024-03-10", MoodScore: 7, StressLevel: 4},
		}, nil)

	s := NewCheckInService(repo)
	s.now = fixedClock

	d, err := s.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !d.CheckedInToday || d.Today == nil || d.Today.Date != "2024-03-10" {
		t.Errorf("today = %+v, checked in %v", d.Today, d.CheckedInToday)
	}
	if d.Entries != 3 {
		t.Errorf("entries = %d", d.Entries)
	}
	if d.AvgMood == nil || *d.AvgMood != 5.7 {
		t.Errorf("avg mood = %v, want 5.7", d.AvgMood)
	}
	if d.AvgStress == nil || *d.AvgStress != 5.7 {
		t.Errorf("avg stress = %v, want 5.7", d.AvgStress)
	}
}

func TestDashboardEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckInRepository(ctrl)
	repo.EXPECT().Since(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.CheckIn{}, nil)

	s := NewCheckInService(repo)
	s.now = fixedClock

	d, err := s.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.CheckedInToday || d.AvgMood != nil || d.AvgStress != nil {
		t.Errorf("dashboard = %+v, want empty", d)
	}
}
