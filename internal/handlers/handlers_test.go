package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"mindguard/internal/interventions"
	"mindguard/internal/models"
	"mindguard/internal/prediction"
	"mindguard/internal/storage"
	"mindguard/internal/usecases"
)

type envelope struct {
	Status string                `json:"status"`
	Data   json.RawMessage       `json:"data"`
	Error  string                `json:"error"`
	Fields []usecases.FieldError `json:"fields"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	checkins := storage.NewCheckInFileStore(dir, 3)
	ivs := storage.NewInterventionStore(dir)
	snapshots := storage.NewModelStore(dir)

	return NewRouter(Services{
		CheckIns:      usecases.NewCheckInService(checkins),
		Analysis:      usecases.NewAnalysisService(checkins, ivs),
		Forecast:      usecases.NewForecastService(checkins, snapshots, 7),
		Interventions: usecases.NewInterventionService(checkins, ivs, interventions.NewEngine()),
		Privacy:       usecases.NewPrivacyService(checkins, ivs, snapshots),
	}, "anonymous_user")
}

func do(t *testing.T, h http.Handler, method, target, user, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec, env
}

func daysAgo(n int) string {
	return models.FormatDay(time.Now().AddDate(0, 0, -n))
}

func TestHealth(t *testing.T) {
	rec, env := do(t, newTestRouter(t), http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK || env.Status != "success" {
		t.Errorf("health = %d %+v", rec.Code, env)
	}
}

func TestSubmitCheckIn(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/api/checkins", "alice", `{"mood_score": 6, "stress_level": 8}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first submit = %d: %s", rec.Code, rec.Body.String())
	}
	var res usecases.SubmitResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.CheckIn.StressLevel != 8 || res.CheckIn.SleepHours != 7 || len(res.Insights) == 0 {
		t.Errorf("result = %+v", res)
	}

	rec, _ = do(t, h, http.MethodPost, "/api/checkins", "alice", `{"mood_score": 7}`)
	if rec.Code != http.StatusOK {
		t.Errorf("same-day resubmit = %d, want 200", rec.Code)
	}

	_, env = do(t, h, http.MethodGet, "/api/checkins", "alice", "")
	var list []models.CheckIn
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].MoodScore != 7 {
		t.Errorf("list = %+v, want one entry with mood 7", list)
	}

	rec, _ = do(t, h, http.MethodGet, "/api/checkins/today", "alice", "")
	if rec.Code != http.StatusOK {
		t.Errorf("today = %d", rec.Code)
	}
}

func TestSubmitValidation(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/api/checkins", "alice", `{"mood_score": 11, "social_interaction": "Lots"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if len(env.Fields) != 2 || env.Fields[0].Field != "mood_score" || env.Fields[1].Field != "social_interaction" {
		t.Errorf("fields = %+v", env.Fields)
	}

	rec, _ = do(t, h, http.MethodPost, "/api/checkins", "alice", `{"mood_score": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", rec.Code)
	}

	future := models.FormatDay(time.Now().AddDate(0, 0, 2))
	rec, _ = do(t, h, http.MethodPost, "/api/checkins", "alice", fmt.Sprintf(`{"date": %q}`, future))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("future date = %d, want 400", rec.Code)
	}
}

func TestUsersAreSeparate(t *testing.T) {
	h := newTestRouter(t)

	do(t, h, http.MethodPost, "/api/checkins", "alice", `{}`)
	do(t, h, http.MethodPost, "/api/checkins?user=carol", "", `{}`)

	for user, want := range map[string]int{"alice": 1, "bob": 0} {
		_, env := do(t, h, http.MethodGet, "/api/checkins", user, "")
		var list []models.CheckIn
		if err := json.Unmarshal(env.Data, &list); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(list) != want {
			t.Errorf("%s sees %d entries, want %d", user, len(list), want)
		}
	}

	_, env := do(t, h, http.MethodGet, "/api/checkins?user=carol", "", "")
	if string(env.Data) == "[]" {
		t.Error("query parameter user not honoured")
	}
}

func TestGetMissingCheckIn(t *testing.T) {
	rec, _ := do(t, newTestRouter(t), http.MethodGet, "/api/checkins/2024-01-01", "alice", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

func TestAnalysisWindows(t *testing.T) {
	h := newTestRouter(t)
	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"date": %q, "mood_score": %d, "sleep_hours": %d}`, daysAgo(i), 4+i, 5+i)
		if rec, _ := do(t, h, http.MethodPost, "/api/checkins", "alice", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed = %d", rec.Code)
		}
	}

	rec, env := do(t, h, http.MethodGet, "/api/analysis?days=7", "alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analysis = %d", rec.Code)
	}
	var report struct {
		Days    int `json:"days"`
		Summary struct {
			Entries int `json:"entries"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Days != 7 || report.Summary.Entries != 5 {
		t.Errorf("report = %+v", report)
	}

	if rec, _ := do(t, h, http.MethodGet, "/api/analysis?days=14", "alice", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unsupported window = %d, want 400", rec.Code)
	}
	if rec, _ := do(t, h, http.MethodGet, "/api/progress?days=all", "alice", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric days = %d, want 400", rec.Code)
	}
	if rec, _ := do(t, h, http.MethodGet, "/api/progress?days=0", "alice", ""); rec.Code != http.StatusOK {
		t.Errorf("all-time progress = %d", rec.Code)
	}
}

func TestForecastNeedsHistory(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/api/checkins", "alice", `{}`)

	rec, env := do(t, h, http.MethodGet, "/api/forecast", "alice", "")
	if rec.Code != http.StatusUnprocessableEntity || env.Status != "error" {
		t.Errorf("forecast = %d %+v, want 422", rec.Code, env)
	}
}

func TestForecastAndPredict(t *testing.T) {
	h := newTestRouter(t)
	for i := 0; i < 10; i++ {
		body := fmt.Sprintf(`{"date": %q, "stress_level": %d, "sleep_hours": %d, "work_hours": %d}`,
			daysAgo(i), 3+i%6, 9-i%4, 6+i%5)
		do(t, h, http.MethodPost, "/api/checkins", "alice", body)
	}

	rec, env := do(t, h, http.MethodGet, "/api/forecast", "alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("forecast = %d: %s", rec.Code, rec.Body.String())
	}
	var f prediction.Forecast
	if err := json.Unmarshal(env.Data, &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.Days) != prediction.ForecastDays {
		t.Errorf("forecast days = %d", len(f.Days))
	}

	rec, env = do(t, h, http.MethodPost, "/api/models/stress_level/predict", "alice", `{"sleep_hours": 4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("predict = %d: %s", rec.Code, rec.Body.String())
	}
	var out map[string]any
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := out["risk"]; !ok {
		t.Errorf("stress prediction without risk: %v", out)
	}

	if rec, _ := do(t, h, http.MethodPost, "/api/models/joy/train", "alice", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown target = %d, want 400", rec.Code)
	}
}

func TestInterventionEndpoints(t *testing.T) {
	h := newTestRouter(t)

	_, env := do(t, h, http.MethodGet, "/api/interventions", "", "")
	var all []models.Intervention
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 11 {
		t.Fatalf("catalog = %d", len(all))
	}

	rec, _ := do(t, h, http.MethodGet, "/api/interventions/"+url.PathEscape(all[0].Title), "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("lookup = %d", rec.Code)
	}
	if rec, _ := do(t, h, http.MethodGet, "/api/interventions/Juggling", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown lookup = %d, want 404", rec.Code)
	}

	if rec, _ := do(t, h, http.MethodGet, "/api/interventions/recommendations", "alice", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("recommendations without data = %d, want 422", rec.Code)
	}
	do(t, h, http.MethodPost, "/api/checkins", "alice", `{"stress_level": 9}`)
	_, env = do(t, h, http.MethodGet, "/api/interventions/recommendations", "alice", "")
	var rec2 usecases.Recommendations
	if err := json.Unmarshal(env.Data, &rec2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !rec2.HighStress || len(rec2.Immediate) != 4 {
		t.Errorf("recommendations = %+v", rec2)
	}

	body := fmt.Sprintf(`{"intervention_name": %q}`, all[0].Title)
	if rec, _ := do(t, h, http.MethodPost, "/api/interventions/log", "alice", body); rec.Code != http.StatusCreated {
		t.Errorf("log = %d", rec.Code)
	}
	if rec, _ := do(t, h, http.MethodPost, "/api/interventions/log", "alice", `{"intervention_name": "Juggling"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("log unknown = %d, want 400", rec.Code)
	}

	do(t, h, http.MethodPost, "/api/plan", "alice", body)
	_, env = do(t, h, http.MethodPost, "/api/plan", "alice", body)
	var plan []string
	if err := json.Unmarshal(env.Data, &plan); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plan) != 1 {
		t.Errorf("plan = %v, want no duplicates", plan)
	}
}

func TestEducation(t *testing.T) {
	h := newTestRouter(t)

	_, env := do(t, h, http.MethodGet, "/api/education", "", "")
	var topics []models.Topic
	if err := json.Unmarshal(env.Data, &topics); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(topics) != len(models.Topics) {
		t.Errorf("got %d topics, want %d", len(topics), len(models.Topics))
	}

	_, env = do(t, h, http.MethodGet, "/api/education?topic=mindfulness", "", "")
	topics = nil
	if err := json.Unmarshal(env.Data, &topics); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != models.TopicMindfulness || len(topics[0].Articles) == 0 {
		t.Errorf("topic = %+v", topics)
	}

	_, env = do(t, h, http.MethodGet, "/api/education?q=pomodoro", "", "")
	var articles []models.Article
	if err := json.Unmarshal(env.Data, &articles); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(articles) != 1 || len(articles[0].Techniques) == 0 {
		t.Errorf("search = %+v", articles)
	}

	rec, env := do(t, h, http.MethodGet, "/api/education?topic=horoscopes", "", "")
	if rec.Code != http.StatusBadRequest || len(env.Fields) != 1 || env.Fields[0].Field != "topic" {
		t.Errorf("unknown topic = %d %+v", rec.Code, env)
	}
}

func TestExportAndDelete(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/api/checkins", "alice", `{"mood_notes": "ok"}`)

	rec, _ := do(t, h, http.MethodGet, "/api/privacy/export?format=csv&anonymize=true", "alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export = %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "mental_health_data_") {
		t.Errorf("disposition = %q", rec.Header().Get("Content-Disposition"))
	}
	if strings.Contains(rec.Body.String(), "alice") {
		t.Error("anonymised export contains the user id")
	}

	if rec, _ := do(t, h, http.MethodGet, "/api/privacy/export?format=pdf", "alice", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("pdf export = %d, want 400", rec.Code)
	}

	if rec, _ := do(t, h, http.MethodPost, "/api/privacy/delete", "alice", `{"scope": "all"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("unconfirmed delete = %d, want 400", rec.Code)
	}
	rec, _ = do(t, h, http.MethodPost, "/api/privacy/delete", "alice", `{"scope": "all", "confirm": "DELETE"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d", rec.Code)
	}

	_, env := do(t, h, http.MethodGet, "/api/privacy/summary", "alice", "")
	var sum usecases.DataSummary
	if err := json.Unmarshal(env.Data, &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.TotalEntries != 0 {
		t.Errorf("entries after delete = %d", sum.TotalEntries)
	}
}

func TestImport(t *testing.T) {
	h := newTestRouter(t)
	csvBody := "date,mood_score,stress_level\n" + daysAgo(2) + ",6,4\n" + daysAgo(1) + ",13,4\n"

	req := httptest.NewRequest(http.MethodPost, "/api/privacy/import?format=csv", strings.NewReader(csvBody))
	req.Header.Set("X-User-ID", "alice")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("import = %d: %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data usecases.ImportResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Created != 1 || len(env.Data.Errors) != 1 || env.Data.Errors[0].Row != 2 {
		t.Errorf("import result = %+v", env.Data)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&usecases.ValidationError{}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", storage.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", prediction.ErrInsufficientData), http.StatusUnprocessableEntity},
		{prediction.ErrLowVariance, http.StatusUnprocessableEntity},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
