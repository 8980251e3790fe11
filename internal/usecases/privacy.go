package usecases

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"mindguard/internal/analysis"
	"mindguard/internal/models"
	"mindguard/internal/storage"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

const (
	ScopeAll        = "all"
	ScopeOlderThan  = "older_than"
	ScopeNotes      = "notes"
	ScopeKeepRecent = "keep_recent"
)

// defaultKeepDays is what keep_recent keeps when no period is given.
const defaultKeepDays = 7

var csvHeader = []string{
	"date", "mood_score", "stress_level", "energy_level", "sleep_hours",
	"exercise_minutes", "work_hours", "social_interaction", "caffeine_intake",
	"alcohol_intake", "meditation_minutes", "mood_notes", "symptoms", "timestamp",
}

type FieldCounts struct {
	MoodScores      int `json:"mood_scores"`
	StressLevels    int `json:"stress_levels"`
	SleepRecords    int `json:"sleep_records"`
	ExerciseRecords int `json:"exercise_records"`
	Notes           int `json:"notes"`
}

type Averages struct {
	Mood   *float64 `json:"mood"`
	Stress *float64 `json:"stress"`
	Sleep  *float64 `json:"sleep"`
}

// DataSummary describes what is stored about a user.
type DataSummary struct {
	TotalEntries      int         `json:"total_entries"`
	FirstDate         string      `json:"first_date,omitempty"`
	LastDate          string      `json:"last_date,omitempty"`
	DataTypes         FieldCounts `json:"data_types"`
	Averages          Averages    `json:"averages"`
	InterventionsDone int         `json:"interventions_logged"`
	PlannedItems      int         `json:"planned_interventions"`
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportResult struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Errors  []RowError `json:"errors"`
}

type DeleteResult struct {
	Scope   string `json:"scope"`
	Removed int    `json:"removed"`
}

type PrivacyService struct {
	checkins      storage.CheckInRepository
	interventions storage.InterventionRepository
	models        storage.ModelRepository
	intake        *CheckInService
	now           func() time.Time
}

func NewPrivacyService(checkins storage.CheckInRepository, interventions storage.InterventionRepository, models storage.ModelRepository) *PrivacyService {
	return &PrivacyService{
		checkins:      checkins,
		interventions: interventions,
		models:        models,
		intake:        NewCheckInService(checkins),
		now:           time.Now,
	}
}

func (s *PrivacyService) Summary(ctx context.Context, userID string) (DataSummary, error) {
	op := "internal/usecases/privacy.go Summary"

	records, err := s.checkins.All(ctx, userID)
	if err != nil {
		return DataSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	logs, err := s.interventions.Logs(ctx, userID)
	if err != nil {
		return DataSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	plan, err := s.interventions.Plan(ctx, userID)
	if err != nil {
		return DataSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	sum := DataSummary{
		TotalEntries:      len(records),
		InterventionsDone: len(logs),
		PlannedItems:      len(plan),
	}
	if len(records) == 0 {
		return sum, nil
	}

	sum.FirstDate = records[0].Date
	sum.LastDate = records[len(records)-1].Date
	n := len(records)
	sum.DataTypes = FieldCounts{MoodScores: n, StressLevels: n, SleepRecords: n, ExerciseRecords: n}

	var mood, stress, sleep float64
	for _, c := range records {
		mood += float64(c.MoodScore)
		stress += float64(c.StressLevel)
		sleep += c.SleepHours
		if c.MoodNotes != "" {
			sum.DataTypes.Notes++
		}
	}
	sum.Averages = Averages{
		Mood:   round1(mood / float64(n)),
		Stress: round1(stress / float64(n)),
		Sleep:  round1(sleep / float64(n)),
	}
	return sum, nil
}

// exportRecord is a check-in as written by Export. UserID is dropped when
// anonymising.
type exportRecord struct {
	UserID string `json:"user_id,omitempty"`
	models.CheckIn
}

// Export writes every check-in of the user to w as CSV or JSON.
func (s *PrivacyService) Export(ctx context.Context, userID, format string, anonymize bool, w io.Writer) error {
	op := "internal/usecases/privacy.go Export"

	if format != FormatCSV && format != FormatJSON {
		return invalid("format", "must be %s or %s", FormatCSV, FormatJSON)
	}

	records, err := s.checkins.All(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if format == FormatJSON {
		out := make([]exportRecord, len(records))
		for i, c := range records {
			out[i] = exportRecord{CheckIn: c}
			if !anonymize {
				out[i].UserID = userID
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	cw := csv.NewWriter(w)
	header := csvHeader
	if !anonymize {
		header = append([]string{"user_id"}, csvHeader...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, c := range records {
		row := csvRow(c)
		if !anonymize {
			row = append([]string{userID}, row...)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func csvRow(c models.CheckIn) []string {
	return []string{
		c.Date,
		strconv.Itoa(c.MoodScore),
		strconv.Itoa(c.StressLevel),
		strconv.Itoa(c.EnergyLevel),
		strconv.FormatFloat(c.SleepHours, 'f', -1, 64),
		strconv.Itoa(c.ExerciseMinutes),
		strconv.FormatFloat(c.WorkHours, 'f', -1, 64),
		c.SocialInteraction,
		strconv.Itoa(c.CaffeineIntake),
		strconv.Itoa(c.AlcoholIntake),
		strconv.Itoa(c.MeditationMinutes),
		c.MoodNotes,
		strings.Join(c.Symptoms, ", "),
		c.Timestamp.UTC().Format(time.RFC3339),
	}
}

// Import reads CSV or JSON check-ins from r. Every row goes through the same
// validation as a submitted check-in. Rejected rows are reported, not fatal.
func (s *PrivacyService) Import(ctx context.Context, userID, format string, r io.Reader) (ImportResult, error) {
	op := "internal/usecases/privacy.go Import"

	var (
		rows []importRow
		res  = ImportResult{Errors: []RowError{}}
		err  error
	)
	switch format {
	case FormatJSON:
		var reqs []CheckInRequest
		if err := json.NewDecoder(r).Decode(&reqs); err != nil {
			return res, invalid("file", "malformed JSON: %v", err)
		}
		for i, req := range reqs {
			rows = append(rows, importRow{line: i + 1, req: req})
		}
	case FormatCSV:
		rows, res.Errors, err = readCSV(r)
		if err != nil {
			return res, err
		}
	default:
		return res, invalid("format", "must be %s or %s", FormatCSV, FormatJSON)
	}

	for _, row := range rows {
		out, err := s.intake.Submit(ctx, userID, row.req)
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			res.Errors = append(res.Errors, RowError{Row: row.line, Error: verr.Error()})
		case err != nil:
			return res, fmt.Errorf("%s: row %d: %w", op, row.line, err)
		case out.Created:
			res.Created++
		default:
			res.Updated++
		}
	}
	return res, nil
}

type importRow struct {
	line int
	req  CheckInRequest
}

// readCSV maps rows by header name. Rows that fail to parse are reported in
// the returned errors instead.
func readCSV(r io.Reader) ([]importRow, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, invalid("file", "missing CSV header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := col["date"]; !ok {
		return nil, nil, invalid("file", "CSV header has no date column")
	}

	var (
		rows []importRow
		errs = []RowError{}
	)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, invalid("file", "malformed CSV: %v", err)
		}

		req, err := parseCSVRow(col, rec)
		if err != nil {
			errs = append(errs, RowError{Row: row, Error: err.Error()})
			continue
		}
		rows = append(rows, importRow{line: row, req: req})
	}
	return rows, errs, nil
}

func parseCSVRow(col map[string]int, rec []string) (CheckInRequest, error) {
	get := func(name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
			return "", false
		}
		return strings.TrimSpace(rec[i]), true
	}

	var req CheckInRequest
	ints := []struct {
		name string
		dst  **int
	}{
		{"mood_score", &req.MoodScore},
		{"stress_level", &req.StressLevel},
		{"energy_level", &req.EnergyLevel},
		{"exercise_minutes", &req.ExerciseMinutes},
		{"caffeine_intake", &req.CaffeineIntake},
		{"alcohol_intake", &req.AlcoholIntake},
		{"meditation_minutes", &req.MeditationMinutes},
	}
	for _, f := range ints {
		v, ok := get(f.name)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsInf(n, 0) || n != math.Trunc(n) {
			return req, fmt.Errorf("%s: %q is not a whole number", f.name, v)
		}
		i := int(n)
		*f.dst = &i
	}

	floats := []struct {
		name string
		dst  **float64
	}{
		{"sleep_hours", &req.SleepHours},
		{"work_hours", &req.WorkHours},
	}
	for _, f := range floats {
		v, ok := get(f.name)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("%s: %q is not a number", f.name, v)
		}
		*f.dst = &n
	}

	if v, ok := get("date"); ok {
		req.Date = &v
	} else {
		return req, fmt.Errorf("date: missing")
	}
	if v, ok := get("social_interaction"); ok {
		req.SocialInteraction = &v
	}
	if v, ok := get("mood_notes"); ok {
		req.MoodNotes = &v
	}
	if v, ok := get("symptoms"); ok {
		req.Symptoms = strings.Split(v, ",")
	}
	return req, nil
}

// Delete removes data by scope. days is the period for older_than and
// keep_recent.
func (s *PrivacyService) Delete(ctx context.Context, userID, scope string, days int) (DeleteResult, error) {
	op := "internal/usecases/privacy.go Delete"

	res := DeleteResult{Scope: scope}
	switch scope {
	case ScopeAll:
		records, err := s.checkins.All(ctx, userID)
		if err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.checkins.DeleteAll(ctx, userID); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.interventions.DeleteAll(ctx, userID); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.models.DeleteAll(ctx, userID); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		res.Removed = len(records)

	case ScopeNotes:
		if err := s.checkins.ClearNotes(ctx, userID); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}

	case ScopeOlderThan, ScopeKeepRecent:
		if scope == ScopeKeepRecent && days == 0 {
			days = defaultKeepDays
		}
		if days <= 0 {
			return res, invalid("days", "must be positive")
		}
		n, err := s.checkins.DeleteBefore(ctx, userID, analysis.Cutoff(s.now(), days))
		if err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		res.Removed = n

	default:
		return res, invalid("scope", "must be one of %s", strings.Join([]string{ScopeAll, ScopeOlderThan, ScopeNotes, ScopeKeepRecent}, ", "))
	}
	return res, nil
}

// Prune applies the retention policy. A non-positive retention keeps
// everything.
func (s *PrivacyService) Prune(ctx context.Context, userID string, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	res, err := s.Delete(ctx, userID, ScopeOlderThan, retentionDays)
	return res.Removed, err
}
