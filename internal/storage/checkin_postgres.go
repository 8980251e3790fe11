package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mindguard/internal/models"
)

const checkinColumns = `date, mood_score, stress_level, energy_level, sleep_hours, exercise_minutes,
	work_hours, social_interaction, caffeine_intake, alcohol_intake, meditation_minutes,
	mood_notes, symptoms, timestamp`

// PostgresCheckInStore is the Postgres flavour of CheckInRepository.
type PostgresCheckInStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCheckInStore(pool *pgxpool.Pool) *PostgresCheckInStore {
	return &PostgresCheckInStore{
		pool: pool,
	}
}

func (db_cs *PostgresCheckInStore) Upsert(ctx context.Context, userID string, c models.CheckIn) (bool, error) {
	op := "internal/storage/checkin_postgres.go Upsert"

	symptoms := c.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	sql_query := `
	INSERT INTO checkins (user_hash, ` + checkinColumns + `)
	VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (user_hash, date) DO UPDATE SET
	mood_score = EXCLUDED.mood_score,
	stress_level = EXCLUDED.stress_level,
	energy_level = EXCLUDED.energy_level,
	sleep_hours = EXCLUDED.sleep_hours,
	exercise_minutes = EXCLUDED.exercise_minutes,
	work_hours = EXCLUDED.work_hours,
	social_interaction = EXCLUDED.social_interaction,
	caffeine_intake = EXCLUDED.caffeine_intake,
	alcohol_intake = EXCLUDED.alcohol_intake,
	meditation_minutes = EXCLUDED.meditation_minutes,
	mood_notes = EXCLUDED.mood_notes,
	symptoms = EXCLUDED.symptoms,
	timestamp = EXCLUDED.timestamp
	RETURNING (xmax = 0) AS inserted;
	`

	var inserted bool
	err := db_cs.pool.QueryRow(ctx, sql_query,
		HashUserID(userID),
		c.Date,
		c.MoodScore,
		c.StressLevel,
		c.EnergyLevel,
		c.SleepHours,
		c.ExerciseMinutes,
		c.WorkHours,
		c.SocialInteraction,
		c.CaffeineIntake,
		c.AlcoholIntake,
		c.MeditationMinutes,
		c.MoodNotes,
		symptoms,
		c.Timestamp,
	).Scan(&inserted)

	if err != nil {
		return false, fmt.Errorf("%s: failed to upsert check-in: %w", op, err)
	}
	return inserted, nil
}

func (db_cs *PostgresCheckInStore) All(ctx context.Context, userID string) ([]models.CheckIn, error) {
	op := "internal/storage/checkin_postgres.go All"

	sql_query := `
	SELECT ` + checkinColumns + ` FROM checkins
	WHERE user_hash = $1
	ORDER BY date ASC;
	`

	entries, err := db_cs.query(ctx, sql_query, HashUserID(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

func (db_cs *PostgresCheckInStore) Since(ctx context.Context, userID string, cutoff time.Time) ([]models.CheckIn, error) {
	op := "internal/storage/checkin_postgres.go Since"

	sql_query := `
	SELECT ` + checkinColumns + ` FROM checkins
	WHERE user_hash = $1 AND date >= $2::date
	ORDER BY date ASC;
	`

	entries, err := db_cs.query(ctx, sql_query, HashUserID(userID), models.FormatDay(cutoff))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

func (db_cs *PostgresCheckInStore) Get(ctx context.Context, userID string, date string) (*models.CheckIn, error) {
	op := "internal/storage/checkin_postgres.go Get"

	sql_query := `
	SELECT ` + checkinColumns + ` FROM checkins
	WHERE user_hash = $1 AND date = $2::date;
	`

	entry, err := scanCheckIn(db_cs.pool.QueryRow(ctx, sql_query, HashUserID(userID), date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &entry, nil
}

func (db_cs *PostgresCheckInStore) DeleteBefore(ctx context.Context, userID string, cutoff time.Time) (int, error) {
	op := "internal/storage/checkin_postgres.go DeleteBefore"

	tag, err := db_cs.pool.Exec(ctx,
		`DELETE FROM checkins WHERE user_hash = $1 AND date < $2::date`,
		HashUserID(userID), models.FormatDay(cutoff))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(tag.RowsAffected()), nil
}

func (db_cs *PostgresCheckInStore) ClearNotes(ctx context.Context, userID string) error {
	op := "internal/storage/checkin_postgres.go ClearNotes"

	_, err := db_cs.pool.Exec(ctx,
		`UPDATE checkins SET mood_notes = '', symptoms = '{}' WHERE user_hash = $1`,
		HashUserID(userID))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (db_cs *PostgresCheckInStore) DeleteAll(ctx context.Context, userID string) error {
	op := "internal/storage/checkin_postgres.go DeleteAll"

	if _, err := db_cs.pool.Exec(ctx, `DELETE FROM checkins WHERE user_hash = $1`, HashUserID(userID)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (db_cs *PostgresCheckInStore) query(ctx context.Context, sql string, args ...any) ([]models.CheckIn, error) {
	rows, err := db_cs.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failure to query check-ins: %w", err)
	}
	defer rows.Close()

	entries := []models.CheckIn{}
	for rows.Next() {
		entry, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failure to scan check-ins: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanCheckIn(row pgx.Row) (models.CheckIn, error) {
	var (
		entry models.CheckIn
		day   time.Time
		mood, stress, energy, caffeine, alcohol int16
	)

	err := row.Scan(
		&day,
		&mood,
		&stress,
		&energy,
		&entry.SleepHours,
		&entry.ExerciseMinutes,
		&entry.WorkHours,
		&entry.SocialInteraction,
		&caffeine,
		&alcohol,
		&entry.MeditationMinutes,
		&entry.MoodNotes,
		&entry.Symptoms,
		&entry.Timestamp,
	)
	if err != nil {
		return models.CheckIn{}, err
	}

	entry.Date = models.FormatDay(day)
	entry.MoodScore = int(mood)
	entry.StressLevel = int(stress)
	entry.EnergyLevel = int(energy)
	entry.CaffeineIntake = int(caffeine)
	entry.AlcoholIntake = int(alcohol)
	entry.Timestamp = entry.Timestamp.UTC()
	return entry, nil
}
