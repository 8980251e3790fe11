package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"mindguard/internal/models"
)

const backupTimeLayout = "20060102_150405.000000000"

// CheckInFileStore keeps one JSON array of check-ins per user under root/users,
// snapshotting the previous file into root/backups before every upsert.
// Deletes and note clearing remove the user's snapshots instead.
type CheckInFileStore struct {
	root       string
	backupKeep int
	now        func() time.Time
	mu         sync.RWMutex
}

func NewCheckInFileStore(root string, backupKeep int) *CheckInFileStore {
	os.MkdirAll(filepath.Join(root, "users"), 0o755)
	os.MkdirAll(filepath.Join(root, "backups"), 0o755)
	return &CheckInFileStore{root: root, backupKeep: backupKeep, now: time.Now}
}

func (s *CheckInFileStore) userPath(userID string) string {
	return filepath.Join(s.root, "users", HashUserID(userID)+".json")
}

func (s *CheckInFileStore) backupDir() string {
	return filepath.Join(s.root, "backups")
}

func (s *CheckInFileStore) Upsert(ctx context.Context, userID string, c models.CheckIn) (bool, error) {
	op := "internal/storage/checkin_file.go Upsert"

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	created := true
	for i := range records {
		if records[i].Date == c.Date {
			records[i] = c
			created = false
			break
		}
	}
	if created {
		records = append(records, c)
	}

	if err := s.write(userID, records); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *CheckInFileStore) All(ctx context.Context, userID string) ([]models.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.read(userID)
	if err != nil {
		return nil, fmt.Errorf("internal/storage/checkin_file.go All: %w", err)
	}
	return records, nil
}

func (s *CheckInFileStore) Since(ctx context.Context, userID string, cutoff time.Time) ([]models.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.read(userID)
	if err != nil {
		return nil, fmt.Errorf("internal/storage/checkin_file.go Since: %w", err)
	}

	from := models.FormatDay(cutoff)
	filtered := []models.CheckIn{}
	for _, c := range records {
		if c.Date >= from {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *CheckInFileStore) Get(ctx context.Context, userID string, date string) (*models.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.read(userID)
	if err != nil {
		return nil, fmt.Errorf("internal/storage/checkin_file.go Get: %w", err)
	}
	for _, c := range records {
		if c.Date == date {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CheckInFileStore) DeleteBefore(ctx context.Context, userID string, cutoff time.Time) (int, error) {
	op := "internal/storage/checkin_file.go DeleteBefore"

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	from := models.FormatDay(cutoff)
	kept := records[:0]
	for _, c := range records {
		if c.Date >= from {
			kept = append(kept, c)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.purge(userID, kept); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return removed, nil
}

func (s *CheckInFileStore) ClearNotes(ctx context.Context, userID string) error {
	op := "internal/storage/checkin_file.go ClearNotes"

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(records) == 0 {
		return nil
	}

	for i := range records {
		records[i].MoodNotes = ""
		records[i].Symptoms = []string{}
	}
	if err := s.purge(userID, records); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CheckInFileStore) DeleteAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := removeIfExists(s.userPath(userID)); err != nil {
		return fmt.Errorf("internal/storage/checkin_file.go DeleteAll: %w", err)
	}
	if err := s.removeBackups(userID); err != nil {
		return fmt.Errorf("internal/storage/checkin_file.go DeleteAll: backups: %w", err)
	}
	log.Printf("internal/storage/checkin_file.go DeleteAll: removed check-ins for %s", HashUserID(userID))
	return nil
}

// Backups lists the backup files of a user, newest first.
func (s *CheckInFileStore) Backups(userID string) ([]string, error) {
	prefix := HashUserID(userID) + "_"
	entries, err := os.ReadDir(s.backupDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (s *CheckInFileStore) read(userID string) ([]models.CheckIn, error) {
	records := []models.CheckIn{}
	if _, err := readJSON(s.userPath(userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *CheckInFileStore) write(userID string, records []models.CheckIn) error {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })

	if err := s.backup(userID); err != nil {
		// a failed snapshot never blocks the write itself
		log.Printf("internal/storage/checkin_file.go backup: %s: %v", HashUserID(userID), err)
	}
	return writeJSON(s.userPath(userID), records)
}

// purge writes records without a snapshot and drops every existing backup,
// so deleted data does not survive in backups/.
func (s *CheckInFileStore) purge(userID string, records []models.CheckIn) error {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })

	if err := writeJSON(s.userPath(userID), records); err != nil {
		return err
	}
	return s.removeBackups(userID)
}

func (s *CheckInFileStore) removeBackups(userID string) error {
	names, err := s.Backups(userID)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := removeIfExists(filepath.Join(s.backupDir(), name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *CheckInFileStore) backup(userID string) error {
	src, err := os.Open(s.userPath(userID))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(s.backupDir(), 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.json", HashUserID(userID), s.now().Format(backupTimeLayout))
	dst, err := os.Create(filepath.Join(s.backupDir(), name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	return s.pruneBackups(userID)
}

func (s *CheckInFileStore) pruneBackups(userID string) error {
	if s.backupKeep <= 0 {
		return nil
	}
	names, err := s.Backups(userID)
	if err != nil {
		return err
	}
	for _, old := range names[min(len(names), s.backupKeep):] {
		if err := os.Remove(filepath.Join(s.backupDir(), old)); err != nil {
			return err
		}
	}
	return nil
}
