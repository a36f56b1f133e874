package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/logger"
	"github.com/mkbrennan/ritual/internal/models"
	"github.com/mkbrennan/ritual/internal/validation"
)

// Store owns the in-memory habit record map and mirrors it to the KV store
// as a single serialized blob under the habits key. During a session the
// map is the source of truth; the blob is read once at load and rewritten
// after every settled mutation. Progress writes are debounced per habit so
// a ticking timer does not saturate the store.
type Store struct {
	kv     KV
	mu     sync.Mutex
	habits map[string]models.Habit
	writer *debouncer
}

// NewStore creates a record store over the given KV backend. debounce
// controls progress-write coalescing; non-positive persists synchronously.
func NewStore(kv KV, debounce time.Duration) *Store {
	s := &Store{
		kv:     kv,
		habits: make(map[string]models.Habit),
	}
	s.writer = newDebouncer(debounce, s.persist)
	return s
}

// Init writes the current record map through immediately, creating the
// backing storage on first run. Unlike persist, a failure is returned so
// setup problems are visible.
func (s *Store) Init() error {
	s.mu.Lock()
	blob, err := json.Marshal(s.habits)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.kv.Set(constants.KeyHabits, string(blob))
}

// Load reads the persisted record map. An absent blob means first run and
// a malformed one is treated the same way: both degrade to an empty map
// with a warning, never a failure.
func (s *Store) Load() error {
	blob, ok, err := s.kv.Get(constants.KeyHabits)
	if err != nil {
		logger.Warn("Failed to read habit records, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	habits := make(map[string]models.Habit)
	if err := json.Unmarshal([]byte(blob), &habits); err != nil {
		logger.Warn("Habit records are unreadable, starting empty", "error", err)
		return nil
	}

	s.mu.Lock()
	s.habits = habits
	s.mu.Unlock()
	return nil
}

// persist serializes the whole record map and writes it through. A write
// failure is logged and swallowed: the in-memory map stays authoritative
// for the rest of the session.
func (s *Store) persist() {
	s.mu.Lock()
	blob, err := json.Marshal(s.habits)
	s.mu.Unlock()
	if err != nil {
		logger.Warn("Failed to serialize habit records", "error", err)
		return
	}
	if err := s.kv.Set(constants.KeyHabits, string(blob)); err != nil {
		logger.Warn("Failed to persist habit records", "error", err)
	}
}

// Habits returns all habits ordered by creation time, then name.
func (s *Store) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits := make([]models.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool {
		if !habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].CreatedAt.Before(habits[j].CreatedAt)
		}
		return habits[i].Name < habits[j].Name
	})
	return habits
}

// Habit returns the habit with the given id.
func (s *Store) Habit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return h, nil
}

// HabitByName returns the habit with the given display name.
func (s *Store) HabitByName(name string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

// Create validates and inserts a new habit, then persists the full map.
func (s *Store) Create(h models.Habit) error {
	if err := validation.ValidateHabit(h); err != nil {
		return err
	}

	s.mu.Lock()
	s.habits[h.ID] = h
	s.mu.Unlock()

	s.persist()
	return nil
}

// Update validates and replaces an existing habit record. Only the record's
// own fields change; daily progress goes through SetProgress.
func (s *Store) Update(h models.Habit) error {
	if err := validation.ValidateHabit(h); err != nil {
		return err
	}

	s.mu.Lock()
	if _, ok := s.habits[h.ID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("habit not found: %s", h.ID)
	}
	s.habits[h.ID] = h
	s.mu.Unlock()

	s.persist()
	return nil
}

// Delete removes a habit immediately. There is no soft delete or undo.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	if _, ok := s.habits[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("habit not found: %s", id)
	}
	delete(s.habits, id)
	s.mu.Unlock()

	s.persist()
	return nil
}

// SetProgress records the day's progress for a habit, snapshotting the
// habit's current target alongside it. The write replaces the day's entry
// outright (last write wins) and schedules a debounced persist keyed by
// habit id, so later values always overwrite earlier ones.
func (s *Store) SetProgress(id, day string, progress int) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	s.mu.Lock()
	h, ok := s.habits[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("habit not found: %s", id)
	}
	h.Dates = models.MergeProgress(h.Dates, day, progress, h.ProgressTotal)
	s.habits[id] = h
	s.mu.Unlock()

	s.writer.Trigger(id)
	return nil
}

// ResetDates clears a habit's entire progress history.
func (s *Store) ResetDates(id string) error {
	s.mu.Lock()
	h, ok := s.habits[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("habit not found: %s", id)
	}
	h.Dates = nil
	s.habits[id] = h
	s.mu.Unlock()

	s.persist()
	return nil
}

// Theme returns the stored theme name, or empty when unset or unreadable.
func (s *Store) Theme() string {
	return s.scalar(constants.KeyTheme)
}

// SetTheme stores the theme name.
func (s *Store) SetTheme(name string) error {
	return s.kv.Set(constants.KeyTheme, name)
}

// Accent returns the stored accent colour key, or empty when unset.
func (s *Store) Accent() string {
	return s.scalar(constants.KeyAccent)
}

// SetAccent stores the accent colour key.
func (s *Store) SetAccent(key string) error {
	return s.kv.Set(constants.KeyAccent, key)
}

func (s *Store) scalar(key string) string {
	value, ok, err := s.kv.Get(key)
	if err != nil {
		logger.Warn("Failed to read setting, using default", "key", key, "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return value
}

// Flush forces any debounced progress writes to land now.
func (s *Store) Flush() {
	s.writer.Flush()
}

// Close flushes pending writes and releases the KV backend.
func (s *Store) Close() error {
	s.Flush()
	return s.kv.Close()
}
