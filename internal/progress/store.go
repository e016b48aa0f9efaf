// Package progress owns the learner's durable state: profile, XP and level,
// section completion, paid unlocks, and resumable quiz sessions.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nebrasmahmood/dutch-learning-app/internal/storage"
)

// Store reads and writes learner state through the abstract KV. Every
// mutation is a scoped read-modify-write: fetch, mutate in memory, write
// back. Last write wins; callers must not interleave two mutations against
// the same key.
type Store struct {
	kv storage.KV
}

// NewStore creates a Store over the given persistence.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Profile returns the learner profile, or nil when none exists yet.
func (s *Store) Profile(ctx context.Context) (*UserProfile, error) {
	raw, ok, err := s.kv.Get(ctx, keyUser)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var p UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// InitProfile creates a fresh profile and empty progress record,
// overwriting any existing state.
func (s *Store) InitProfile(ctx context.Context, displayName string) (*UserProfile, error) {
	p := &UserProfile{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Level:       1,
		TotalXP:     0,
		Badges:      []string{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.saveProfile(ctx, p); err != nil {
		return nil, err
	}
	if err := s.saveProgress(ctx, NewRecord()); err != nil {
		return nil, err
	}
	return p, nil
}

// AddXP adds amount to the profile's total XP and recomputes the level.
// A missing profile makes this a silent no-op, matching caller expectations
// during first-run flows. Amount is not validated: callers are trusted, and
// the only negative flow (unlock) goes through UnlockSection's guarded path.
func (s *Store) AddXP(ctx context.Context, amount int) (*UserProfile, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	p.TotalXP += amount
	p.Level = LevelForXP(p.TotalXP)
	if err := s.saveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Progress returns the learner's progress record, creating an empty one
// in memory when nothing is persisted yet.
func (s *Store) Progress(ctx context.Context) (*Record, error) {
	raw, ok, err := s.kv.Get(ctx, keyProgress)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if !ok {
		return NewRecord(), nil
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	if r.SectionProgress == nil {
		r.SectionProgress = map[string]SectionProgress{}
	}
	return &r, nil
}

// CompleteSection marks a section completed. Membership in the completed
// set is idempotent; attempts increments and score is overwritten on every
// call, including downward, so replays of a finished section still count.
func (s *Store) CompleteSection(ctx context.Context, sectionID string, score float64) error {
	r, err := s.Progress(ctx)
	if err != nil {
		return err
	}

	if !r.HasCompleted(sectionID) {
		r.CompletedSections = append(r.CompletedSections, sectionID)
	}
	r.SectionProgress[sectionID] = SectionProgress{
		SectionID: sectionID,
		Completed: true,
		Score:     score,
		Attempts:  r.SectionProgress[sectionID].Attempts + 1,
	}
	return s.saveProgress(ctx, r)
}

// RecordExam stores the final exam result. Retakes always overwrite the
// recorded score, including downward; the record reflects the most recent
// attempt, not a high-water mark.
func (s *Store) RecordExam(ctx context.Context, score float64) error {
	r, err := s.Progress(ctx)
	if err != nil {
		return err
	}
	r.ExamCompleted = true
	r.ExamScore = score
	return s.saveProgress(ctx, r)
}

// UnlockSection spends UnlockCost XP to unlock a section out of order.
// Returns false with no side effect when the balance is insufficient or no
// profile exists. The unlock record is written before the XP deduction, so
// a mid-operation storage failure can only leave the learner unlocked but
// not yet charged, never the reverse.
func (s *Store) UnlockSection(ctx context.Context, sectionID string) (bool, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return false, err
	}
	if p == nil || p.TotalXP < UnlockCost {
		return false, nil
	}

	r, err := s.Progress(ctx)
	if err != nil {
		return false, err
	}
	if !r.HasUnlocked(sectionID) {
		r.UnlockedSections = append(r.UnlockedSections, sectionID)
	}
	if err := s.saveProgress(ctx, r); err != nil {
		return false, err
	}

	p.TotalXP -= UnlockCost
	p.Level = LevelForXP(p.TotalXP)
	if err := s.saveProfile(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

// QuizState returns the saved session state for a section, or nil.
func (s *Store) QuizState(ctx context.Context, sectionID string) (*QuizState, error) {
	raw, ok, err := s.kv.Get(ctx, quizStateKey(sectionID))
	if err != nil {
		return nil, fmt.Errorf("load quiz state %s: %w", sectionID, err)
	}
	if !ok {
		return nil, nil
	}
	var q QuizState
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode quiz state %s: %w", sectionID, err)
	}
	return &q, nil
}

// SaveQuizState persists the session state for its section, last write wins.
func (s *Store) SaveQuizState(ctx context.Context, state *QuizState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode quiz state %s: %w", state.SectionID, err)
	}
	if err := s.kv.Set(ctx, quizStateKey(state.SectionID), raw); err != nil {
		return fmt.Errorf("save quiz state %s: %w", state.SectionID, err)
	}
	return nil
}

// ClearQuizState removes the saved session state for a section.
func (s *Store) ClearQuizState(ctx context.Context, sectionID string) error {
	if err := s.kv.Delete(ctx, quizStateKey(sectionID)); err != nil {
		return fmt.Errorf("clear quiz state %s: %w", sectionID, err)
	}
	return nil
}

// Reset deletes the profile, progress record, and any saved quiz state for
// the given sections.
func (s *Store) Reset(ctx context.Context, sectionIDs []string) error {
	keys := []string{keyUser, keyProgress}
	for _, id := range sectionIDs {
		keys = append(keys, quizStateKey(id))
	}
	if err := s.kv.DeleteMany(ctx, keys); err != nil {
		return fmt.Errorf("reset learner data: %w", err)
	}
	return nil
}

func (s *Store) saveProfile(ctx context.Context, p *UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, keyUser, raw); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *Store) saveProgress(ctx context.Context, r *Record) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.kv.Set(ctx, keyProgress, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
