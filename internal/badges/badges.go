// Package badges derives achievement badges from profile and progress state.
// Badges are recomputed on read, never persisted independently.
package badges

import (
	"github.com/nebrasmahmood/dutch-learning-app/internal/progress"
)

// ExamPassScore is the exam score at or above which the exam counts as
// passed for badge purposes. The exam itself has no replay gating.
const ExamPassScore = 0.6

// levelBadgeThreshold is the level that earns the level badge.
const levelBadgeThreshold = 5

// ID identifies a badge.
type ID string

const (
	FirstSection ID = "first_section"
	PerfectScore ID = "perfect_score"
	ExamPassed   ID = "exam_passed"
	LevelFive    ID = "level_5"
)

// Badge is a fixed achievement definition.
type Badge struct {
	ID          ID
	Name        string
	Description string
	Icon        string
}

// All returns every badge in display order.
func All() []Badge {
	return []Badge{
		{ID: FirstSection, Name: "First Steps", Description: "Complete your first section", Icon: "award"},
		{ID: PerfectScore, Name: "Perfect Score", Description: "Get 100% on a quiz", Icon: "star"},
		{ID: ExamPassed, Name: "Exam Master", Description: "Pass the final exam", Icon: "check-circle"},
		{ID: LevelFive, Name: "Level 5", Description: "Reach level 5", Icon: "trending-up"},
	}
}

// Earned returns the ids of badges the learner has earned.
func Earned(p *progress.UserProfile, r *progress.Record) []ID {
	var earned []ID
	if r != nil && len(r.CompletedSections) > 0 {
		earned = append(earned, FirstSection)
	}
	if r != nil && r.ExamCompleted && r.ExamScore >= ExamPassScore {
		earned = append(earned, ExamPassed)
	}
	if p != nil && p.Level >= levelBadgeThreshold {
		earned = append(earned, LevelFive)
	}
	if r != nil {
		for _, sp := range r.SectionProgress {
			if sp.Score == 1 {
				earned = append(earned, PerfectScore)
				break
			}
		}
	}
	return earned
}

// Has reports whether id is in the earned set.
func Has(earned []ID, id ID) bool {
	for _, e := range earned {
		if e == id {
			return true
		}
	}
	return false
}
