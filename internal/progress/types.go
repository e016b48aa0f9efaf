package progress

import "time"

// XPPerLevel is the XP span of one level.
const XPPerLevel = 100

// UnlockCost is the XP price of unlocking a section out of order.
const UnlockCost = 300

// UserProfile is the learner's identity and XP state. Level is always a
// pure function of TotalXP; it is recomputed on every XP mutation, never
// updated independently.
type UserProfile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"name"`
	Level       int       `json:"level"`
	TotalXP     int       `json:"totalXP"`
	Badges      []string  `json:"badges"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LevelForXP derives the level for a total XP amount.
func LevelForXP(totalXP int) int {
	return totalXP/XPPerLevel + 1
}

// XPToNextLevel returns how much XP remains until the next level.
func (p *UserProfile) XPToNextLevel() int {
	return XPPerLevel - p.TotalXP%XPPerLevel
}

// SectionProgress is per-section completion state.
type SectionProgress struct {
	SectionID string  `json:"sectionId"`
	Completed bool    `json:"completed"`
	Score     float64 `json:"score"`
	Attempts  int     `json:"attempts"`
}

// Record is the learner's progress through the curriculum. Membership in
// CompletedSections and SectionProgress[id].Completed are kept in lockstep.
type Record struct {
	CompletedSections []string                   `json:"completedSections"`
	SectionProgress   map[string]SectionProgress `json:"sectionProgress"`
	ExamCompleted     bool                       `json:"examCompleted"`
	ExamScore         float64                    `json:"examScore"`
	UnlockedSections  []string                   `json:"unlockedSections"`
}

// NewRecord returns an empty progress record.
func NewRecord() *Record {
	return &Record{
		CompletedSections: []string{},
		SectionProgress:   map[string]SectionProgress{},
		UnlockedSections:  []string{},
	}
}

// HasCompleted reports whether a section has been completed.
func (r *Record) HasCompleted(sectionID string) bool {
	return contains(r.CompletedSections, sectionID)
}

// HasUnlocked reports whether a section has been unlocked with XP.
func (r *Record) HasUnlocked(sectionID string) bool {
	return contains(r.UnlockedSections, sectionID)
}

// SectionState is the derived display state of a section.
type SectionState string

const (
	StateLocked    SectionState = "locked"
	StateActive    SectionState = "active"
	StateCompleted SectionState = "completed"
)

// StateFor derives a section's state from the record. index is the
// section's position in catalog order and prevID the id of the section
// before it ("" for the first). A section is active when it is first in
// the chain, follows a completed section, or was unlocked with XP.
func (r *Record) StateFor(sectionID string, index int, prevID string) SectionState {
	if r.HasCompleted(sectionID) {
		return StateCompleted
	}
	if index == 0 {
		return StateActive
	}
	if prevID != "" && r.HasCompleted(prevID) {
		return StateActive
	}
	if r.HasUnlocked(sectionID) {
		return StateActive
	}
	return StateLocked
}

// QuizState is the resumable per-section session state. It is created on
// the first answer of a run, rewritten after every answer, and deleted when
// the run finalizes.
type QuizState struct {
	SectionID    string   `json:"sectionId"`
	CurrentIndex int      `json:"currentIndex"`
	CorrectCount int      `json:"correctCount"`
	QuestionIDs  []string `json:"questionIds"`
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
