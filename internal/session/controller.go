// Package session orchestrates one quiz or exam run: question sequencing,
// grading, XP awards, and the completion threshold. It owns the resumable
// session state for the run's lifetime and commits results into the
// progress store only at finalization.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nebrasmahmood/dutch-learning-app/internal/badges"
	"github.com/nebrasmahmood/dutch-learning-app/internal/catalog"
	"github.com/nebrasmahmood/dutch-learning-app/internal/progress"
	"github.com/nebrasmahmood/dutch-learning-app/internal/quizgen"
	"github.com/nebrasmahmood/dutch-learning-app/internal/spelling"
)

// Controller builds and drives runs against the catalog, generator, and
// progress store.
type Controller struct {
	cat   *catalog.Catalog
	gen   *quizgen.Generator
	store *progress.Store
}

// NewController wires a Controller.
func NewController(cat *catalog.Catalog, gen *quizgen.Generator, store *progress.Store) *Controller {
	return &Controller{cat: cat, gen: gen, store: store}
}

// StartQuiz begins or resumes a quiz run for a section. A saved session is
// resumed only when its question-id count matches a freshly generated
// set's count; a stale state is discarded and the run starts over. Unknown
// sections return catalog.NotFoundError; sections too small to quiz return
// *InsufficientItemsError.
func (c *Controller) StartQuiz(ctx context.Context, sectionID string) (*Run, error) {
	section, err := c.cat.Section(sectionID)
	if err != nil {
		return nil, err
	}

	fresh := c.gen.Quiz(section)
	if len(fresh) == 0 {
		return nil, &InsufficientItemsError{
			SectionID: sectionID,
			Items:     len(section.Items),
			Required:  c.gen.Config().MinItemsForQuiz,
		}
	}

	run := &Run{
		ID:        uuid.NewString(),
		Mode:      ModeQuiz,
		SectionID: sectionID,
		Phase:     PhaseActive,
	}

	saved, err := c.store.QuizState(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if saved != nil && len(saved.QuestionIDs) == len(fresh) {
		// Replay the realized order so a restart lands on the same
		// questions in the same sequence.
		run.Questions = c.gen.QuizForIDs(section, saved.QuestionIDs)
		run.Index = saved.CurrentIndex
		run.CorrectCount = saved.CorrectCount
		run.Resumed = true
		if run.Index >= run.Len() {
			// Saved state points past the last question; treat as stale.
			run.Questions = fresh
			run.Index = 0
			run.CorrectCount = 0
			run.Resumed = false
			if err := c.store.ClearQuizState(ctx, sectionID); err != nil {
				return nil, err
			}
		}
		return run, nil
	}
	if saved != nil {
		// Cardinality mismatch: the stale session is unrecoverable.
		// Discard it and start fresh; never surfaced to the learner.
		if err := c.store.ClearQuizState(ctx, sectionID); err != nil {
			return nil, err
		}
	}

	run.Questions = fresh
	return run, nil
}

// StartExam begins a final exam run over the pooled vocabulary. Exams are
// not resumable.
func (c *Controller) StartExam() *Run {
	return &Run{
		ID:            uuid.NewString(),
		Mode:          ModeExam,
		ExamQuestions: c.gen.Exam(),
		Phase:         PhaseActive,
	}
}

// Submit grades the learner's answer for the current question. Submitting
// while feedback for the current question is still pending is a no-op and
// returns nil: the first answer stands. Correct answers award XP
// immediately. The caller shows feedback, then calls Advance.
func (c *Controller) Submit(ctx context.Context, run *Run, answer string) (*AnswerResult, error) {
	if run.Phase != PhaseActive || run.Index >= run.Len() {
		return nil, nil
	}

	correct := c.grade(run, answer)
	run.Phase = PhaseFeedback
	if correct {
		run.CorrectCount++
	}

	result := &AnswerResult{
		Correct:       correct,
		CorrectAnswer: run.correctAnswer(),
		LastQuestion:  run.Index == run.Len()-1,
	}
	if correct {
		result.XPAwarded = run.xpPerCorrect()
		if _, err := c.store.AddXP(ctx, result.XPAwarded); err != nil {
			return nil, err
		}
	}

	// Quiz sessions persist after every answer so an abandoned run resumes
	// at the next unanswered question.
	if run.Mode == ModeQuiz {
		state := &progress.QuizState{
			SectionID:    run.SectionID,
			CurrentIndex: run.Index + 1,
			CorrectCount: run.CorrectCount,
			QuestionIDs:  questionIDs(run.Questions),
		}
		if err := c.store.SaveQuizState(ctx, state); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Advance moves past the feedback phase: to the next question, or to
// finalization after the last one. The returned Summary is non-nil only
// when the run finished. The display delay between Submit and Advance
// belongs to the caller.
func (c *Controller) Advance(ctx context.Context, run *Run) (*Summary, error) {
	if run.Phase != PhaseFeedback {
		return nil, nil
	}

	if run.Index < run.Len()-1 {
		run.Index++
		run.Phase = PhaseActive
		return nil, nil
	}

	run.Phase = PhaseFinished
	switch run.Mode {
	case ModeExam:
		return c.finalizeExam(ctx, run)
	default:
		return c.finalizeQuiz(ctx, run)
	}
}

// grade judges an answer: exact match for multiple choice, spelling
// tolerance for free-text exam answers.
func (c *Controller) grade(run *Run, answer string) bool {
	if run.Mode == ModeExam {
		return spelling.IsAcceptable(answer, run.correctAnswer())
	}
	return answer == run.correctAnswer()
}

func (c *Controller) finalizeQuiz(ctx context.Context, run *Run) (*Summary, error) {
	count := run.Len()
	summary := &Summary{
		Mode:          ModeQuiz,
		SectionID:     run.SectionID,
		CorrectCount:  run.CorrectCount,
		QuestionCount: count,
		Score:         float64(run.CorrectCount) / float64(count),
		XPGained:      run.CorrectCount * XPPerQuizCorrect,
	}

	threshold := MinimumCorrectToPass
	if count < threshold {
		threshold = count
	}
	summary.Passed = run.CorrectCount >= threshold

	if summary.Passed {
		if err := c.store.CompleteSection(ctx, run.SectionID, summary.Score); err != nil {
			return nil, err
		}
	}
	// Pass or fail, the next attempt starts clean.
	if err := c.store.ClearQuizState(ctx, run.SectionID); err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Controller) finalizeExam(ctx context.Context, run *Run) (*Summary, error) {
	count := run.Len()
	if count == 0 {
		return nil, fmt.Errorf("finalize exam: empty question set")
	}
	summary := &Summary{
		Mode:          ModeExam,
		CorrectCount:  run.CorrectCount,
		QuestionCount: count,
		Score:         float64(run.CorrectCount) / float64(count),
		XPGained:      run.CorrectCount * XPPerExamCorrect,
	}
	summary.Passed = summary.Score >= badges.ExamPassScore

	// The exam result is recorded pass or fail; there is no replay gate.
	if err := c.store.RecordExam(ctx, summary.Score); err != nil {
		return nil, err
	}
	return summary, nil
}

func questionIDs(questions []quizgen.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
