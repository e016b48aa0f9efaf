package session

import (
	"github.com/nebrasmahmood/dutch-learning-app/internal/quizgen"
)

// XP awarded per correct answer, by mode.
const (
	XPPerQuizCorrect = 10
	XPPerExamCorrect = 20
)

// MinimumCorrectToPass is the correct-answer count required to complete a
// section quiz. Quizzes shorter than the threshold require a perfect run.
const MinimumCorrectToPass = 15

// Mode distinguishes section quizzes from the final exam.
type Mode int

const (
	ModeQuiz Mode = iota
	ModeExam
)

// Phase is the current phase of a run.
type Phase int

const (
	PhaseLoading  Phase = iota // building or resuming the question set
	PhaseActive                // waiting for an answer
	PhaseFeedback              // answer graded, feedback showing
	PhaseFinished              // summary available
)

// Run is the state of one quiz or exam attempt. A Run is driven by a
// single caller; it is not safe for concurrent use.
type Run struct {
	// ID is the UUID for this run.
	ID string

	Mode      Mode
	SectionID string // empty in exam mode

	// Questions is the realized question order for quiz mode.
	Questions []quizgen.Question

	// ExamQuestions is the realized question order for exam mode.
	ExamQuestions []quizgen.ExamQuestion

	// Index is the position of the current question.
	Index int

	// CorrectCount is the number of correct answers so far.
	CorrectCount int

	Phase Phase

	// Resumed is true when the run replayed a saved question order.
	Resumed bool
}

// Len returns the number of questions in the run.
func (r *Run) Len() int {
	if r.Mode == ModeExam {
		return len(r.ExamQuestions)
	}
	return len(r.Questions)
}

// Current returns the active quiz question. Valid only in quiz mode while
// the run is unfinished.
func (r *Run) Current() quizgen.Question {
	return r.Questions[r.Index]
}

// CurrentExam returns the active exam question.
func (r *Run) CurrentExam() quizgen.ExamQuestion {
	return r.ExamQuestions[r.Index]
}

// correctAnswer returns the expected answer for the current question.
func (r *Run) correctAnswer() string {
	if r.Mode == ModeExam {
		return r.CurrentExam().CorrectAnswer
	}
	return r.Current().CorrectAnswer
}

// xpPerCorrect returns the XP value of a correct answer in this mode.
func (r *Run) xpPerCorrect() int {
	if r.Mode == ModeExam {
		return XPPerExamCorrect
	}
	return XPPerQuizCorrect
}

// AnswerResult reports the outcome of one graded answer.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string

	// XPAwarded is the XP granted for this answer (0 when wrong). The award
	// is applied immediately; it is also the caller's transient XP signal.
	XPAwarded int

	// LastQuestion is true when this was the final question of the run.
	LastQuestion bool
}

// Summary reports a finalized run.
type Summary struct {
	Mode          Mode
	SectionID     string
	CorrectCount  int
	QuestionCount int

	// Score is CorrectCount / QuestionCount in [0,1].
	Score float64

	// XPGained is a derived total for reporting; XP was already awarded
	// incrementally per correct answer.
	XPGained int

	// Passed reports the pass threshold: section completion for quizzes,
	// the badge threshold for exams.
	Passed bool
}
