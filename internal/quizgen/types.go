package quizgen

// Question is a multiple-choice quiz question. Questions are ephemeral:
// they are regenerated per session and only the realized id order is
// persisted for resume.
type Question struct {
	// ID is the id of the vocabulary item being asked.
	ID string

	// Prompt is the source-language word shown to the learner.
	Prompt string

	// CorrectAnswer is the target-language word.
	CorrectAnswer string

	// Options holds the answer choices in display order. The correct answer
	// appears exactly once; duplicates are removed, so fewer than four
	// options are possible when the vocabulary pool is small.
	Options []string
}

// ExamQuestion is a free-text final exam question. No options: the learner
// types the answer and it is judged with spelling tolerance.
type ExamQuestion struct {
	ID            string
	Prompt        string
	CorrectAnswer string
}
