package quizgen

// Config holds question generation settings.
type Config struct {
	// QuestionsPerQuiz is the target question count for a section quiz.
	// Sections with fewer items produce one question per item.
	QuestionsPerQuiz int

	// ExamQuestions is the number of questions sampled for the final exam.
	ExamQuestions int

	// OptionsPerQuestion is the target option count (correct + distractors).
	OptionsPerQuestion int

	// MinItemsForQuiz is the minimum section size that can produce a quiz.
	MinItemsForQuiz int
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		QuestionsPerQuiz:   30,
		ExamQuestions:      10,
		OptionsPerQuestion: 4,
		MinItemsForQuiz:    4,
	}
}
