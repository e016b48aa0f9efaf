package progress

// Storage keys. Quiz state is keyed per section.
const (
	keyPrefix    = "dutchlearn:"
	keyUser      = keyPrefix + "user"
	keyProgress  = keyPrefix + "progress"
	keyQuizState = keyPrefix + "quiz_state:"
)

func quizStateKey(sectionID string) string {
	return keyQuizState + sectionID
}
