// Package i18n provides caller-facing strings through an explicit
// translator value. It is passed where needed, never a hidden global.
package i18n

import "fmt"

// Locale selects a message table.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleNL Locale = "nl"
)

// Translator resolves message keys for one locale.
type Translator struct {
	Locale Locale
}

// New returns a Translator for the locale, falling back to English for
// unknown locales.
func New(locale Locale) *Translator {
	if _, ok := messages[locale]; !ok {
		locale = LocaleEN
	}
	return &Translator{Locale: locale}
}

// T resolves a message key, formatting args into the message. Unknown keys
// return the key itself so missing translations are visible, not fatal.
func (t *Translator) T(key string, args ...any) string {
	table := messages[t.Locale]
	msg, ok := table[key]
	if !ok {
		if msg, ok = messages[LocaleEN][key]; !ok {
			return key
		}
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

var messages = map[Locale]map[string]string{
	LocaleEN: {
		"quiz.prompt":        "What is the Dutch word for: %s",
		"exam.prompt":        "%s",
		"answer.correct":     "Correct! +%d XP",
		"answer.incorrect":   "Not quite. The answer was: %s",
		"quiz.progress":      "Question %d of %d",
		"run.resumed":        "Resuming where you left off (question %d).",
		"summary.passed":     "Section complete! %d/%d correct, +%d XP",
		"summary.failed":     "%d/%d correct. You need %d to pass; try again!",
		"summary.exam":       "Exam finished: %d/%d correct (%.0f%%)",
		"summary.exampassed": "Exam passed!",
		"section.locked":     "locked",
		"section.active":     "active",
		"section.completed":  "completed",
		"unlock.success":     "Section unlocked! %d XP spent.",
		"unlock.nofunds":     "Not enough XP: unlocking costs %d.",
	},
	LocaleNL: {
		"quiz.prompt":        "Wat is het Nederlandse woord voor: %s",
		"exam.prompt":        "%s",
		"answer.correct":     "Goed! +%d XP",
		"answer.incorrect":   "Helaas. Het antwoord was: %s",
		"quiz.progress":      "Vraag %d van %d",
		"run.resumed":        "We gaan verder waar je was gebleven (vraag %d).",
		"summary.passed":     "Sectie voltooid! %d/%d goed, +%d XP",
		"summary.failed":     "%d/%d goed. Je hebt er %d nodig; probeer opnieuw!",
		"summary.exam":       "Examen klaar: %d/%d goed (%.0f%%)",
		"summary.exampassed": "Examen gehaald!",
		"section.locked":     "vergrendeld",
		"section.active":     "actief",
		"section.completed":  "voltooid",
		"unlock.success":     "Sectie ontgrendeld! %d XP besteed.",
		"unlock.nofunds":     "Niet genoeg XP: ontgrendelen kost %d.",
	},
}
