// Package quizgen builds multiple-choice quizzes and free-text exams from
// the vocabulary catalog.
package quizgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nebrasmahmood/dutch-learning-app/internal/catalog"
)

// Generator produces quiz and exam question sets. Output order is
// randomized per call; there is no persisted seed, so regenerating yields
// a different set. Resume logic persists the realized question-id sequence
// instead.
type Generator struct {
	cat *catalog.Catalog
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. rng may be nil, in which case a time-seeded
// source is used; tests inject a fixed-seed source for determinism.
func New(cat *catalog.Catalog, cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cat: cat, cfg: cfg, rng: rng}
}

// Config returns the generator's settings.
func (g *Generator) Config() Config {
	return g.cfg
}

// CanQuiz reports whether a section has enough items to generate a quiz.
func (g *Generator) CanQuiz(section catalog.Section) bool {
	return len(section.Items) >= g.cfg.MinItemsForQuiz
}

// Quiz generates a multiple-choice question set for one section. Sections
// below the minimum item count return an empty slice; the caller reports
// the section as unavailable rather than failing.
func (g *Generator) Quiz(section catalog.Section) []Question {
	if !g.CanQuiz(section) {
		return nil
	}

	selected := g.shuffledItems(section.Items)
	if len(selected) > g.cfg.QuestionsPerQuiz {
		selected = selected[:g.cfg.QuestionsPerQuiz]
	}

	questions := make([]Question, 0, len(selected))
	for _, item := range selected {
		questions = append(questions, g.buildQuestion(section, item))
	}
	return questions
}

// QuizForIDs rebuilds questions for a previously realized id order, used
// when resuming a saved session. Unknown ids are skipped.
func (g *Generator) QuizForIDs(section catalog.Section, ids []string) []Question {
	byID := make(map[string]catalog.Item, len(section.Items))
	for _, it := range section.Items {
		byID[it.ID] = it
	}

	questions := make([]Question, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			continue
		}
		questions = append(questions, g.buildQuestion(section, item))
	}
	return questions
}

// Exam samples free-text questions from the pooled items of every section.
func (g *Generator) Exam() []ExamQuestion {
	pool := g.shuffledItems(g.cat.AllItems())
	if len(pool) > g.cfg.ExamQuestions {
		pool = pool[:g.cfg.ExamQuestions]
	}

	questions := make([]ExamQuestion, 0, len(pool))
	for _, item := range pool {
		questions = append(questions, ExamQuestion{
			ID:            item.ID,
			Prompt:        fmt.Sprintf("What is %q in Dutch?", item.English),
			CorrectAnswer: item.Dutch,
		})
	}
	return questions
}

// buildQuestion assembles one question: the correct answer plus up to
// three distractors, deduplicated by answer text and shuffled.
func (g *Generator) buildQuestion(section catalog.Section, item catalog.Item) Question {
	needed := g.cfg.OptionsPerQuestion - 1
	wrong := g.sameSectionDistractors(section, item, needed)
	if len(wrong) < needed {
		wrong = append(wrong, g.backfillDistractors(section, item, wrong, needed-len(wrong))...)
	}

	options := dedupe(append([]string{item.Dutch}, wrong...))
	if len(options) > g.cfg.OptionsPerQuestion {
		options = options[:g.cfg.OptionsPerQuestion]
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		ID:            item.ID,
		Prompt:        item.English,
		CorrectAnswer: item.Dutch,
		Options:       options,
	}
}

// sameSectionDistractors picks up to n wrong answers from the item's own
// section, excluding the item itself and any word equal to the answer.
func (g *Generator) sameSectionDistractors(section catalog.Section, item catalog.Item, n int) []string {
	var candidates []string
	for _, other := range section.Items {
		if other.ID == item.ID || other.Dutch == item.Dutch {
			continue
		}
		candidates = append(candidates, other.Dutch)
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// backfillDistractors draws up to n additional wrong answers from all other
// sections, excluding the correct answer and words already chosen. Returns
// fewer than n when the pool is exhausted.
func (g *Generator) backfillDistractors(section catalog.Section, item catalog.Item, chosen []string, n int) []string {
	taken := make(map[string]bool, len(chosen)+1)
	taken[item.Dutch] = true
	for _, w := range chosen {
		taken[w] = true
	}

	var candidates []string
	for _, s := range g.cat.Sections() {
		if s.ID == section.ID {
			continue
		}
		for _, other := range s.Items {
			if taken[other.Dutch] {
				continue
			}
			taken[other.Dutch] = true
			candidates = append(candidates, other.Dutch)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// shuffledItems returns a shuffled copy of items.
func (g *Generator) shuffledItems(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(items))
	copy(out, items)
	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// dedupe removes duplicate strings preserving first occurrence.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
