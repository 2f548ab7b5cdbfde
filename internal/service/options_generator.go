package service

import (
	"math/rand"
	"time"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

// maxOptions is the number of choices offered per question when the glossary is large enough.
const maxOptions = 4

// OptionGenerator generates multiple choice options for quiz questions.
type OptionGenerator struct {
	rng *rand.Rand
}

// NewOptionGenerator creates a new option generator. A nil rng is replaced
// with a time-seeded source.
func NewOptionGenerator(rng *rand.Rand) *OptionGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &OptionGenerator{rng: rng}
}

// GenerateOptions returns up to 4 distinct options including answer, in random
// order, and the index of answer among them. Distractors are drawn from terms
// without replacement; answer itself is never used as a distractor.
func (g *OptionGenerator) GenerateOptions(answer entities.Term, terms []entities.Term) ([]entities.Term, int) {
	distractors := g.sampleDistractors(answer, terms, maxOptions-1)

	options := make([]entities.Term, 0, 1+len(distractors))
	options = append(options, answer)
	options = append(options, distractors...)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == answer {
			correctIndex = i
			break
		}
	}

	return options, correctIndex
}

// sampleDistractors draws min(count, |candidates|) distinct terms other than answer.
func (g *OptionGenerator) sampleDistractors(answer entities.Term, terms []entities.Term, count int) []entities.Term {
	seen := map[entities.Term]bool{answer: true}
	candidates := make([]entities.Term, 0, len(terms))
	for _, t := range terms {
		if seen[t] {
			continue
		}
		seen[t] = true
		candidates = append(candidates, t)
	}

	if len(candidates) <= count {
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		return candidates
	}

	// Partial Fisher-Yates: only the first count slots are needed.
	for i := 0; i < count; i++ {
		j := i + g.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:count]
}
