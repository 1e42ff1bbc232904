package scoring

import (
	"errors"
	"fmt"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

// ErrInvalidShape indicates a malformed answer set: wrong count, duplicate
// question, or a reference to an unknown question or choice. Always a caller
// contract violation, never retried internally.
var ErrInvalidShape = errors.New("invalid answer set")

// Aggregate validates a complete answer set against the given question list
// and reduces it to per-tag weighted counts. A valid set contains exactly one
// answer for a question of the list, one list entry per answer, no
// duplicates. Pure function: no state is touched outside the return values.
func Aggregate(questions []domain.Question, answers []domain.Answer) ([]domain.SelectedAnswer, domain.Counts, error) {
	if len(answers) != len(questions) {
		return nil, domain.Counts{}, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidShape, len(questions), len(answers))
	}

	byCode := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byCode[q.Code] = q
	}

	selection := make([]domain.SelectedAnswer, 0, len(answers))
	counts := domain.NewCounts()
	seen := make(map[string]bool, len(answers))

	for _, a := range answers {
		if a.QuestionCode == "" || a.ChoiceKey == "" {
			return nil, domain.Counts{}, fmt.Errorf("%w: answer missing question code or choice key", ErrInvalidShape)
		}
		q, ok := byCode[a.QuestionCode]
		if !ok {
			return nil, domain.Counts{}, fmt.Errorf("%w: unknown question %q", ErrInvalidShape, a.QuestionCode)
		}
		if seen[a.QuestionCode] {
			return nil, domain.Counts{}, fmt.Errorf("%w: duplicate answer for question %q", ErrInvalidShape, a.QuestionCode)
		}
		seen[a.QuestionCode] = true

		choice, ok := findChoice(q, a.ChoiceKey)
		if !ok {
			return nil, domain.Counts{}, fmt.Errorf("%w: unknown choice %q for question %q", ErrInvalidShape, a.ChoiceKey, a.QuestionCode)
		}

		selection = append(selection, domain.SelectedAnswer{Answer: a, Question: q, Choice: choice})
		addChoice(&counts, choice)
	}

	return selection, counts, nil
}

func findChoice(q domain.Question, key string) (domain.Choice, bool) {
	for _, c := range q.Choices {
		if c.Key == key {
			return c, true
		}
	}
	return domain.Choice{}, false
}

func addChoice(counts *domain.Counts, c domain.Choice) {
	w := c.EffectiveWeight()
	for _, tag := range c.Tags.MBTI {
		counts.MBTI[tag] += w
	}
	for _, tag := range c.Tags.WorkStyle {
		counts.WorkStyle[tag] += w
	}
	for _, tag := range c.Tags.Motivation {
		counts.Motivation[tag] += w
	}
	for _, tag := range c.Tags.NG {
		counts.NG[tag] += w
	}
	for _, tag := range c.Tags.Sync {
		counts.Sync[tag] += w
	}
	if c.Tags.Agreeableness != "" {
		counts.Agreeableness[c.Tags.Agreeableness] += w
	}
	if c.Tags.Extraversion != "" {
		counts.Extraversion[c.Tags.Extraversion] += w
	}
	if c.Tags.ClusterHint != "" {
		counts.ClusterHint[c.Tags.ClusterHint] += w
	}
}
