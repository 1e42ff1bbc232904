package scoring

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/catalog"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

func catalogEngine(t *testing.T) *Engine {
	t.Helper()
	questions, err := catalog.Dataset(catalog.SupportedVersion)
	if err != nil {
		t.Fatalf("expected catalog to load, got %v", err)
	}
	return NewEngine(questions)
}

// answerSet builds a complete submission: choice "b" everywhere, overridden
// per question code where the scenario needs it.
func answerSet(t *testing.T, overrides map[string]string) []domain.Answer {
	t.Helper()
	questions, err := catalog.Dataset(catalog.SupportedVersion)
	if err != nil {
		t.Fatalf("expected catalog to load, got %v", err)
	}
	answers := make([]domain.Answer, 0, len(questions))
	for _, q := range questions {
		key := "b"
		if k, ok := overrides[q.Code]; ok {
			key = k
		}
		answers = append(answers, domain.Answer{QuestionCode: q.Code, ChoiceKey: key})
	}
	return answers
}

func TestRunDeterministic(t *testing.T) {
	engine := catalogEngine(t)
	answers := answerSet(t, map[string]string{"Q1": "a", "Q7": "a", "Q10": "e"})

	first, err := engine.Run(answers, "session-determinism")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := engine.Run(answers, "session-determinism")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected bit-identical results for identical input")
	}
}

func TestRunChallengeOdaScenario(t *testing.T) {
	engine := catalogEngine(t)

	// Every "a" choice leans hard into speed, achieve and high_tension.
	overrides := make(map[string]string)
	for _, code := range []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10", "Q11", "Q12"} {
		overrides[code] = "a"
	}
	answers := answerSet(t, overrides)

	result, err := engine.Run(answers, "session-oda")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Cluster != domain.ClusterChallenge {
		t.Fatalf("expected cluster challenge, got %s (scores %v)", result.Cluster, result.ClusterScores)
	}
	if result.PersonaSlug != "oda" {
		t.Fatalf("expected persona oda, got %s", result.PersonaSlug)
	}
	if result.Counts.WorkStyle["speed"] < 2 || result.Counts.Motivation["achieve"] < 2 || result.Counts.Sync["high_tension"] < 2 {
		t.Fatalf("expected oda thresholds met, got counts %+v", result.Counts)
	}
}

func TestRunRuleMatchedPersonaIgnoresSeed(t *testing.T) {
	engine := catalogEngine(t)
	overrides := make(map[string]string)
	for _, code := range []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10", "Q11", "Q12"} {
		overrides[code] = "a"
	}
	answers := answerSet(t, overrides)

	first, err := engine.Run(answers, "seed-one")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := engine.Run(answers, "seed-two")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.PersonaSlug != "oda" || second.PersonaSlug != "oda" {
		t.Fatalf("expected rule-matched persona regardless of seed, got %s and %s", first.PersonaSlug, second.PersonaSlug)
	}
}

func TestRunNeutralBaselines(t *testing.T) {
	engine := catalogEngine(t)
	answers := answerSet(t, map[string]string{"Q11": "g", "Q12": "g"})

	result, err := engine.Run(answers, "session-neutral")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Scores.NG != 5 {
		t.Fatalf("expected ngScore baseline 5, got %d", result.Scores.NG)
	}
	if result.Scores.Sync != 5 {
		t.Fatalf("expected syncScore baseline 5, got %d", result.Scores.Sync)
	}
}

func TestRunInvalidShape(t *testing.T) {
	engine := catalogEngine(t)
	answers := answerSet(t, nil)

	_, err := engine.Run(answers[:len(answers)-1], "session-short")
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for short set, got %v", err)
	}

	answers[0] = answers[1]
	_, err = engine.Run(answers, "session-dup")
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for duplicate question, got %v", err)
	}
}

func TestRunRandomizedProperties(t *testing.T) {
	engine := catalogEngine(t)
	questions, err := catalog.Dataset(catalog.SupportedVersion)
	if err != nil {
		t.Fatalf("expected catalog to load, got %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	seenClusters := make(map[domain.Cluster]int)
	known := map[domain.Cluster]bool{
		domain.ClusterChallenge: true,
		domain.ClusterCreative:  true,
		domain.ClusterSupport:   true,
		domain.ClusterStrategy:  true,
	}

	for i := 0; i < 3000; i++ {
		answers := make([]domain.Answer, 0, len(questions))
		for _, q := range questions {
			choice := q.Choices[rng.Intn(len(q.Choices))]
			answers = append(answers, domain.Answer{QuestionCode: q.Code, ChoiceKey: choice.Key})
		}

		result, err := engine.Run(answers, fmt.Sprintf("session-%d", i))
		if err != nil {
			t.Fatalf("expected no error on valid random set %d, got %v", i, err)
		}
		if result.Scores.Total < 0 || result.Scores.Total > 100 {
			t.Fatalf("expected total in [0,100], got %d", result.Scores.Total)
		}
		if !known[result.Cluster] {
			t.Fatalf("unexpected cluster %s", result.Cluster)
		}
		if result.PersonaSlug == "" {
			t.Fatalf("expected a persona slug on run %d", i)
		}
		seenClusters[result.Cluster]++
	}

	for cluster := range known {
		if seenClusters[cluster] == 0 {
			t.Fatalf("cluster %s unreachable under random input: %v", cluster, seenClusters)
		}
	}
}
