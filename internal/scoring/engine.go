package scoring

import (
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

// Engine composes aggregation, factor scoring, cluster selection and persona
// resolution over a fixed question list. Engines are immutable after
// construction, so one instance serves concurrent requests without locking.
type Engine struct {
	questions []domain.Question
	tables    ScoringTables
	clusters  ClusterTable
	personas  PersonaRuleSet
}

// NewEngine builds an engine over the given question list with the default
// weighting tables.
func NewEngine(questions []domain.Question) *Engine {
	return NewEngineWithTables(questions, DefaultTables(), DefaultClusterTable(), DefaultPersonaRules())
}

// NewEngineWithTables builds an engine with explicit weighting tables, mainly
// for tests that need alternative configurations.
func NewEngineWithTables(questions []domain.Question, tables ScoringTables, clusters ClusterTable, personas PersonaRuleSet) *Engine {
	return &Engine{
		questions: questions,
		tables:    tables,
		clusters:  clusters,
		personas:  personas,
	}
}

// ExpectedAnswerCount is the number of answers a complete submission carries.
func (e *Engine) ExpectedAnswerCount() int {
	return len(e.questions)
}

// Run scores one complete answer set. Pure and deterministic: the same
// answers and seed always produce a bit-identical result. The stable seed
// only influences the persona fallback when no rule matches.
func (e *Engine) Run(answers []domain.Answer, stableSeed string) (domain.DiagnosisResult, error) {
	selection, counts, err := Aggregate(e.questions, answers)
	if err != nil {
		return domain.DiagnosisResult{}, err
	}

	scores := Score(selection, counts, e.tables)
	clusterScores := ClusterScores(counts, e.clusters)
	cluster := SelectCluster(counts, e.clusters)

	persona, err := ResolvePersona(cluster, counts, stableSeed, e.personas)
	if err != nil {
		return domain.DiagnosisResult{}, err
	}

	return domain.DiagnosisResult{
		Counts:        counts,
		Selection:     selection,
		Scores:        scores,
		ClusterScores: clusterScores,
		Cluster:       cluster,
		PersonaSlug:   persona,
	}, nil
}
