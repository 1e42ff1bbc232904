package domain

import "time"

// Cluster is one of the four coarse work-style groupings a respondent is
// assigned to before persona resolution.
type Cluster string

const (
	ClusterChallenge Cluster = "challenge"
	ClusterCreative  Cluster = "creative"
	ClusterSupport   Cluster = "support"
	ClusterStrategy  Cluster = "strategy"
)

// Clusters lists every recognized cluster id, in the order external
// collaborators should present them.
var Clusters = []Cluster{ClusterChallenge, ClusterCreative, ClusterSupport, ClusterStrategy}

// Question is one entry of the versioned questionnaire. Immutable once
// published under a catalog version.
type Question struct {
	Code    string   `json:"code"`
	Prompt  string   `json:"prompt"`
	Choices []Choice `json:"choices"`
}

// Choice is a selectable option of a Question. Weight defaults to 1 when
// zero. The tag map may carry any subset of the factor families.
type Choice struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Weight int    `json:"weight,omitempty"`
	Tags   TagMap `json:"tags,omitempty"`
}

// EffectiveWeight resolves the default weight of 1.
func (c Choice) EffectiveWeight() int {
	if c.Weight <= 0 {
		return 1
	}
	return c.Weight
}

// TagMap holds the factor-family tags attached to a choice.
//
// MBTI letters: E I N T J P.
// WorkStyle: speed improv structured logical careful intuitive.
// Motivation: achieve approval contribution security curiosity autonomy connection growth.
// NG: pressure instant_reply read_between_lines monotony no_autonomy no_change.
// Sync: high_tension natural quiet_hot logical_cool relaxed tsukkomi.
// Agreeableness / Extraversion: "low", "mid" or "high".
// ClusterHint: one of the cluster ids.
type TagMap struct {
	MBTI          []string `json:"mbti,omitempty"`
	WorkStyle     []string `json:"workstyle,omitempty"`
	Motivation    []string `json:"motivation,omitempty"`
	NG            []string `json:"ng,omitempty"`
	Sync          []string `json:"sync,omitempty"`
	Agreeableness string   `json:"agreeableness,omitempty"`
	Extraversion  string   `json:"extraversion,omitempty"`
	ClusterHint   string   `json:"cluster_hint,omitempty"`
}

// Answer is one (question, choice) pair submitted by a respondent.
type Answer struct {
	QuestionCode string `json:"question_code"`
	ChoiceKey    string `json:"choice_key"`
}

// SelectedAnswer pairs a submitted answer with its resolved catalog entries.
type SelectedAnswer struct {
	Answer   Answer   `json:"answer"`
	Question Question `json:"question"`
	Choice   Choice   `json:"choice"`
}

// Counts accumulates choice weights per tag value across one answer set.
// Built fresh per scoring run and never mutated afterwards.
type Counts struct {
	MBTI          map[string]int `json:"mbti"`
	WorkStyle     map[string]int `json:"workstyle"`
	Motivation    map[string]int `json:"motivation"`
	NG            map[string]int `json:"ng"`
	Sync          map[string]int `json:"sync"`
	Agreeableness map[string]int `json:"agreeableness"`
	Extraversion  map[string]int `json:"extraversion"`
	ClusterHint   map[string]int `json:"cluster_hint"`
}

// NewCounts returns an empty Counts with all family maps allocated.
func NewCounts() Counts {
	return Counts{
		MBTI:          make(map[string]int),
		WorkStyle:     make(map[string]int),
		Motivation:    make(map[string]int),
		NG:            make(map[string]int),
		Sync:          make(map[string]int),
		Agreeableness: make(map[string]int),
		Extraversion:  make(map[string]int),
		ClusterHint:   make(map[string]int),
	}
}

// FactorScores holds the six normalized sub-scores plus the capped composite.
type FactorScores struct {
	MBTI       int `json:"mbti"`
	Safety     int `json:"safety"`
	WorkStyle  int `json:"workstyle"`
	Motivation int `json:"motivation"`
	NG         int `json:"ng"`
	Sync       int `json:"sync"`
	Total      int `json:"total"`
}

// DiagnosisResult is the full bundle produced by one scoring run.
type DiagnosisResult struct {
	Counts        Counts          `json:"counts"`
	Selection     []SelectedAnswer `json:"selection"`
	Scores        FactorScores    `json:"scores"`
	ClusterScores map[Cluster]int `json:"cluster_scores"`
	Cluster       Cluster         `json:"cluster"`
	PersonaSlug   string          `json:"persona_slug"`
}

// DiagnosisRecord is a persisted diagnosis outcome tied to a session.
type DiagnosisRecord struct {
	ID             string          `json:"id"`
	SessionID      string          `json:"session_id"`
	CatalogVersion int             `json:"catalog_version"`
	Result         DiagnosisResult `json:"result"`
	CreatedAt      time.Time       `json:"created_at"`
}
