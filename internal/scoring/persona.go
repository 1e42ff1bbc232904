package scoring

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

// ErrNoPersonaCandidates indicates an empty persona list for a cluster.
// A configuration error, not a runtime input error.
var ErrNoPersonaCandidates = errors.New("no persona candidates for cluster")

// PersonaRule pairs a persona slug with the predicate that claims it.
// Predicates are pure functions of the aggregated counts.
type PersonaRule struct {
	Slug    string
	Matches func(domain.Counts) bool
}

// PersonaRuleSet holds, per cluster, the ordered rule list and the full
// persona pool the seeded fallback draws from. Rules win in order: the first
// matching predicate decides.
type PersonaRuleSet map[domain.Cluster]struct {
	Rules []PersonaRule
	Pool  []string
}

// DefaultPersonaRules returns the published v1 persona mapping.
func DefaultPersonaRules() PersonaRuleSet {
	return PersonaRuleSet{
		domain.ClusterChallenge: {
			Rules: []PersonaRule{
				{Slug: "oda", Matches: func(c domain.Counts) bool {
					return c.WorkStyle["speed"] >= 2 && c.Motivation["achieve"] >= 2 && c.Sync["high_tension"] >= 2
				}},
				{Slug: "hideyoshi", Matches: func(c domain.Counts) bool {
					return c.WorkStyle["improv"] >= 2 && c.Motivation["connection"] >= 1
				}},
				{Slug: "ryoma", Matches: func(c domain.Counts) bool {
					return c.Motivation["autonomy"] >= 2 && c.MBTI["E"] >= 2
				}},
			},
			Pool: []string{"oda", "hideyoshi", "ryoma"},
		},
		domain.ClusterCreative: {
			Rules: []PersonaRule{
				{Slug: "hokusai", Matches: func(c domain.Counts) bool {
					return c.WorkStyle["intuitive"] >= 2 && c.Motivation["curiosity"] >= 2
				}},
				{Slug: "zeami", Matches: func(c domain.Counts) bool {
					return c.Sync["quiet_hot"] >= 2 && c.Motivation["growth"] >= 1
				}},
				{Slug: "murasaki", Matches: func(c domain.Counts) bool {
					return c.MBTI["I"] >= 2 && c.MBTI["N"] >= 2
				}},
			},
			Pool: []string{"hokusai", "zeami", "murasaki"},
		},
		domain.ClusterSupport: {
			Rules: []PersonaRule{
				{Slug: "kenshin", Matches: func(c domain.Counts) bool {
					return c.Motivation["contribution"] >= 2 && c.Sync["natural"] >= 1
				}},
				{Slug: "ninomiya", Matches: func(c domain.Counts) bool {
					return c.WorkStyle["careful"] >= 2 && c.Motivation["contribution"] >= 1
				}},
				{Slug: "saigo", Matches: func(c domain.Counts) bool {
					return c.Motivation["connection"] >= 2 && c.MBTI["E"] >= 2
				}},
			},
			Pool: []string{"kenshin", "ninomiya", "saigo"},
		},
		domain.ClusterStrategy: {
			Rules: []PersonaRule{
				{Slug: "ieyasu", Matches: func(c domain.Counts) bool {
					return c.Motivation["security"] >= 2 && c.WorkStyle["structured"] >= 2
				}},
				{Slug: "kanbei", Matches: func(c domain.Counts) bool {
					return c.WorkStyle["logical"] >= 2 && c.MBTI["T"] >= 2
				}},
				{Slug: "shingen", Matches: func(c domain.Counts) bool {
					return c.MBTI["J"] >= 2 && c.Sync["logical_cool"] >= 1
				}},
			},
			Pool: []string{"ieyasu", "kanbei", "shingen"},
		},
	}
}

// ResolvePersona picks the persona for a cluster: first matching rule wins,
// otherwise a stable pseudo-random draw over the cluster's pool keyed by the
// caller-supplied seed. The same seed and counts always land on the same slug.
func ResolvePersona(cluster domain.Cluster, counts domain.Counts, stableSeed string, rules PersonaRuleSet) (string, error) {
	entry := rules[cluster]
	if len(entry.Pool) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoPersonaCandidates, cluster)
	}

	for _, rule := range entry.Rules {
		if rule.Matches(counts) {
			return rule.Slug, nil
		}
	}

	rng := newXorshift32(seedFromString(stableSeed))
	idx := int(rng.Float64() * float64(len(entry.Pool)))
	if idx >= len(entry.Pool) {
		idx = len(entry.Pool) - 1
	}
	return entry.Pool[idx], nil
}

// seedFromString folds a seed string into a nonzero 32-bit xorshift state:
// SHA-256 digest, first four bytes big-endian. The digest choice and byte
// extraction are a compatibility contract; changing either reshuffles every
// respondent's fallback persona.
func seedFromString(s string) uint32 {
	sum := sha256.Sum256([]byte(s))
	seed := binary.BigEndian.Uint32(sum[:4])
	if seed == 0 {
		seed = 1
	}
	return seed
}

// xorshift32 is the 13/17/5 Marsaglia generator. The constants are part of
// the persona fallback contract.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	return &xorshift32{state: seed}
}

func (x *xorshift32) Next() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// Float64 returns the next output scaled into [0, 1).
func (x *xorshift32) Float64() float64 {
	return float64(x.Next()) / (1 << 32)
}
