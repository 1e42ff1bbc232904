package scoring

import (
	"sort"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

// ClusterProfile names the tags whose counts feed one cluster's score, plus
// the tag sets the tie-break cascade consults for that cluster.
type ClusterProfile struct {
	MBTI              []string
	WorkStyle         []string
	Motivation        []string
	Sync              []string
	PrimaryMotivation string
}

// ClusterTable maps every cluster to its weighting profile.
type ClusterTable map[domain.Cluster]ClusterProfile

// DefaultClusterTable returns the published v1 cluster weighting.
func DefaultClusterTable() ClusterTable {
	return ClusterTable{
		domain.ClusterChallenge: {
			MBTI:              []string{"E", "N", "P"},
			WorkStyle:         []string{"speed", "improv"},
			Motivation:        []string{"achieve", "autonomy"},
			Sync:              []string{"high_tension", "tsukkomi"},
			PrimaryMotivation: "achieve",
		},
		domain.ClusterCreative: {
			MBTI:              []string{"N", "P"},
			WorkStyle:         []string{"intuitive", "improv"},
			Motivation:        []string{"curiosity", "growth"},
			Sync:              []string{"quiet_hot", "natural"},
			PrimaryMotivation: "growth",
		},
		domain.ClusterSupport: {
			MBTI:              []string{"E", "J"},
			WorkStyle:         []string{"careful"},
			Motivation:        []string{"contribution", "connection"},
			Sync:              []string{"relaxed", "natural"},
			PrimaryMotivation: "contribution",
		},
		domain.ClusterStrategy: {
			MBTI:              []string{"I", "T", "J"},
			WorkStyle:         []string{"structured", "logical"},
			Motivation:        []string{"security", "approval"},
			Sync:              []string{"logical_cool"},
			PrimaryMotivation: "security",
		},
	}
}

// contenderMargin is the absolute distance from the top score within which a
// cluster still counts as a genuine contender. Keeps near-equal raw scores
// from being decided by a single stray tag.
const contenderMargin = 2

// ClusterScores computes the additive score of every cluster from tag counts.
func ClusterScores(counts domain.Counts, table ClusterTable) map[domain.Cluster]int {
	scores := make(map[domain.Cluster]int, len(table))
	for cluster, profile := range table {
		s := 0
		for _, tag := range profile.MBTI {
			s += counts.MBTI[tag]
		}
		for _, tag := range profile.WorkStyle {
			s += counts.WorkStyle[tag]
		}
		for _, tag := range profile.Motivation {
			s += counts.Motivation[tag]
		}
		for _, tag := range profile.Sync {
			s += counts.Sync[tag]
		}
		s += counts.ClusterHint[string(cluster)]
		scores[cluster] = s
	}
	return scores
}

// SelectCluster resolves the winning cluster. Contenders within the margin of
// the top score go through the tie-break cascade: primary motivation, then
// sync, workstyle and MBTI affinity, each quartered. A full tie after all
// stages resolves to the alphabetically first contender so the outcome never
// depends on map iteration order.
func SelectCluster(counts domain.Counts, table ClusterTable) domain.Cluster {
	scores := ClusterScores(counts, table)

	ids := make([]domain.Cluster, 0, len(scores))
	for cluster := range scores {
		ids = append(ids, cluster)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	top := scores[ids[0]]
	for _, cluster := range ids {
		if scores[cluster] > top {
			top = scores[cluster]
		}
	}

	contenders := make([]domain.Cluster, 0, len(ids))
	for _, cluster := range ids {
		if top-scores[cluster] <= contenderMargin {
			contenders = append(contenders, cluster)
		}
	}
	if len(contenders) == 1 {
		return contenders[0]
	}

	breakers := []func(domain.Cluster) float64{
		func(c domain.Cluster) float64 {
			return float64(counts.Motivation[table[c].PrimaryMotivation]) / 4
		},
		func(c domain.Cluster) float64 {
			return float64(sumTags(counts.Sync, table[c].Sync)) / 4
		},
		func(c domain.Cluster) float64 {
			return float64(sumTags(counts.WorkStyle, table[c].WorkStyle)) / 4
		},
		func(c domain.Cluster) float64 {
			return float64(sumTags(counts.MBTI, table[c].MBTI)) / 4
		},
	}

	for _, breaker := range breakers {
		best := breaker(contenders[0])
		for _, cluster := range contenders[1:] {
			if v := breaker(cluster); v > best {
				best = v
			}
		}
		next := contenders[:0]
		for _, cluster := range contenders {
			if breaker(cluster) == best {
				next = append(next, cluster)
			}
		}
		contenders = next
		if len(contenders) == 1 {
			return contenders[0]
		}
	}

	// Contenders are kept in lexical order throughout the cascade.
	return contenders[0]
}

func sumTags(counts map[string]int, tags []string) int {
	s := 0
	for _, tag := range tags {
		s += counts[tag]
	}
	return s
}
