package scoring

import (
	"math"
	"sort"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

// MBTIScore rewards balanced observations on each opposed dimension pair.
// balance = 1 - |pos-neg|/(pos+neg), 0 when a pair has no observations.
func MBTIScore(counts domain.Counts, t ScoringTables) int {
	var sum float64
	for _, pair := range t.MBTIPairs {
		pos := counts.MBTI[pair.Pos]
		neg := counts.MBTI[pair.Neg]
		total := pos + neg
		if total == 0 {
			continue
		}
		balance := 1 - math.Abs(float64(pos-neg))/float64(total)
		sum += float64(pair.Weight) * balance
	}
	return int(math.Round(sum))
}

// SafetyScore normalizes raw matrix points against the per-question maximum
// over the safety question subset, scaled to the safety ceiling.
func SafetyScore(selection []domain.SelectedAnswer, t ScoringTables) int {
	raw := 0
	max := 0
	for _, sel := range selection {
		if !t.SafetyQuestions[sel.Question.Code] {
			continue
		}
		raw += safetyValue(sel.Choice, t) * sel.Choice.EffectiveWeight()

		best := 0
		for _, c := range sel.Question.Choices {
			if v := safetyValue(c, t) * c.EffectiveWeight(); v > best {
				best = v
			}
		}
		max += best
	}
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(max) * float64(t.SafetyCeiling)))
}

func safetyValue(c domain.Choice, t ScoringTables) int {
	agree := c.Tags.Agreeableness
	if agree == "" {
		agree = "mid"
	}
	extra := c.Tags.Extraversion
	if extra == "" {
		extra = "mid"
	}
	row, ok := t.SafetyMatrix[agree]
	if !ok {
		return 8
	}
	v, ok := row[extra]
	if !ok {
		return 8
	}
	return v
}

// WorkstyleScore applies the same raw/max normalization over the workstyle
// question subset using the tag weight table.
func WorkstyleScore(selection []domain.SelectedAnswer, t ScoringTables) int {
	raw := 0
	max := 0
	for _, sel := range selection {
		if !t.WorkstyleQuestions[sel.Question.Code] {
			continue
		}
		raw += workstyleValue(sel.Choice, t) * sel.Choice.EffectiveWeight()

		best := 0
		for _, c := range sel.Question.Choices {
			if v := workstyleValue(c, t) * c.EffectiveWeight(); v > best {
				best = v
			}
		}
		max += best
	}
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(max) * float64(t.WorkstyleCeiling)))
}

func workstyleValue(c domain.Choice, t ScoringTables) int {
	v := 0
	for _, tag := range c.Tags.WorkStyle {
		v += t.WorkstyleWeights[tag]
	}
	return v
}

// MotivationScore ranks the motivation tag totals and combines the top three
// with decaying weights, capped at the motivation ceiling. Rank ties are
// broken by tag name so the result never depends on map iteration order.
func MotivationScore(counts domain.Counts, t ScoringTables) int {
	type entry struct {
		tag   string
		count int
	}
	entries := make([]entry, 0, len(counts.Motivation))
	for tag, c := range counts.Motivation {
		entries = append(entries, entry{tag: tag, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].tag < entries[j].tag
	})

	top3 := [3]float64{}
	for i := 0; i < 3 && i < len(entries); i++ {
		top3[i] = float64(entries[i].count)
	}
	score := top3[0]/4*15 + top3[1]/4*6 + top3[2]/4*3
	if ceiling := float64(t.MotivationCeiling); score > ceiling {
		score = ceiling
	}
	return int(math.Round(score))
}

// NGScore combines a breadth term (distinct NG categories hit) with an
// intensity term (total hits). No NG observations means default risk
// sensitivity: the flat baseline.
func NGScore(counts domain.Counts, t ScoringTables) int {
	total := 0
	distinct := 0
	for _, c := range counts.NG {
		if c <= 0 {
			continue
		}
		total += c
		distinct++
	}
	if total == 0 {
		return t.NGBaseline
	}
	breadth := float64(distinct) / float64(t.NGCategoryCount) * 10
	intensity := math.Min(5, float64(total))
	return int(math.Round(breadth + intensity))
}

// SyncScore combines the strongest sync category with a diversity term,
// capped at the sync ceiling. No observations yields the baseline.
func SyncScore(counts domain.Counts, t ScoringTables) int {
	best := 0
	distinct := 0
	observed := 0
	for _, c := range counts.Sync {
		if c <= 0 {
			continue
		}
		observed += c
		distinct++
		if c > best {
			best = c
		}
	}
	if observed == 0 {
		return t.SyncBaseline
	}
	primary := float64(best) / 4 * 10
	diversity := math.Min(5, float64(distinct)/float64(t.SyncCategoryCount)*5)
	score := primary + diversity
	if ceiling := float64(t.SyncCeiling); score > ceiling {
		score = ceiling
	}
	return int(math.Round(score))
}

// Score runs all six factor scorers and assembles the capped composite.
func Score(selection []domain.SelectedAnswer, counts domain.Counts, t ScoringTables) domain.FactorScores {
	s := domain.FactorScores{
		MBTI:       MBTIScore(counts, t),
		Safety:     SafetyScore(selection, t),
		WorkStyle:  WorkstyleScore(selection, t),
		Motivation: MotivationScore(counts, t),
		NG:         NGScore(counts, t),
		Sync:       SyncScore(counts, t),
	}
	total := s.MBTI + s.Safety + s.WorkStyle + s.Motivation + s.NG + s.Sync
	if total > t.TotalCeiling {
		total = t.TotalCeiling
	}
	s.Total = total
	return s
}
