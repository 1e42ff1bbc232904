package catalog

import (
	"errors"
	"fmt"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

// SupportedVersion is the single questionnaire version this build serves.
const SupportedVersion = 1

// ErrUnsupportedVersion indicates a request for a questionnaire version this
// build does not carry. A deployment/config error, not a per-request one.
var ErrUnsupportedVersion = errors.New("unsupported question dataset version")

var questionsByCode = buildIndex(datasetV1)

func buildIndex(qs []domain.Question) map[string]domain.Question {
	idx := make(map[string]domain.Question, len(qs))
	for _, q := range qs {
		idx[q.Code] = q
	}
	return idx
}

// Dataset returns the ordered question list for the given version.
func Dataset(version int) ([]domain.Question, error) {
	if version != SupportedVersion {
		return nil, fmt.Errorf("%w: got %d, supported %d", ErrUnsupportedVersion, version, SupportedVersion)
	}
	return datasetV1, nil
}

// QuestionByCode looks up a single question. The boolean result lets callers
// decide how to treat absent codes instead of forcing an error path.
func QuestionByCode(code string) (domain.Question, bool) {
	q, ok := questionsByCode[code]
	return q, ok
}

// Size is the number of questions in the supported dataset, i.e. the exact
// number of answers a complete submission must contain.
func Size() int {
	return len(datasetV1)
}
