package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/catalog"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/repository"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/scoring"
)

var (
	ErrTooManyAttempts = errors.New("too many diagnosis attempts")
	ErrMissingSession  = errors.New("session id is required")
)

// DiagnosisService wraps the scoring engine with persistence, the
// session-keyed result cache and the submit rate limiter. The session id
// doubles as the engine's stable seed, which is what makes retakes land on
// the same persona.
type DiagnosisService struct {
	engine  *scoring.Engine
	records repository.DiagnosisRepository
	cache   ResultCache
	limiter SubmitRateLimiter
	cacheTTL time.Duration
	logger  *zap.Logger
}

func NewDiagnosisService(
	engine *scoring.Engine,
	records repository.DiagnosisRepository,
	cache ResultCache,
	limiter SubmitRateLimiter,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DiagnosisService {
	if cache == nil {
		cache = NewMemoryResultCache()
	}
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &DiagnosisService{
		engine:   engine,
		records:  records,
		cache:    cache,
		limiter:  limiter,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Diagnose scores one submission. A session that already holds a cached
// record gets that record back unchanged; otherwise the engine runs, the
// outcome is persisted and the session is bound to it.
func (s *DiagnosisService) Diagnose(ctx context.Context, sessionID string, answers []domain.Answer) (domain.DiagnosisRecord, error) {
	if sessionID == "" {
		return domain.DiagnosisRecord{}, ErrMissingSession
	}
	if s.limiter != nil && !s.limiter.Allow(sessionID) {
		return domain.DiagnosisRecord{}, fmt.Errorf("%w: session %s", ErrTooManyAttempts, sessionID)
	}

	if recordID, ok, err := s.cache.Get(sessionID); err != nil {
		s.logger.Warn("result cache lookup failed", zap.Error(err), zap.String("session_id", sessionID))
	} else if ok {
		record, err := s.records.GetByID(ctx, recordID)
		if err == nil {
			return record, nil
		}
		s.logger.Warn("cached record not found, rescoring", zap.Error(err), zap.String("record_id", recordID))
	}

	result, err := s.engine.Run(answers, sessionID)
	if err != nil {
		return domain.DiagnosisRecord{}, err
	}

	record := domain.DiagnosisRecord{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		CatalogVersion: catalog.SupportedVersion,
		Result:         result,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.records.Create(ctx, record); err != nil {
		return domain.DiagnosisRecord{}, fmt.Errorf("persist diagnosis: %w", err)
	}
	if err := s.cache.Put(sessionID, record.ID, s.cacheTTL); err != nil {
		s.logger.Warn("result cache put failed", zap.Error(err), zap.String("session_id", sessionID))
	}

	s.logger.Info("diagnosis completed",
		zap.String("session_id", sessionID),
		zap.String("cluster", string(record.Result.Cluster)),
		zap.String("persona", record.Result.PersonaSlug),
		zap.Int("total", record.Result.Scores.Total),
	)
	return record, nil
}

// GetByID loads a stored diagnosis record.
func (s *DiagnosisService) GetByID(ctx context.Context, id string) (domain.DiagnosisRecord, error) {
	return s.records.GetByID(ctx, id)
}
