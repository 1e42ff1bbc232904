package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/catalog"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/scoring"
)

type mockDiagnosisRepo struct {
	records     map[string]domain.DiagnosisRecord
	createCount int
	createErr   error
}

func newMockDiagnosisRepo() *mockDiagnosisRepo {
	return &mockDiagnosisRepo{records: make(map[string]domain.DiagnosisRecord)}
}

func (m *mockDiagnosisRepo) Create(_ context.Context, record domain.DiagnosisRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createCount++
	m.records[record.ID] = record
	return nil
}

func (m *mockDiagnosisRepo) GetByID(_ context.Context, id string) (domain.DiagnosisRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return domain.DiagnosisRecord{}, pgx.ErrNoRows
	}
	return record, nil
}

func (m *mockDiagnosisRepo) GetLatestBySessionID(_ context.Context, sessionID string) (domain.DiagnosisRecord, error) {
	for _, record := range m.records {
		if record.SessionID == sessionID {
			return record, nil
		}
	}
	return domain.DiagnosisRecord{}, pgx.ErrNoRows
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func fullAnswerSet(t *testing.T) []domain.Answer {
	t.Helper()
	questions, err := catalog.Dataset(catalog.SupportedVersion)
	if err != nil {
		t.Fatalf("expected catalog to load, got %v", err)
	}
	answers := make([]domain.Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, domain.Answer{QuestionCode: q.Code, ChoiceKey: q.Choices[0].Key})
	}
	return answers
}

func newTestService(t *testing.T, repo *mockDiagnosisRepo, limiter SubmitRateLimiter) *DiagnosisService {
	t.Helper()
	questions, err := catalog.Dataset(catalog.SupportedVersion)
	if err != nil {
		t.Fatalf("expected catalog to load, got %v", err)
	}
	return NewDiagnosisService(scoring.NewEngine(questions), repo, nil, limiter, 0, zap.NewNop())
}

func TestDiagnosePersistsAndCaches(t *testing.T) {
	repo := newMockDiagnosisRepo()
	svc := newTestService(t, repo, nil)
	answers := fullAnswerSet(t)

	record, err := svc.Diagnose(context.Background(), "session-1", answers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.ID == "" || record.SessionID != "session-1" {
		t.Fatalf("unexpected record identity: %+v", record)
	}
	if record.CatalogVersion != catalog.SupportedVersion {
		t.Fatalf("expected catalog version %d, got %d", catalog.SupportedVersion, record.CatalogVersion)
	}
	if repo.createCount != 1 {
		t.Fatalf("expected one persisted record, got %d", repo.createCount)
	}

	// A retake with the same session id is served the stored record.
	again, err := svc.Diagnose(context.Background(), "session-1", answers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if again.ID != record.ID {
		t.Fatalf("expected cached record %s, got %s", record.ID, again.ID)
	}
	if repo.createCount != 1 {
		t.Fatalf("expected no second persist, got %d", repo.createCount)
	}
}

func TestDiagnoseDifferentSessionsGetOwnRecords(t *testing.T) {
	repo := newMockDiagnosisRepo()
	svc := newTestService(t, repo, nil)
	answers := fullAnswerSet(t)

	first, err := svc.Diagnose(context.Background(), "session-a", answers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.Diagnose(context.Background(), "session-b", answers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct records per session")
	}
	if repo.createCount != 2 {
		t.Fatalf("expected two persisted records, got %d", repo.createCount)
	}
}

func TestDiagnoseMissingSession(t *testing.T) {
	svc := newTestService(t, newMockDiagnosisRepo(), nil)

	_, err := svc.Diagnose(context.Background(), "", fullAnswerSet(t))
	if !errors.Is(err, ErrMissingSession) {
		t.Fatalf("expected ErrMissingSession, got %v", err)
	}
}

func TestDiagnoseRateLimited(t *testing.T) {
	svc := newTestService(t, newMockDiagnosisRepo(), denyAllLimiter{})

	_, err := svc.Diagnose(context.Background(), "session-1", fullAnswerSet(t))
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestDiagnoseInvalidAnswersNotPersisted(t *testing.T) {
	repo := newMockDiagnosisRepo()
	svc := newTestService(t, repo, nil)

	_, err := svc.Diagnose(context.Background(), "session-1", nil)
	if !errors.Is(err, scoring.ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	if repo.createCount != 0 {
		t.Fatalf("expected no persisted record, got %d", repo.createCount)
	}
}

func TestMemoryResultCacheExpiry(t *testing.T) {
	cache := NewMemoryResultCache()

	if err := cache.Put("session-1", "record-1", -1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok, _ := cache.Get("session-1"); ok {
		t.Fatalf("expected expired entry to miss")
	}

	if err := cache.Put("session-2", "record-2", time.Hour); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	recordID, ok, err := cache.Get("session-2")
	if err != nil || !ok || recordID != "record-2" {
		t.Fatalf("expected hit with record-2, got %q ok=%v err=%v", recordID, ok, err)
	}
}
