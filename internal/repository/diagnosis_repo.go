package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, record domain.DiagnosisRecord) error
	GetByID(ctx context.Context, id string) (domain.DiagnosisRecord, error)
	GetLatestBySessionID(ctx context.Context, sessionID string) (domain.DiagnosisRecord, error)
}

type PgDiagnosisRepository struct {
	pool *pgxpool.Pool
}

func NewPgDiagnosisRepository(pool *pgxpool.Pool) *PgDiagnosisRepository {
	return &PgDiagnosisRepository{pool: pool}
}

func (r *PgDiagnosisRepository) Create(ctx context.Context, record domain.DiagnosisRecord) error {
	const query = `
		INSERT INTO diagnoses (id, session_id, catalog_version, cluster, persona_slug, total_score, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshal diagnosis result: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.SessionID,
		record.CatalogVersion,
		string(record.Result.Cluster),
		record.Result.PersonaSlug,
		record.Result.Scores.Total,
		resultJSON,
		record.CreatedAt,
	)
	return err
}

func (r *PgDiagnosisRepository) GetByID(ctx context.Context, id string) (domain.DiagnosisRecord, error) {
	const query = `
		SELECT id, session_id, catalog_version, result, created_at
		FROM diagnoses
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgDiagnosisRepository) GetLatestBySessionID(ctx context.Context, sessionID string) (domain.DiagnosisRecord, error) {
	const query = `
		SELECT id, session_id, catalog_version, result, created_at
		FROM diagnoses
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, sessionID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PgDiagnosisRepository) scanOne(row rowScanner) (domain.DiagnosisRecord, error) {
	var record domain.DiagnosisRecord
	var resultJSON []byte

	if err := row.Scan(
		&record.ID,
		&record.SessionID,
		&record.CatalogVersion,
		&resultJSON,
		&record.CreatedAt,
	); err != nil {
		return domain.DiagnosisRecord{}, err
	}

	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return domain.DiagnosisRecord{}, fmt.Errorf("unmarshal diagnosis result: %w", err)
	}
	return record, nil
}
