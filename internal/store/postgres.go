package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/Kleo12345/lead-scoring-system/internal/db"
	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool. Used by tests.
func NewPostgresWithPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS scored_leads (
	id              TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	business_name   TEXT NOT NULL,
	email           TEXT,
	phone           TEXT,
	website         TEXT,
	city            TEXT,
	size_category   TEXT NOT NULL,
	total_score     INTEGER NOT NULL,
	tier            TEXT NOT NULL,
	estimated_value TEXT,
	needs_redesign  BOOLEAN NOT NULL DEFAULT false,
	needs_reviews   BOOLEAN NOT NULL DEFAULT false,
	scored_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_scored_leads_tier ON scored_leads(tier);
CREATE INDEX IF NOT EXISTS idx_scored_leads_total_score ON scored_leads(total_score DESC);
CREATE INDEX IF NOT EXISTS idx_scored_leads_business_name ON scored_leads(business_name);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

var leadColumns = []string{
	"id", "business_name", "email", "phone", "website", "city", "size_category",
	"total_score", "tier", "estimated_value", "needs_redesign", "needs_reviews", "scored_at",
}

func (s *PostgresStore) SaveLeads(ctx context.Context, leads []model.ScoredLead) error {
	rows := make([][]any, 0, len(leads))
	for _, lead := range leads {
		id := lead.ID
		if id == "" {
			id = uuid.New().String()
		}
		rows = append(rows, []any{
			id, lead.BusinessName, lead.Email, lead.Phone, lead.Website, lead.City,
			string(lead.SizeCategory), lead.TotalScore, lead.Tier, lead.EstimatedValue,
			lead.NeedsRedesign, lead.NeedsReviews, lead.ScoredAt,
		})
	}

	_, err := db.CopyFrom(ctx, s.pool, "scored_leads", leadColumns, rows)
	return eris.Wrap(err, "postgres: save leads")
}

func (s *PostgresStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.ScoredLead, error) {
	query := `SELECT id, business_name, email, phone, website, city, size_category,
	                 total_score, tier, estimated_value, needs_redesign, needs_reviews, scored_at
	          FROM scored_leads WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Tier != "" {
		query += fmt.Sprintf(` AND tier = $%d`, argIdx)
		args = append(args, filter.Tier)
		argIdx++
	}
	if filter.MinScore > 0 {
		query += fmt.Sprintf(` AND total_score >= $%d`, argIdx)
		args = append(args, filter.MinScore)
		argIdx++
	}
	query += ` ORDER BY total_score DESC, business_name ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list leads")
	}
	defer rows.Close()

	var leads []model.ScoredLead
	for rows.Next() {
		var lead model.ScoredLead
		var sizeCategory string
		if err := rows.Scan(&lead.ID, &lead.BusinessName, &lead.Email, &lead.Phone,
			&lead.Website, &lead.City, &sizeCategory, &lead.TotalScore, &lead.Tier,
			&lead.EstimatedValue, &lead.NeedsRedesign, &lead.NeedsReviews, &lead.ScoredAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan lead")
		}
		lead.SizeCategory = model.SizeCategory(sizeCategory)
		leads = append(leads, lead)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: list leads iterate")
}

func (s *PostgresStore) GetLead(ctx context.Context, id string) (*model.ScoredLead, error) {
	var lead model.ScoredLead
	var sizeCategory string

	err := s.pool.QueryRow(ctx,
		`SELECT id, business_name, email, phone, website, city, size_category,
		        total_score, tier, estimated_value, needs_redesign, needs_reviews, scored_at
		 FROM scored_leads WHERE id = $1`,
		id,
	).Scan(&lead.ID, &lead.BusinessName, &lead.Email, &lead.Phone, &lead.Website,
		&lead.City, &sizeCategory, &lead.TotalScore, &lead.Tier, &lead.EstimatedValue,
		&lead.NeedsRedesign, &lead.NeedsReviews, &lead.ScoredAt)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get lead %s", id)
	}
	lead.SizeCategory = model.SizeCategory(sizeCategory)
	return &lead, nil
}

func (s *PostgresStore) CountLeadsByTier(ctx context.Context) (map[string]int, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT tier, COUNT(*) FROM scored_leads GROUP BY tier`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: count leads by tier")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tier string
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, eris.Wrap(err, "postgres: scan tier count")
		}
		counts[tier] = n
	}
	return counts, eris.Wrap(rows.Err(), "postgres: count leads iterate")
}
