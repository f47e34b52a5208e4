package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS scored_leads (
	id              TEXT PRIMARY KEY,
	business_name   TEXT NOT NULL,
	email           TEXT,
	phone           TEXT,
	website         TEXT,
	city            TEXT,
	size_category   TEXT NOT NULL,
	total_score     INTEGER NOT NULL,
	tier            TEXT NOT NULL,
	estimated_value TEXT,
	needs_redesign  INTEGER NOT NULL DEFAULT 0,
	needs_reviews   INTEGER NOT NULL DEFAULT 0,
	scored_at       DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_scored_leads_tier ON scored_leads(tier);
CREATE INDEX IF NOT EXISTS idx_scored_leads_total_score ON scored_leads(total_score);
CREATE INDEX IF NOT EXISTS idx_scored_leads_business_name ON scored_leads(business_name);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveLeads(ctx context.Context, leads []model.ScoredLead) error {
	if len(leads) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO scored_leads
		 (id, business_name, email, phone, website, city, size_category,
		  total_score, tier, estimated_value, needs_redesign, needs_reviews, scored_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert lead")
	}
	defer stmt.Close()

	for _, lead := range leads {
		id := lead.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := stmt.ExecContext(ctx,
			id, lead.BusinessName, lead.Email, lead.Phone, lead.Website, lead.City,
			string(lead.SizeCategory), lead.TotalScore, lead.Tier, lead.EstimatedValue,
			lead.NeedsRedesign, lead.NeedsReviews, lead.ScoredAt,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert lead %s", lead.BusinessName)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit leads")
}

func (s *SQLiteStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.ScoredLead, error) {
	query := `SELECT id, business_name, email, phone, website, city, size_category,
	                 total_score, tier, estimated_value, needs_redesign, needs_reviews, scored_at
	          FROM scored_leads WHERE 1=1`
	var args []any

	if filter.Tier != "" {
		query += ` AND tier = ?`
		args = append(args, filter.Tier)
	}
	if filter.MinScore > 0 {
		query += ` AND total_score >= ?`
		args = append(args, filter.MinScore)
	}
	query += ` ORDER BY total_score DESC, business_name ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list leads")
	}
	defer rows.Close()

	var leads []model.ScoredLead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: list leads iterate")
}

func (s *SQLiteStore) GetLead(ctx context.Context, id string) (*model.ScoredLead, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, business_name, email, phone, website, city, size_category,
		        total_score, tier, estimated_value, needs_redesign, needs_reviews, scored_at
		 FROM scored_leads WHERE id = ?`,
		id,
	)
	return scanLead(row)
}

func (s *SQLiteStore) CountLeadsByTier(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tier, COUNT(*) FROM scored_leads GROUP BY tier`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: count leads by tier")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tier string
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan tier count")
		}
		counts[tier] = n
	}
	return counts, eris.Wrap(rows.Err(), "sqlite: count leads iterate")
}

// helpers

type scannable interface {
	Scan(dest ...any) error
}

func scanLead(row scannable) (*model.ScoredLead, error) {
	var lead model.ScoredLead
	var sizeCategory string
	var email, phone, website, city, estimatedValue sql.NullString

	err := row.Scan(&lead.ID, &lead.BusinessName, &email, &phone, &website, &city,
		&sizeCategory, &lead.TotalScore, &lead.Tier, &estimatedValue,
		&lead.NeedsRedesign, &lead.NeedsReviews, &lead.ScoredAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("lead not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan lead")
	}

	lead.SizeCategory = model.SizeCategory(sizeCategory)
	lead.Email = email.String
	lead.Phone = phone.String
	lead.Website = website.String
	lead.City = city.String
	lead.EstimatedValue = estimatedValue.String
	return &lead, nil
}
