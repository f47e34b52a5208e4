// Package store persists scored leads to SQLite or PostgreSQL.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/Kleo12345/lead-scoring-system/internal/config"
	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// LeadFilter specifies criteria for listing scored leads.
type LeadFilter struct {
	Tier     string `json:"tier,omitempty"`
	MinScore int    `json:"min_score,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for the scoring pipeline.
type Store interface {
	SaveLeads(ctx context.Context, leads []model.ScoredLead) error
	ListLeads(ctx context.Context, filter LeadFilter) ([]model.ScoredLead, error)
	GetLead(ctx context.Context, id string) (*model.ScoredLead, error)
	CountLeadsByTier(ctx context.Context) (map[string]int, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
