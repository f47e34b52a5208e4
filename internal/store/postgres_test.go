package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresWithPool(mock), mock
}

func TestPostgresStore_SaveLeads(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectCopyFrom(pgx.Identifier{"scored_leads"}, leadColumns).
		WillReturnResult(2)

	err := s.SaveLeads(context.Background(), []model.ScoredLead{
		testLead("Alpha Gym", 82, "HOT LEAD"),
		testLead("Beta Gym", 51, "COLD LEAD"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveLeads_Empty(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	assert.NoError(t, s.SaveLeads(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListLeads(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	now := time.Now().UTC()

	cols := []string{"id", "business_name", "email", "phone", "website", "city",
		"size_category", "total_score", "tier", "estimated_value",
		"needs_redesign", "needs_reviews", "scored_at"}

	mock.ExpectQuery(`SELECT .+ FROM scored_leads`).
		WithArgs("HOT LEAD", 10).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("id-1", "Alpha Gym", "a@alpha.com", "+12127365000", "https://alpha.com",
				"Dallas", "Chain", 82, "HOT LEAD", "$8,000-15,000", true, false, now).
			AddRow("id-2", "Beta Gym", "b@beta.com", "+12127365001", "https://beta.com",
				"Austin", "Small", 51, "COLD LEAD", "$3,000-8,000", false, true, now))

	leads, err := s.ListLeads(context.Background(), LeadFilter{Tier: "HOT LEAD", Limit: 10})
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Alpha Gym", leads[0].BusinessName)
	assert.Equal(t, model.SizeChain, leads[0].SizeCategory)
	assert.Equal(t, 82, leads[0].TotalScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetLead(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	now := time.Now().UTC()

	cols := []string{"id", "business_name", "email", "phone", "website", "city",
		"size_category", "total_score", "tier", "estimated_value",
		"needs_redesign", "needs_reviews", "scored_at"}

	mock.ExpectQuery(`SELECT .+ FROM scored_leads WHERE id = \$1`).
		WithArgs("id-1").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("id-1", "Alpha Gym", "a@alpha.com", "+12127365000", "https://alpha.com",
				"Dallas", "Premium", 82, "HOT LEAD", "$8,000-15,000", true, false, now))

	lead, err := s.GetLead(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, model.SizePremium, lead.SizeCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CountLeadsByTier(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT tier, COUNT\(\*\) FROM scored_leads GROUP BY tier`).
		WillReturnRows(pgxmock.NewRows([]string{"tier", "count"}).
			AddRow("HOT LEAD", 2).
			AddRow("WARM LEAD", 5))

	counts, err := s.CountLeadsByTier(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"HOT LEAD": 2, "WARM LEAD": 5}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS scored_leads`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
