package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testLead(name string, score int, tier string) model.ScoredLead {
	return model.ScoredLead{
		BusinessName:   name,
		Email:          "owner@example.com",
		Phone:          "+12127365000",
		Website:        "https://example.com",
		City:           "Dallas",
		SizeCategory:   model.SizeSmall,
		TotalScore:     score,
		Tier:           tier,
		EstimatedValue: "$3,000-8,000",
		NeedsRedesign:  true,
		ScoredAt:       time.Now().UTC(),
	}
}

func TestSQLite_SaveAndListLeads(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	err := st.SaveLeads(ctx, []model.ScoredLead{
		testLead("Alpha Gym", 82, "HOT LEAD"),
		testLead("Beta Gym", 51, "COLD LEAD"),
		testLead("Gamma Gym", 70, "WARM LEAD"),
	})
	require.NoError(t, err)

	leads, err := st.ListLeads(ctx, LeadFilter{})
	require.NoError(t, err)
	require.Len(t, leads, 3)

	// Sorted by score descending.
	assert.Equal(t, "Alpha Gym", leads[0].BusinessName)
	assert.Equal(t, "Gamma Gym", leads[1].BusinessName)
	assert.Equal(t, "Beta Gym", leads[2].BusinessName)

	// IDs are assigned on insert.
	assert.NotEmpty(t, leads[0].ID)
	assert.Equal(t, model.SizeSmall, leads[0].SizeCategory)
	assert.True(t, leads[0].NeedsRedesign)
}

func TestSQLite_ListLeads_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveLeads(ctx, []model.ScoredLead{
		testLead("Alpha Gym", 82, "HOT LEAD"),
		testLead("Beta Gym", 51, "COLD LEAD"),
		testLead("Gamma Gym", 70, "WARM LEAD"),
	}))

	hot, err := st.ListLeads(ctx, LeadFilter{Tier: "HOT LEAD"})
	require.NoError(t, err)
	require.Len(t, hot, 1)
	assert.Equal(t, "Alpha Gym", hot[0].BusinessName)

	high, err := st.ListLeads(ctx, LeadFilter{MinScore: 70})
	require.NoError(t, err)
	assert.Len(t, high, 2)

	limited, err := st.ListLeads(ctx, LeadFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Alpha Gym", limited[0].BusinessName)

	offset, err := st.ListLeads(ctx, LeadFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, offset, 1)
	assert.Equal(t, "Gamma Gym", offset[0].BusinessName)
}

func TestSQLite_SaveLeads_Empty(t *testing.T) {
	st := newTestSQLiteStore(t)
	assert.NoError(t, st.SaveLeads(context.Background(), nil))
}

func TestSQLite_SaveLeads_PreservesID(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	lead := testLead("Alpha Gym", 82, "HOT LEAD")
	lead.ID = "fixed-id"
	require.NoError(t, st.SaveLeads(ctx, []model.ScoredLead{lead}))

	got, err := st.GetLead(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Gym", got.BusinessName)
}

func TestSQLite_GetLead_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetLead(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_CountLeadsByTier(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveLeads(ctx, []model.ScoredLead{
		testLead("Alpha Gym", 82, "HOT LEAD"),
		testLead("Beta Gym", 85, "HOT LEAD"),
		testLead("Gamma Gym", 70, "WARM LEAD"),
	}))

	counts, err := st.CountLeadsByTier(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"HOT LEAD": 2, "WARM LEAD": 1}, counts)
}
