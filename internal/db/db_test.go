package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFrom_EmptyRows(t *testing.T) {
	n, err := CopyFrom(context.TODO(), nil, "scored_leads", []string{"a", "b"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCopyFrom_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"scored_leads"}, []string{"id", "business_name"}).WillReturnResult(2)

	rows := [][]any{{"id-1", "Alpha Gym"}, {"id-2", "Beta Gym"}}
	n, err := CopyFrom(context.Background(), mock, "scored_leads", []string{"id", "business_name"}, rows)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"scored_leads"}, []string{"id"}).WillReturnError(fmt.Errorf("copy failed"))

	_, err = CopyFrom(context.Background(), mock, "scored_leads", []string{"id"}, [][]any{{"id-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY INTO scored_leads")
	assert.NoError(t, mock.ExpectationsWereMet())
}
