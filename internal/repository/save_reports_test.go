package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zivo-app/business-hours/backend/internal/config"
	"github.com/zivo-app/business-hours/backend/internal/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// 需要一个可用的 PostgreSQL，通过 TEST_DATABASE_DSN 指定
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping PostgreSQL integration test")
	}

	dbpool, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbpool.Close() })

	schema, err := os.ReadFile("../../migrations/000001_create_hours_save_reports.up.sql")
	require.NoError(t, err)
	_, err = dbpool.ExecContext(context.Background(), string(schema))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	return NewRepository(cfg, dbpool)
}

func TestSaveReports(t *testing.T) {
	repo := newTestRepository(t)
	businessID := "test-" + uuid.NewString()

	started := time.Now().UTC().Truncate(time.Millisecond)
	older := &domain.SaveReport{
		ID:         uuid.New(),
		BusinessID: businessID,
		Committed:  7,
		Outcomes:   []domain.SaveReportOutcome{{Day: "sunday", State: "committed"}},
		StartedAt:  started.Add(-time.Hour),
		FinishedAt: started.Add(-time.Hour + time.Second),
	}
	newer := &domain.SaveReport{
		ID:         uuid.New(),
		BusinessID: businessID,
		Committed:  6,
		Failed:     1,
		Outcomes:   []domain.SaveReportOutcome{{Day: "sunday", State: "failed", Reason: "invalid-time"}},
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
	require.NoError(t, repo.CreateSaveReport(older))
	require.NoError(t, repo.CreateSaveReport(newer))

	reports, err := repo.GetSaveReportsByBusinessID(businessID, 10)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.ID, reports[0].ID)
	assert.Equal(t, int32(1), reports[0].Failed)
	assert.Equal(t, newer.Outcomes, reports[0].Outcomes)
	assert.Equal(t, older.ID, reports[1].ID)

	limited, err := repo.GetSaveReportsByBusinessID(businessID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
