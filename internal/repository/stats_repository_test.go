package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func TestStatsRepositoryComplaintStatusCounts(t *testing.T) {
	db, mock, cleanup := newStatsRepoMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"label", "count"}).
		AddRow("pending", 4).
		AddRow("resolved", 2)

	mock.ExpectQuery(regexp.QuoteMeta("FROM complaints GROUP BY status")).
		WillReturnRows(rows)

	counts, err := repo.ComplaintStatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, counts["pending"])
	assert.Equal(t, 2, counts["resolved"])
	assert.Equal(t, 0, counts["closed"])
}

func TestStatsRepositoryComplaintCategoryBreakdown(t *testing.T) {
	db, mock, cleanup := newStatsRepoMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"category", "count"}).
		AddRow("plumbing", 5).
		AddRow("electrical", 3)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT category, COUNT(*) AS count FROM complaints GROUP BY category")).
		WillReturnRows(rows)

	breakdown, err := repo.ComplaintCategoryBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "plumbing", breakdown[0].Category)
	assert.Equal(t, 5, breakdown[0].Count)
}

func TestStatsRepositoryCountStudents(t *testing.T) {
	db, mock, cleanup := newStatsRepoMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(12)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE role = $1")).
		WithArgs("student").
		WillReturnRows(rows)

	count, err := repo.CountStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestStatsRepositoryLeaveStatusCounts(t *testing.T) {
	db, mock, cleanup := newStatsRepoMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"label", "count"}).
		AddRow("pending", 3).
		AddRow("approved", 6)

	mock.ExpectQuery(regexp.QuoteMeta("FROM leaves GROUP BY status")).
		WillReturnRows(rows)

	counts, err := repo.LeaveStatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, counts["pending"])
	assert.Equal(t, 6, counts["approved"])
}
