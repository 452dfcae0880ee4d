package postgres

import (
	"context"
	"testing"
	"time"

	"crypto-casino-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillSwitchRepo_Get_MissingRowMeansInactive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKillSwitchRepo(mock)

	mock.ExpectQuery("SELECT active, activated_at, activated_by FROM kill_switch").
		WillReturnError(pgx.ErrNoRows)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, s.Active)
}

func TestKillSwitchRepo_Set_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKillSwitchRepo(mock)
	now := time.Now().UTC()
	state := &domain.KillSwitchState{Active: true, ActivatedAt: &now, ActivatedBy: "ops-1"}

	mock.ExpectExec("INSERT INTO kill_switch").
		WithArgs(true, &now, "ops-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Set(context.Background(), state)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_GetSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("pool_floor").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("25"))

	v, ok, err := repo.Get(context.Background(), "pool_floor")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "25", v)

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, ok, err = repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("pool_floor", "30").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Set(context.Background(), "pool_floor", "30")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
