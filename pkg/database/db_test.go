package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := buildDialector("oracle", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := Open("sqlite", "file::memory:")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestPingBeforeConnect(t *testing.T) {
	prev := DB
	DB = nil
	defer func() { DB = prev }()

	assert.ErrorIs(t, Ping(context.Background()), ErrNotConnected)
}
