package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type item struct {
	ID    uint
	Name  string
	Code  string
	Price int
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Instrument(db))
	require.NoError(t, db.AutoMigrate(&item{}))
	require.NoError(t, db.Create(&[]item{
		{Name: "Smart Watch", Code: "ELEC-001", Price: 200},
		{Name: "Bluetooth Earbuds", Code: "ELEC-002", Price: 90},
		{Name: "Running Sneakers", Code: "FASH-001", Price: 130},
	}).Error)
	return db
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	db := openDB(t)

	var got []item
	require.NoError(t, db.Scopes(Contains("name", "WATCH")).Find(&got).Error)
	assert.Equal(t, []string{"Smart Watch"}, names(got))
}

func TestEmptyFiltersAreNoops(t *testing.T) {
	db := openDB(t)

	var got []item
	require.NoError(t, db.Scopes(Contains("name", ""), Equals("code", ""), Range[int]("price", nil, nil)).Find(&got).Error)
	assert.Len(t, got, 3)
}

func TestRangeIsInclusive(t *testing.T) {
	db := openDB(t)
	lo, hi := 90, 130

	var got []item
	require.NoError(t, db.Scopes(Range("price", &lo, &hi), OrderBy("price", false)).Find(&got).Error)
	assert.Equal(t, []string{"Bluetooth Earbuds", "Running Sneakers"}, names(got))
}

func TestOrderByAndWhen(t *testing.T) {
	db := openDB(t)

	var got []item
	require.NoError(t, db.Scopes(
		When(false, Equals("code", "ELEC-001")),
		OrderBy("price", true),
	).Find(&got).Error)
	assert.Equal(t, []string{"Smart Watch", "Running Sneakers", "Bluetooth Earbuds"}, names(got))
}
