package seeders_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/database/seeders"
	"github.com/shashiranjanraj/shopadmin/pkg/testkit"
)

func TestSeedDemo(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, seeders.RunAll(ctx, db, &out))
	assert.Contains(t, out.String(), "Running seeder: demo")

	assert.EqualValues(t, 3, testkit.Count(t, db, &models.Category{}))
	assert.EqualValues(t, 3, testkit.Count(t, db, &models.Product{}))
	assert.EqualValues(t, 2, testkit.Count(t, db, &models.Order{}))
	assert.EqualValues(t, 3, testkit.Count(t, db, &models.Sale{}))

	var watch models.Product
	require.NoError(t, db.Where("sku = ?", "ELEC-001").First(&watch).Error)
	assert.Equal(t, 149, testkit.Quantity(t, db, watch.ID))

	var john models.Order
	require.NoError(t, db.Where("customer_name = ?", "John Doe").First(&john).Error)
	assert.True(t, decimal.RequireFromString("379.97").Equal(john.TotalAmount), john.TotalAmount.String())

	// A second run leaves the data alone.
	require.NoError(t, seeders.SeedDemo(ctx, db))
	assert.EqualValues(t, 2, testkit.Count(t, db, &models.Order{}))
}
