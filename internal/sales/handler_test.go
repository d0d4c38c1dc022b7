package sales

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SaleRecord{}))
	return db
}

func allSales(t *testing.T, db *gorm.DB) []models.SaleRecord {
	t.Helper()
	var records []models.SaleRecord
	require.NoError(t, db.Order("sale_date ASC, dish ASC").Find(&records).Error)
	return records
}

func TestUpsertSalesInsertsNewRows(t *testing.T) {
	db := newTestDB(t)

	err := UpsertSales(db, []models.SaleRecord{
		{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 3},
		{SaleDate: "2025-01-10", Dish: "Salad", QuantitySold: 2},
	})
	require.NoError(t, err)

	records := allSales(t, db)
	require.Len(t, records, 2)
	assert.Equal(t, 3.0, records[0].QuantitySold)
}

func TestUpsertSalesKeepsLastRowPerKeyWithinOneFile(t *testing.T) {
	db := newTestDB(t)

	// Aynı (date, dish) anahtarı dosya içinde iki kez: son satır kazanır
	err := UpsertSales(db, []models.SaleRecord{
		{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 3},
		{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 7},
	})
	require.NoError(t, err)

	records := allSales(t, db)
	require.Len(t, records, 1)
	assert.Equal(t, 7.0, records[0].QuantitySold)
}

func TestUpsertSalesLaterUploadWinsOnOverlap(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, UpsertSales(db, []models.SaleRecord{
		{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 3},
		{SaleDate: "2025-01-11", Dish: "Pizza", QuantitySold: 4},
	}))
	require.NoError(t, UpsertSales(db, []models.SaleRecord{
		{SaleDate: "2025-01-11", Dish: "Pizza", QuantitySold: 9},
		{SaleDate: "2025-01-12", Dish: "Pizza", QuantitySold: 1},
	}))

	records := allSales(t, db)
	require.Len(t, records, 3)
	assert.Equal(t, 3.0, records[0].QuantitySold) // 10'u kimse ezmedi
	assert.Equal(t, 9.0, records[1].QuantitySold) // 11 sonraki yüklemeyle güncellendi
	assert.Equal(t, 1.0, records[2].QuantitySold)
}

func TestUpsertSalesExactReuploadIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	batch := []models.SaleRecord{
		{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 3},
		{SaleDate: "2025-01-10", Dish: "Salad", QuantitySold: 2},
	}
	require.NoError(t, UpsertSales(db, batch))

	// gorm Create ID atadığı için birebir tekrar yüklemeyi taze kopyayla yap
	again := []models.SaleRecord{
		{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 3},
		{SaleDate: "2025-01-10", Dish: "Salad", QuantitySold: 2},
	}
	require.NoError(t, UpsertSales(db, again))

	records := allSales(t, db)
	require.Len(t, records, 2)
	assert.Equal(t, 3.0, records[0].QuantitySold)
	assert.Equal(t, 2.0, records[1].QuantitySold)
}

func TestUpsertSalesEmptyBatchIsNoOp(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, UpsertSales(db, nil))
	assert.Empty(t, allSales(t, db))
}
