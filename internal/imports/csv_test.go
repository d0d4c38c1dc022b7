package imports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStockCSV(t *testing.T) {
	input := "product,current_quantity,unit,reorder_threshold\n" +
		"Tomato,10,kg,5\n" +
		"Cheese,3.5,kg,2\n"

	items, err := ParseStockCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Tomato", items[0].Product)
	assert.Equal(t, 10.0, items[0].CurrentQuantity)
	assert.Equal(t, "kg", items[0].Unit)
	assert.Equal(t, 5.0, items[0].ReorderThreshold)
	assert.Equal(t, 3.5, items[1].CurrentQuantity)
}

func TestParseStockCSVSkipsBOMAndCaseInsensitiveHeader(t *testing.T) {
	input := "\xEF\xBB\xBFProduct,Current_Quantity,Unit,Reorder_Threshold\nTomato,10,kg,5\n"

	items, err := ParseStockCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tomato", items[0].Product)
}

func TestParseStockCSVMissingColumns(t *testing.T) {
	input := "product,unit\nTomato,kg\n"

	_, err := ParseStockCSV(strings.NewReader(input))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.Equal(t, "stock", schemaErr.Kind)
	assert.Equal(t, []string{"current_quantity", "reorder_threshold"}, schemaErr.Missing)
}

func TestParseStockCSVSkipsBadNumericRow(t *testing.T) {
	input := "product,current_quantity,unit,reorder_threshold\n" +
		"Tomato,abc,kg,5\n" +
		"Cheese,3,kg,2\n"

	items, err := ParseStockCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cheese", items[0].Product)
}

func TestParseMenuCSV(t *testing.T) {
	input := "dish,product,quantity_per_dish\n" +
		"Pizza,Tomato,2\n" +
		"Pizza,Cheese,0.5\n" +
		",,1\n" // boş satır atlanır

	lines, err := ParseMenuCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Pizza", lines[0].Dish)
	assert.Equal(t, 0.5, lines[1].QuantityPerDish)
}

func TestParseMenuCSVMissingColumns(t *testing.T) {
	input := "dish,quantity_per_dish\nPizza,2\n"

	_, err := ParseMenuCSV(strings.NewReader(input))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.Equal(t, []string{"product"}, schemaErr.Missing)
}

func TestParseSalesCSV(t *testing.T) {
	input := "date,dish,quantity_sold\n" +
		"2025-01-10,Pizza,3\n" +
		"2025-01-10,Salad,2\n"

	records, err := ParseSalesCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-01-10", records[0].SaleDate)
	assert.Equal(t, "Pizza", records[0].Dish)
	assert.Equal(t, 3.0, records[0].QuantitySold)
}

func TestParseSalesCSVMissingColumns(t *testing.T) {
	input := "date,dish\n2025-01-10,Pizza\n"

	_, err := ParseSalesCSV(strings.NewReader(input))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.Equal(t, "sales", schemaErr.Kind)
	assert.Equal(t, []string{"quantity_sold"}, schemaErr.Missing)
}

func TestParseOrdersCSV(t *testing.T) {
	input := "product,quantity\nTomato,20\nCheese,5\n"

	lines, err := ParseOrdersCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, OrderLine{Product: "Tomato", Quantity: 20}, lines[0])
}

func TestParseOrdersCSVAcceptsSuggestedQuantityAlias(t *testing.T) {
	// Yeniden sipariş export'unun kendisi geri yüklenebilmeli
	input := "product,suggested_quantity\nTomato,7\n"

	lines, err := ParseOrdersCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, OrderLine{Product: "Tomato", Quantity: 7}, lines[0])
}

func TestParseOrdersCSVRejectedWithoutQuantityColumn(t *testing.T) {
	input := "product,amount\nTomato,7\n"

	_, err := ParseOrdersCSV(strings.NewReader(input))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.Equal(t, "orders", schemaErr.Kind)
	assert.Contains(t, schemaErr.Missing, "quantity")
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ParseStockCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boş")
}
