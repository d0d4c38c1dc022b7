package inventory

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateReorder(t *testing.T) {
	stock := []models.StockItem{
		{Product: "Tomato", CurrentQuantity: 10, Unit: "kg", ReorderThreshold: 5},
		{Product: "Cheese", CurrentQuantity: 8, Unit: "kg", ReorderThreshold: 3},
		{Product: "Flour", CurrentQuantity: 2, Unit: "kg", ReorderThreshold: 4},
	}
	consumption := map[string]float64{"Tomato": 6, "Cheese": 5}

	statuses := EvaluateReorder(stock, consumption)
	require.Len(t, statuses, 3)

	byProduct := make(map[string]ReorderStatus)
	for _, s := range statuses {
		byProduct[s.Product] = s
	}

	// Tomato: 10 - 6 = 4 < 5 -> işaretli
	assert.Equal(t, 4.0, byProduct["Tomato"].AdjustedQuantity)
	assert.True(t, byProduct["Tomato"].BelowThreshold)

	// Cheese: 8 - 5 = 3, tam eşikte -> işaretlenmez (kesin küçüktür)
	assert.Equal(t, 3.0, byProduct["Cheese"].AdjustedQuantity)
	assert.False(t, byProduct["Cheese"].BelowThreshold)

	// Flour: tüketimi yok, 2 < 4 -> işaretli
	assert.Equal(t, 2.0, byProduct["Flour"].AdjustedQuantity)
	assert.True(t, byProduct["Flour"].BelowThreshold)
}

func TestEvaluateReorderScenarioFromSales(t *testing.T) {
	// Tomato=10 eşik=5; Pizza -> Tomato 2; satış Pizza x3 -> tüketim 6 -> düzeltilmiş 4
	stock := []models.StockItem{{Product: "Tomato", CurrentQuantity: 10, Unit: "kg", ReorderThreshold: 5}}
	menu := []models.MenuLine{{Dish: "Pizza", Product: "Tomato", QuantityPerDish: 2}}
	sales := []models.SaleRecord{{SaleDate: "2025-01-10", Dish: "Pizza", QuantitySold: 3}}

	statuses := EvaluateReorder(stock, CalculateConsumption(sales, menu))
	require.Len(t, statuses, 1)
	assert.Equal(t, 4.0, statuses[0].AdjustedQuantity)
	assert.True(t, statuses[0].BelowThreshold)
	assert.Equal(t, 1, SuggestedQuantity(statuses[0]))

	// Aynı senaryo satış x2 -> tüketim 4 -> düzeltilmiş 6, 6 < 5 değil
	sales[0].QuantitySold = 2
	statuses = EvaluateReorder(stock, CalculateConsumption(sales, menu))
	require.Len(t, statuses, 1)
	assert.Equal(t, 6.0, statuses[0].AdjustedQuantity)
	assert.False(t, statuses[0].BelowThreshold)
}

func TestSuggestedQuantity(t *testing.T) {
	tests := []struct {
		name     string
		adjusted float64
		thresh   float64
		want     int
	}{
		{"large deficit", -3, 5, 8},
		{"rounds to nearest", 2.4, 5, 3},
		{"never below one", 4.9, 5, 1},
		{"zero difference clamps to one", 5, 5, 1},
		{"negative difference clamps to one", 6, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ReorderStatus{AdjustedQuantity: tt.adjusted, ReorderThreshold: tt.thresh}
			assert.Equal(t, tt.want, SuggestedQuantity(s))
			assert.GreaterOrEqual(t, SuggestedQuantity(s), 1)
		})
	}
}
