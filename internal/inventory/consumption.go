package inventory

import "envanter-backend/internal/models"

// CalculateConsumption: Satışları reçetelerle yemek adı üzerinden birleştirir ve
// ürün başına toplam tüketimi döner. Yan etkisiz; iki girdinin saf fonksiyonu.
//
// Inner-join semantiği: reçetesi olmayan bir yemeğin satışı sessizce düşer,
// hiç satışı/eşleşmesi olmayan ürün haritada yer almaz (aşağıda sıfır kabul edilir).
func CalculateConsumption(sales []models.SaleRecord, menu []models.MenuLine) map[string]float64 {
	recipeByDish := make(map[string][]models.MenuLine, len(menu))
	for _, line := range menu {
		recipeByDish[line.Dish] = append(recipeByDish[line.Dish], line)
	}

	totals := make(map[string]float64)
	for _, sale := range sales {
		for _, line := range recipeByDish[sale.Dish] {
			totals[line.Product] += sale.QuantitySold * line.QuantityPerDish
		}
	}
	return totals
}
