package services

import (
	"testing"

	"skincare-companion-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func newScheduleService() *ScheduleService {
	return NewScheduleService(NewIngredientService())
}

func TestBuildScheduleDayRange(t *testing.T) {
	service := newScheduleService()

	products := []models.Product{
		{Name: "Gentle Cleanser", Ingredients: []string{"glycerin"}, PreferredTime: "both"},
	}

	schedule := service.BuildSchedule(products, 7)

	assert.Len(t, schedule, 7)
	for day := 1; day <= 7; day++ {
		assert.Contains(t, schedule, day)
	}
}

func TestBuildScheduleDefaultsToSevenDays(t *testing.T) {
	service := newScheduleService()

	schedule := service.BuildSchedule([]models.Product{}, 0)
	assert.Len(t, schedule, 7)
}

func TestProductWithoutActiveIngredientsFollowsPreferredTime(t *testing.T) {
	service := newScheduleService()

	products := []models.Product{
		{Name: "Gentle Cleanser", Ingredients: []string{"glycerin", "panthenol"}, PreferredTime: "both"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Equal(t, []string{"Gentle Cleanser"}, schedule[day].Morning)
		assert.Equal(t, []string{"Gentle Cleanser"}, schedule[day].Evening)
	}
}

func TestTwiceDailyIgnoresPreferredTime(t *testing.T) {
	service := newScheduleService()

	// niacinamideはtwice daily: 希望時間帯がmorningでも両スロットに入る
	products := []models.Product{
		{Name: "Niacinamide Serum", Ingredients: []string{"niacinamide"}, PreferredTime: "morning"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Equal(t, []string{"Niacinamide Serum"}, schedule[day].Morning)
		assert.Equal(t, []string{"Niacinamide Serum"}, schedule[day].Evening)
	}
}

func TestRetinolScheduledEveningOnly(t *testing.T) {
	service := newScheduleService()

	// 希望時間帯がmorningでも、retinolは光感受性のため夜に入る
	products := []models.Product{
		{Name: "Retinol Night Cream", Ingredients: []string{"retinol", "ceramides"}, PreferredTime: "morning"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Empty(t, schedule[day].Morning)
		assert.Equal(t, []string{"Retinol Night Cream"}, schedule[day].Evening)
	}
}

func TestRetinolMixedCaseStillEvening(t *testing.T) {
	service := newScheduleService()

	// スロット判定はルックアップと同じ正規化で行われるため、
	// "Retinol"表記でも夜のままになる
	products := []models.Product{
		{Name: "Retinol Night Cream", Ingredients: []string{"Retinol"}, PreferredTime: "morning"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Empty(t, schedule[day].Morning)
		assert.Equal(t, []string{"Retinol Night Cream"}, schedule[day].Evening)
	}
}

func TestOnceDailyDefaultsToMorning(t *testing.T) {
	service := newScheduleService()

	products := []models.Product{
		{Name: "Vitamin C Serum", Ingredients: []string{"vitamin c"}, PreferredTime: "evening"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Equal(t, []string{"Vitamin C Serum"}, schedule[day].Morning)
		assert.Empty(t, schedule[day].Evening)
	}
}

func TestWeeklyFrequencyInterval(t *testing.T) {
	service := newScheduleService()

	// glycolic acidは週2回: interval = 7/2 = 3 → 1, 4, 7日目の夜
	products := []models.Product{
		{Name: "AHA Exfoliant", Ingredients: []string{"glycolic acid", "lactic acid"}, PreferredTime: "evening"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Empty(t, schedule[day].Morning)
		if day == 1 || day == 4 || day == 7 {
			assert.Equal(t, []string{"AHA Exfoliant"}, schedule[day].Evening, "day %d", day)
		} else {
			assert.Empty(t, schedule[day].Evening, "day %d", day)
		}
	}
}

func TestGoverningIngredientIsFirstActive(t *testing.T) {
	service := newScheduleService()

	// 最初の有効成分はniacinamide（twice daily）なので、
	// retinolが後ろにあっても毎日朝夜に入る
	products := []models.Product{
		{Name: "Combo Cream", Ingredients: []string{"ceramides", "niacinamide", "retinol"}, PreferredTime: "evening"},
	}

	schedule := service.BuildSchedule(products, 7)

	for day := 1; day <= 7; day++ {
		assert.Equal(t, []string{"Combo Cream"}, schedule[day].Morning)
		assert.Equal(t, []string{"Combo Cream"}, schedule[day].Evening)
	}
}

func TestSlotAppendOrderFollowsInputOrder(t *testing.T) {
	service := newScheduleService()

	products := []models.Product{
		{Name: "Vitamin C Serum", Ingredients: []string{"vitamin c"}, PreferredTime: "morning"},
		{Name: "Niacinamide Serum", Ingredients: []string{"niacinamide"}, PreferredTime: "morning"},
	}

	schedule := service.BuildSchedule(products, 7)

	assert.Equal(t, []string{"Vitamin C Serum", "Niacinamide Serum"}, schedule[1].Morning)
}

func TestBuildScheduleIsIdempotent(t *testing.T) {
	service := newScheduleService()

	products := []models.Product{
		{Name: "Retinol Night Cream", Ingredients: []string{"retinol"}, PreferredTime: "evening"},
		{Name: "AHA Exfoliant", Ingredients: []string{"glycolic acid"}, PreferredTime: "evening"},
	}

	schedule1 := service.BuildSchedule(products, 7)
	schedule2 := service.BuildSchedule(products, 7)

	assert.Equal(t, schedule1, schedule2)
}
